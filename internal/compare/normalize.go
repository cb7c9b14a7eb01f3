// Package compare turns a partially populated material set into comparable
// 0-100 scores for radar/bar charts. Axes form a closed set, each with its
// own extractor; there is no stringly property lookup.
package compare

import (
	"sort"
	"strconv"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

// Axis is one comparable quantity. Class is empty for quantities without a
// registered display unit (derived ratios, thermal expansion); their raw SI
// value is shown as-is.
type Axis struct {
	Key            string      `json:"key"`
	Label          string      `json:"label"`
	HigherIsBetter bool        `json:"higher_is_better"`
	Class          units.Class `json:"class,omitempty"`

	extract func(material.Material) *float64
}

var axes = []Axis{
	{
		Key: "density", Label: "Density", HigherIsBetter: false, Class: units.ClassDensity,
		extract: func(m material.Material) *float64 { return m.Density },
	},
	{
		Key: "youngsModulus", Label: "Young's Modulus", HigherIsBetter: true, Class: units.ClassModulus,
		extract: func(m material.Material) *float64 { return m.YoungsModulus },
	},
	{
		Key: "yieldStrength", Label: "Yield Strength", HigherIsBetter: true, Class: units.ClassStrength,
		extract: func(m material.Material) *float64 { return m.YieldStrength },
	},
	{
		Key: "tensileStrength", Label: "Tensile Strength", HigherIsBetter: true, Class: units.ClassStrength,
		extract: func(m material.Material) *float64 { return m.TensileStrength },
	},
	{
		Key: "specificStrength", Label: "Specific Strength", HigherIsBetter: true,
		extract: func(m material.Material) *float64 { return m.SpecificStrength() },
	},
	{
		Key: "specificModulus", Label: "Specific Modulus", HigherIsBetter: true,
		extract: func(m material.Material) *float64 { return m.SpecificModulus() },
	},
	{
		Key: "thermalExpansion", Label: "Thermal Expansion", HigherIsBetter: false,
		extract: func(m material.Material) *float64 { return m.ThermalExpansion },
	},
}

// DefaultAxes returns every declared axis in chart order.
func DefaultAxes() []Axis {
	out := make([]Axis, len(axes))
	copy(out, axes)
	return out
}

// AxisByKey resolves one axis from its key.
func AxisByKey(key string) (Axis, bool) {
	for _, a := range axes {
		if a.Key == key {
			return a, true
		}
	}
	return Axis{}, false
}

// Score is one material's result on one axis. Raw is the canonical SI value
// (nil when the material has no data there); Display is rendered in the
// caller's unit selection, "N/A" for missing data.
type Score struct {
	Material string   `json:"material"`
	Score    float64  `json:"score"`
	Raw      *float64 `json:"raw,omitempty"`
	Display  string   `json:"display"`
}

// Series is one axis across the whole material set.
type Series struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	HigherIsBetter bool    `json:"higher_is_better"`
	Scores         []Score `json:"scores"`
}

// Normalize min-max scales every material onto [0,100] per axis. It never
// fails: a missing value scores the neutral 50, a degenerate axis where all
// defined values coincide scores 100 (or 0 when lower is better).
//
// The extremum pass must see the whole set before any score is computed; the
// min/max denominator depends on every material, so scoring while streaming
// would be wrong.
func Normalize(mats []material.Material, axisSet []Axis, sel units.Selection) []Series {
	out := make([]Series, 0, len(axisSet))
	for _, axis := range axisSet {
		// Pass 1: extract.
		values := make([]*float64, len(mats))
		for i, m := range mats {
			values[i] = axis.extract(m)
		}

		// Pass 2: extrema over the defined values.
		var min, max float64
		defined := false
		for _, v := range values {
			if v == nil {
				continue
			}
			if !defined || *v < min {
				min = *v
			}
			if !defined || *v > max {
				max = *v
			}
			defined = true
		}

		// Pass 3: score.
		series := Series{Key: axis.Key, Label: axis.Label, HigherIsBetter: axis.HigherIsBetter}
		for i, m := range mats {
			s := Score{Material: m.Name, Raw: values[i], Display: display(values[i], axis, sel)}
			switch {
			case values[i] == nil:
				s.Score = 50
			case max > min:
				t := (*values[i] - min) / (max - min) * 100
				if axis.HigherIsBetter {
					s.Score = t
				} else {
					s.Score = 100 - t
				}
			default: // all defined values identical
				if axis.HigherIsBetter {
					s.Score = 100
				} else {
					s.Score = 0
				}
			}
			series.Scores = append(series.Scores, s)
		}
		out = append(out, series)
	}
	return out
}

func display(v *float64, axis Axis, sel units.Selection) string {
	if v == nil {
		return "N/A"
	}
	if axis.Class == "" {
		return strconv.FormatFloat(*v, 'g', 4, 64)
	}
	unit, err := sel.UnitFor(axis.Class)
	if err != nil {
		return "N/A"
	}
	s, err := units.Convert(v, axis.Class, unit)
	if err != nil {
		return "N/A"
	}
	return s
}

// Ranking is one material's unweighted mean over the axis scores, for the
// "best overall" callout.
type Ranking struct {
	Material string  `json:"material"`
	Overall  float64 `json:"overall"`
}

// Rank averages each material's scores across the series, best first. Ties
// break on name so the order is stable.
func Rank(series []Series, mats []material.Material) []Ranking {
	if len(series) == 0 || len(mats) == 0 {
		return nil
	}
	totals := make(map[string]float64, len(mats))
	for _, s := range series {
		for _, sc := range s.Scores {
			totals[sc.Material] += sc.Score
		}
	}
	out := make([]Ranking, 0, len(mats))
	for _, m := range mats {
		out = append(out, Ranking{Material: m.Name, Overall: totals[m.Name] / float64(len(series))})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Overall != out[j].Overall {
			return out[i].Overall > out[j].Overall
		}
		return out[i].Material < out[j].Material
	})
	return out
}
