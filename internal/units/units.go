// Package units is the single source of truth for converting canonical SI
// property values into display units and back. All stored values are SI
// (kg/m3, Pa); every conversion goes through the table below in one
// direction: display = si / factor, si = display * factor.
package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Class string

const (
	ClassDensity  Class = "density"
	ClassModulus  Class = "modulus"
	ClassStrength Class = "strength"
)

// UnitSpec describes one display unit: factor is the number of SI units in
// one display unit, precision the maximum decimals shown.
type UnitSpec struct {
	Name      string  `json:"name"`
	Factor    float64 `json:"factor"`
	Precision int     `json:"precision"`
}

var (
	ErrUnknownClass = errors.New("unknown quantity class")
	ErrUnknownUnit  = errors.New("unknown unit")
)

var stressUnits = []UnitSpec{
	{Name: "GPa", Factor: 1e9, Precision: 5},
	{Name: "MPa", Factor: 1e6, Precision: 2},
	{Name: "ksi", Factor: 6.89476e6, Precision: 3},
	{Name: "psi", Factor: 6894.76, Precision: 0},
}

// unitTable is populated once and never mutated at runtime.
var unitTable = map[Class][]UnitSpec{
	ClassDensity: {
		{Name: "kg/m³", Factor: 1, Precision: 0},
		{Name: "g/cm³", Factor: 1000, Precision: 3},
		{Name: "lb/ft³", Factor: 16.0185, Precision: 3},
	},
	ClassModulus:  stressUnits,
	ClassStrength: stressUnits,
}

func find(class Class, unit string) (UnitSpec, error) {
	specs, ok := unitTable[class]
	if !ok {
		return UnitSpec{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	for _, s := range specs {
		if s.Name == unit {
			return s, nil
		}
	}
	return UnitSpec{}, fmt.Errorf("%w: %q for class %q", ErrUnknownUnit, unit, class)
}

// Units returns the registered units for a class in selector order.
func Units(class Class) ([]UnitSpec, error) {
	specs, ok := unitTable[class]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	out := make([]UnitSpec, len(specs))
	copy(out, specs)
	return out, nil
}

// Classes returns every registered quantity class.
func Classes() []Class {
	return []Class{ClassDensity, ClassModulus, ClassStrength}
}

// DisplayValue converts a canonical SI value into the given display unit.
func DisplayValue(si float64, class Class, unit string) (float64, error) {
	spec, err := find(class, unit)
	if err != nil {
		return 0, err
	}
	return si / spec.Factor, nil
}

// Convert formats a canonical SI value for display in the given unit.
// A missing value (nil) renders as "N/A", never as NaN or zero.
func Convert(si *float64, class Class, unit string) (string, error) {
	spec, err := find(class, unit)
	if err != nil {
		return "", err
	}
	if si == nil {
		return "N/A", nil
	}
	return formatValue(*si/spec.Factor, spec.Precision), nil
}

// Parse converts a user-entered value in the given display unit back to SI.
func Parse(display float64, class Class, unit string) (float64, error) {
	spec, err := find(class, unit)
	if err != nil {
		return 0, err
	}
	return display * spec.Factor, nil
}

// formatValue prints with at most precision decimals, trimming trailing
// zeros so 200.00000 renders as "200" and 2.7100 as "2.71".
func formatValue(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	// FormatFloat can round a small negative to "-0".
	if s == "-0" {
		s = "0"
	}
	return s
}

// Selection is the caller's chosen display unit per quantity class. It is
// passed explicitly into every conversion site; there is no global selected
// unit.
type Selection struct {
	Density  string `json:"density"`
	Modulus  string `json:"modulus"`
	Strength string `json:"strength"`
}

// DefaultSelection is the metric preset the frontend starts with.
func DefaultSelection() Selection {
	return Selection{Density: "kg/m³", Modulus: "GPa", Strength: "MPa"}
}

// ImperialSelection is the US-customary preset.
func ImperialSelection() Selection {
	return Selection{Density: "lb/ft³", Modulus: "ksi", Strength: "ksi"}
}

// UnitFor returns the selected unit for a class.
func (s Selection) UnitFor(class Class) (string, error) {
	switch class {
	case ClassDensity:
		return s.Density, nil
	case ClassModulus:
		return s.Modulus, nil
	case ClassStrength:
		return s.Strength, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClass, class)
}

// Validate checks every selected unit against the registry, filling empty
// fields from the metric preset.
func (s *Selection) Validate() error {
	def := DefaultSelection()
	if s.Density == "" {
		s.Density = def.Density
	}
	if s.Modulus == "" {
		s.Modulus = def.Modulus
	}
	if s.Strength == "" {
		s.Strength = def.Strength
	}
	if _, err := find(ClassDensity, s.Density); err != nil {
		return err
	}
	if _, err := find(ClassModulus, s.Modulus); err != nil {
		return err
	}
	if _, err := find(ClassStrength, s.Strength); err != nil {
		return err
	}
	return nil
}
