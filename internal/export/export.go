// Package export renders material sets as CSV or XLSX spreadsheets, one row
// per material, with property columns formatted in the caller's unit
// selection.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

// Header builds the column titles, with the selected unit in each label.
func Header(sel units.Selection) []string {
	return []string{
		"Name",
		"Category",
		fmt.Sprintf("Density (%s)", sel.Density),
		fmt.Sprintf("Young's Modulus (%s)", sel.Modulus),
		fmt.Sprintf("Shear Modulus (%s)", sel.Modulus),
		fmt.Sprintf("Yield Strength (%s)", sel.Strength),
		fmt.Sprintf("Tensile Strength (%s)", sel.Strength),
		"Poisson's Ratio",
		"Thermal Expansion (1/°C)",
		"Melting Point (°C)",
		"Max Service Temp (°C)",
		"Elongation (%)",
	}
}

// Row formats one material. The derived shear modulus stands in when no
// stored value exists, matching the detail view.
func Row(m material.Material, sel units.Selection) ([]string, error) {
	density, err := units.Convert(m.Density, units.ClassDensity, sel.Density)
	if err != nil {
		return nil, err
	}
	young, err := units.Convert(m.YoungsModulus, units.ClassModulus, sel.Modulus)
	if err != nil {
		return nil, err
	}
	shear, err := units.Convert(m.DerivedShearModulus(), units.ClassModulus, sel.Modulus)
	if err != nil {
		return nil, err
	}
	yield, err := units.Convert(m.YieldStrength, units.ClassStrength, sel.Strength)
	if err != nil {
		return nil, err
	}
	tensile, err := units.Convert(m.TensileStrength, units.ClassStrength, sel.Strength)
	if err != nil {
		return nil, err
	}
	return []string{
		m.Name,
		m.Category,
		density,
		young,
		shear,
		yield,
		tensile,
		plain(m.PoissonRatio),
		plain(m.ThermalExpansion),
		plain(m.MeltingPointC),
		plain(m.MaxServiceTempC),
		plain(m.ElongationPct),
	}, nil
}

func plain(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// WriteCSV streams the set as RFC 4180 CSV.
func WriteCSV(w io.Writer, mats []material.Material, sel units.Selection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(sel)); err != nil {
		return err
	}
	for _, m := range mats {
		row, err := Row(m, sel)
		if err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the set as a single-sheet workbook.
func WriteXLSX(w io.Writer, mats []material.Material, sel units.Selection) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Materials"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := setStringRow(f, sheet, 1, Header(sel)); err != nil {
		return err
	}
	for i, m := range mats {
		row, err := Row(m, sel)
		if err != nil {
			return err
		}
		if err := setStringRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setStringRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
