// Package report produces a one-page PDF datasheet for a material: the
// property table in the caller's unit selection plus a QR code linking back
// to the material page.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

// Build renders the datasheet. link lands in the QR code; empty skips it.
func Build(m material.Material, sel units.Selection, link string) ([]byte, error) {
	rows, err := propertyRows(m, sel)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(m.Name))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Category: %s", m.Category)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Properties")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(70, 7, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, tr(row[1]), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	if link != "" {
		png, err := qrcode.Encode(link, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("qr encode: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("material-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("material-qr", 160, 20, 30, 30, false, opts, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(160, 53, tr(link))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// propertyRows builds label/value pairs in the selected units. Missing
// values stay in the table as N/A so every datasheet has the same shape.
func propertyRows(m material.Material, sel units.Selection) ([][2]string, error) {
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
	return [][2]string{
		{fmt.Sprintf("Density (%s)", sel.Density), density},
		{fmt.Sprintf("Young's Modulus (%s)", sel.Modulus), young},
		{fmt.Sprintf("Shear Modulus (%s)", sel.Modulus), shear},
		{fmt.Sprintf("Yield Strength (%s)", sel.Strength), yield},
		{fmt.Sprintf("Tensile Strength (%s)", sel.Strength), tensile},
		{"Poisson's Ratio", plain(m.PoissonRatio)},
		{"Thermal Expansion (1/°C)", plain(m.ThermalExpansion)},
		{"Melting Point (°C)", plain(m.MeltingPointC)},
		{"Max Service Temp (°C)", plain(m.MaxServiceTempC)},
		{"Elongation (%)", plain(m.ElongationPct)},
	}, nil
}

func plain(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
