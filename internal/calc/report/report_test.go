package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

func TestBuild(t *testing.T) {
	m, ok := material.SeedByName("Aluminum 6061-T6")
	require.True(t, ok)

	pdf, err := Build(m, units.DefaultSelection(), "http://localhost:8080/materials/Aluminum%206061-T6")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(pdf), 1000)

	// No link, no QR: still a valid document.
	pdf, err = Build(m, units.ImperialSelection(), "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestPropertyRows(t *testing.T) {
	m, ok := material.SeedByName("Red Oak")
	require.True(t, ok)

	rows, err := propertyRows(m, units.DefaultSelection())
	require.NoError(t, err)
	require.Len(t, rows, 10)

	byLabel := make(map[string]string, len(rows))
	for _, r := range rows {
		byLabel[r[0]] = r[1]
	}
	assert.Equal(t, "700", byLabel["Density (kg/m³)"])
	assert.Equal(t, "12.5", byLabel["Young's Modulus (GPa)"])
	assert.Equal(t, "N/A", byLabel["Yield Strength (MPa)"], "missing data renders as N/A")
	assert.Equal(t, "N/A", byLabel["Poisson's Ratio"])
}
