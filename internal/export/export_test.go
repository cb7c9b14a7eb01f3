package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

func testSet(t *testing.T) []material.Material {
	t.Helper()
	steel, ok := material.SeedByName("AISI 1045 Steel")
	require.True(t, ok)
	oak, ok := material.SeedByName("Red Oak")
	require.True(t, ok)
	return []material.Material{steel, oak}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSet(t), units.DefaultSelection()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two materials")

	header := records[0]
	assert.Equal(t, "Name", header[0])
	assert.Contains(t, header[2], "kg/m³")
	assert.Contains(t, header[3], "GPa")
	assert.Contains(t, header[5], "MPa")
	require.Len(t, records[1], len(header))

	steel := records[1]
	assert.Equal(t, "AISI 1045 Steel", steel[0])
	assert.Equal(t, "7850", steel[2])
	assert.Equal(t, "200", steel[3])
	assert.Equal(t, "530", steel[5])

	// Red Oak has no yield strength or Poisson's ratio.
	oak := records[2]
	assert.Equal(t, "N/A", oak[5])
	assert.Equal(t, "N/A", oak[7])
}

func TestWriteCSVImperialUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSet(t), units.ImperialSelection()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Contains(t, records[0][2], "lb/ft³")
	assert.Contains(t, records[0][3], "ksi")

	// 7850 kg/m³ / 16.0185 ≈ 490.058 lb/ft³
	v, err := strconv.ParseFloat(records[1][2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 490.058, v, 1e-3)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testSet(t), units.DefaultSelection()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Materials")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "AISI 1045 Steel", rows[1][0])
	assert.Equal(t, "200", rows[1][3])
}
