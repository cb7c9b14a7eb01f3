package units

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFormatting(t *testing.T) {
	e := 200e9
	s, err := Convert(&e, ClassModulus, "GPa")
	require.NoError(t, err)
	assert.Equal(t, "200", s, "trailing zeros should be trimmed")

	y := 2.71e11
	s, err = Convert(&y, ClassModulus, "GPa")
	require.NoError(t, err)
	assert.Equal(t, "271", s)

	d := 7850.0
	s, err = Convert(&d, ClassDensity, "g/cm³")
	require.NoError(t, err)
	assert.Equal(t, "7.85", s)

	s, err = Convert(&d, ClassDensity, "kg/m³")
	require.NoError(t, err)
	assert.Equal(t, "7850", s)
}

func TestConvertNilIsNA(t *testing.T) {
	s, err := Convert(nil, ClassStrength, "MPa")
	require.NoError(t, err)
	assert.Equal(t, "N/A", s)
}

func TestConvertUnknownUnit(t *testing.T) {
	v := 1.0
	_, err := Convert(&v, ClassDensity, "slug/ft³")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Convert(&v, Class("pressure"), "MPa")
	assert.ErrorIs(t, err, ErrUnknownClass)

	_, err = Parse(1, ClassModulus, "kPa")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestRoundTripAllUnits(t *testing.T) {
	// parse(convert(x)) must land within half of the last displayed digit.
	samples := map[Class]float64{
		ClassDensity:  7850,    // kg/m³, steel
		ClassModulus:  200e9,   // Pa, steel
		ClassStrength: 250e6,   // Pa, mild steel yield
	}
	for class, si := range samples {
		specs, err := Units(class)
		require.NoError(t, err)
		for _, spec := range specs {
			t.Run(fmt.Sprintf("%s/%s", class, spec.Name), func(t *testing.T) {
				v := si
				s, err := Convert(&v, class, spec.Name)
				require.NoError(t, err)
				display, err := strconv.ParseFloat(s, 64)
				require.NoError(t, err, "display string should stay numeric")
				back, err := Parse(display, class, spec.Name)
				require.NoError(t, err)

				tol := spec.Factor * math.Pow(10, -float64(spec.Precision)) / 2 * 1.001
				assert.InDelta(t, si, back, tol)
			})
		}
	}
}

func TestDisplayValueAndParse(t *testing.T) {
	v, err := DisplayValue(1000, ClassDensity, "g/cm³")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)

	si, err := Parse(1.0, ClassDensity, "g/cm³")
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, si, 1e-9)

	si, err = Parse(36, ClassStrength, "ksi")
	require.NoError(t, err)
	assert.InDelta(t, 36*6.89476e6, si, 1e-3)
}

func TestUnitsOrdering(t *testing.T) {
	specs, err := Units(ClassModulus)
	require.NoError(t, err)
	require.Len(t, specs, 4)
	assert.Equal(t, "GPa", specs[0].Name)
	assert.Equal(t, "MPa", specs[1].Name)
	assert.Equal(t, "ksi", specs[2].Name)
	assert.Equal(t, "psi", specs[3].Name)

	specs, err = Units(ClassDensity)
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, "kg/m³", specs[0].Name)
}

func TestSelectionValidate(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.Validate())
	assert.Equal(t, DefaultSelection(), sel, "empty fields fall back to the metric preset")

	sel = Selection{Density: "g/cm³", Modulus: "ksi", Strength: "psi"}
	require.NoError(t, sel.Validate())

	sel = Selection{Density: "stone/gal"}
	assert.ErrorIs(t, sel.Validate(), ErrUnknownUnit)

	imp := ImperialSelection()
	require.NoError(t, imp.Validate())
	u, err := imp.UnitFor(ClassModulus)
	require.NoError(t, err)
	assert.Equal(t, "ksi", u)
}
