package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedShearModulus(t *testing.T) {
	m := Material{YoungsModulus: fp(200e9), PoissonRatio: fp(0.29)}
	g := m.DerivedShearModulus()
	require.NotNil(t, g)
	assert.InDelta(t, 200e9/(2*1.29), *g, 1e3)

	// A stored value wins over the formula.
	m.ShearModulus = fp(80e9)
	g = m.DerivedShearModulus()
	require.NotNil(t, g)
	assert.Equal(t, 80e9, *g)
}

func TestDerivedShearModulusNotComputable(t *testing.T) {
	assert.Nil(t, Material{YoungsModulus: fp(200e9)}.DerivedShearModulus())
	assert.Nil(t, Material{PoissonRatio: fp(0.3)}.DerivedShearModulus())

	// ν <= -1 divides by zero or flips sign; treated as not computable.
	m := Material{YoungsModulus: fp(200e9), PoissonRatio: fp(-1)}
	assert.Nil(t, m.DerivedShearModulus())
	m.PoissonRatio = fp(-1.5)
	assert.Nil(t, m.DerivedShearModulus())
}

func TestSpecificValues(t *testing.T) {
	m := Material{Density: fp(2700), YoungsModulus: fp(68.9e9), YieldStrength: fp(276e6)}

	ss := m.SpecificStrength()
	require.NotNil(t, ss)
	assert.InDelta(t, 276e6/2700, *ss, 1e-6)

	sm := m.SpecificModulus()
	require.NotNil(t, sm)
	assert.InDelta(t, 68.9e9/2700, *sm, 1e-3)

	assert.Nil(t, Material{YieldStrength: fp(276e6)}.SpecificStrength())
	assert.Nil(t, Material{Density: fp(0), YieldStrength: fp(276e6)}.SpecificStrength())
	assert.Nil(t, Material{Density: fp(2700)}.SpecificModulus())
}

func TestValidate(t *testing.T) {
	ok := Material{Name: "X", Category: "Metal", Density: fp(1000)}
	require.NoError(t, ok.Validate())

	assert.ErrorIs(t, Material{Category: "Metal"}.Validate(), ErrInvalidMaterial)
	assert.ErrorIs(t, Material{Name: "X"}.Validate(), ErrInvalidMaterial)
	assert.ErrorIs(t, Material{Name: " ", Category: "Metal"}.Validate(), ErrInvalidMaterial)

	bad := Material{Name: "X", Category: "Metal", Density: fp(-5)}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMaterial)

	bad = Material{Name: "X", Category: "Metal", PoissonRatio: fp(0.7)}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMaterial)

	bad = Material{Name: "X", Category: "Metal", PoissonRatio: fp(-1)}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMaterial)
}

func TestSeedSanity(t *testing.T) {
	require.GreaterOrEqual(t, len(Seed), 10)

	names := make(map[string]bool)
	for _, m := range Seed {
		require.NoError(t, m.Validate(), m.Name)
		assert.False(t, names[m.Name], "duplicate seed name %q", m.Name)
		names[m.Name] = true
	}

	cats := CategoriesOf(Seed)
	assert.GreaterOrEqual(t, len(cats), 4)
	assert.IsIncreasing(t, cats)

	m, ok := SeedByName("AISI 1045 Steel")
	require.True(t, ok)
	assert.Equal(t, "Metal", m.Category)
	_, ok = SeedByName("Unobtainium")
	assert.False(t, ok)
}
