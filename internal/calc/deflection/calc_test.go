package deflection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testL = 2.0     // m
	testP = 1000.0  // N
	testE = 200e9   // Pa
	testI = 8.33e-6 // m⁴
)

func TestCenterLoadClosedForm(t *testing.T) {
	// Midspan load at midspan: δ = P·L³ / (48·E·I)
	want := testP * math.Pow(testL, 3) / (48 * testE * testI)

	got, err := DeflectionAt(testL, testP, testE, testI, testL/2, testL/2)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 1.0004e-4, got, 1e-8, "about 0.1 mm for this beam")

	max, err := MaxDeflection(testL, testP, testE, testI, testL/2)
	require.NoError(t, err)
	assert.InDelta(t, want, max.Deflection, 1e-12)
	assert.InDelta(t, 1.0, max.Location, 1e-12)
}

func TestBranchContinuityAtLoad(t *testing.T) {
	cases := []float64{0.3, 0.763, 1.0, 1.4, 1.95}
	for _, a := range cases {
		left, err := DeflectionAt(testL, testP, testE, testI, a, a)
		require.NoError(t, err)
		right, err := DeflectionAt(testL, testP, testE, testI, a, a+1e-9)
		require.NoError(t, err)
		assert.InDelta(t, left, right, 1e-12, "branches must agree at x=a=%g", a)
	}
}

func TestMirrorSymmetry(t *testing.T) {
	a, x := 0.6, 1.3
	d1, err := DeflectionAt(testL, testP, testE, testI, a, x)
	require.NoError(t, err)
	d2, err := DeflectionAt(testL, testP, testE, testI, testL-a, testL-x)
	require.NoError(t, err)
	assert.InDelta(t, d1, d2, 1e-15)
}

func TestOffCenterMaxLocation(t *testing.T) {
	// a=0.5, b=1.5: x* = sqrt((L²−b²)/3) = sqrt(0.58333) ≈ 0.7638
	max, err := MaxDeflection(testL, testP, testE, testI, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt((testL*testL-1.5*1.5)/3), max.Location, 1e-12)
	assert.InDelta(t, 0.7638, max.Location, 1e-4)
	assert.Greater(t, max.Location, 0.0)
	assert.Less(t, max.Location, testL)
	assert.Greater(t, max.Deflection, 0.0)

	// Mirrored load position lands at the mirrored location.
	mirrored, err := MaxDeflection(testL, testP, testE, testI, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, testL-max.Location, mirrored.Location, 1e-12)
	assert.InDelta(t, max.Deflection, mirrored.Deflection, 1e-15)
}

func TestMaxLocationStaysInterior(t *testing.T) {
	for _, a := range []float64{0.01, 0.2, 0.5, 1.0, 1.5, 1.8, 1.99} {
		max, err := MaxDeflection(testL, testP, testE, testI, a)
		require.NoError(t, err)
		assert.Greater(t, max.Location, 0.0, "a=%g", a)
		assert.Less(t, max.Location, testL, "a=%g", a)
	}
}

func TestBoundaryRejection(t *testing.T) {
	_, err := DeflectionAt(testL, testP, testE, testI, 0.5, testL+0.001)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DeflectionAt(testL, testP, testE, testI, -0.1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DeflectionAt(testL, testP, testE, testI, testL+0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// The max needs the load strictly between the supports.
	_, err = MaxDeflection(testL, testP, testE, testI, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = MaxDeflection(testL, testP, testE, testI, testL)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDegeneratePolicy(t *testing.T) {
	// Zero stiffness deflects zero instead of failing.
	d, err := DeflectionAt(testL, testP, 0, testI, 0.5, 1)
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = DeflectionAt(testL, testP, testE, 0, 0.5, 1)
	require.NoError(t, err)
	assert.Zero(t, d)

	max, err := MaxDeflection(testL, testP, 0, testI, 0.5)
	require.NoError(t, err)
	assert.Zero(t, max.Deflection)
	assert.InDelta(t, testL/2, max.Location, 1e-12)

	// Zero load reports midspan as well.
	max, err = MaxDeflection(testL, 0, testE, testI, 0.5)
	require.NoError(t, err)
	assert.Zero(t, max.Deflection)
	assert.InDelta(t, testL/2, max.Location, 1e-12)
}

func TestLoadAtSupportDeflectsZero(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1.7, testL} {
		d, err := DeflectionAt(testL, testP, testE, testI, 0, x)
		require.NoError(t, err)
		assert.Zero(t, d)

		d, err = DeflectionAt(testL, testP, testE, testI, testL, x)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestCalculate(t *testing.T) {
	x := 1.0
	in := Input{SpanM: testL, LoadN: testP, EPa: testE, IM4: testI, LoadPosM: 1, EvalPosM: &x}
	res, err := Calculate(in)
	require.NoError(t, err)
	require.NotNil(t, res.DeflectionM)
	assert.InDelta(t, 1.0004e-4, *res.DeflectionM, 1e-8)
	assert.InDelta(t, 1.0004e-4, res.MaxDeflectionM, 1e-8)
	assert.Equal(t, testI, res.IUsedM4)
	assert.NotEmpty(t, res.Notes)
}

func TestCalculateRectangleBackfill(t *testing.T) {
	in := Input{SpanM: testL, LoadN: testP, EPa: testE, LoadPosM: 1, WidthM: 0.1, HeightM: 0.2}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*math.Pow(0.2, 3)/12, res.IUsedM4, 1e-12)
	assert.Greater(t, res.MaxDeflectionM, 0.0)
}

func TestCalculateRejects(t *testing.T) {
	_, err := Calculate(Input{SpanM: 0, LoadN: testP, EPa: testE, IM4: testI, LoadPosM: 0.5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(Input{SpanM: testL, LoadN: testP, EPa: -1, IM4: testI, LoadPosM: 0.5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(Input{SpanM: testL, LoadN: testP, EPa: testE, IM4: testI, LoadPosM: testL})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateBatch(t *testing.T) {
	in := BatchInput{Items: []Input{
		{SpanM: testL, LoadN: testP, EPa: testE, IM4: testI, LoadPosM: 0.5},
		{SpanM: 3, LoadN: 500, EPa: 70e9, IM4: 1e-6, LoadPosM: 1.5},
	}}
	res, err := CalculateBatch(in)
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	_, err = CalculateBatch(BatchInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	in.Items[1].LoadPosM = 99
	_, err = CalculateBatch(in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
