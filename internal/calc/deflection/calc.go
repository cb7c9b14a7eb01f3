package deflection

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input")

// DeflectionAt evaluates the closed-form Euler-Bernoulli deflection of a
// simply supported beam carrying one transverse point load P (N) at distance
// a (m) from the left support, at position x (m). L is the span (m), E the
// Young's modulus (Pa), I the second moment of area (m⁴). Positive values
// point with the load. A beam with E·I·L == 0 deflects 0 by policy instead
// of failing.
func DeflectionAt(L, P, E, I, a, x float64) (float64, error) {
	if a < 0 || a > L {
		return 0, fmt.Errorf("%w: load position a=%g outside [0, %g]", ErrInvalidInput, a, L)
	}
	if x < 0 || x > L {
		return 0, fmt.Errorf("%w: evaluation position x=%g outside [0, %g]", ErrInvalidInput, x, L)
	}
	if E*I*L == 0 {
		return 0, nil
	}

	b := L - a
	if x <= a {
		// Left of the load: δ = P·b·x/(6·E·I·L) · (L² − b² − x²)
		return (P * b * x) / (6 * E * I * L) * (L*L - b*b - x*x), nil
	}
	// Right of the load: mirror with the distance from the right support.
	xr := L - x
	return (P * a * xr) / (6 * E * I * L) * (L*L - a*a - xr*xr), nil
}

type MaxResult struct {
	Deflection float64 `json:"deflection"` // m
	Location   float64 `json:"location"`   // m from the left support
}

// MaxDeflection locates the global maximum deflection for a load strictly
// inside the span. The location comes from zeroing the slope of the segment
// formula: x* = sqrt((L² − b²)/3), mirrored when the load sits right of
// midspan. Zero load or zero stiffness yields {0, L/2} by policy.
func MaxDeflection(L, P, E, I, a float64) (MaxResult, error) {
	if a <= 0 || a >= L {
		return MaxResult{}, fmt.Errorf("%w: load position a=%g must be strictly inside (0, %g)", ErrInvalidInput, a, L)
	}
	if P == 0 || E*I*L == 0 {
		return MaxResult{Deflection: 0, Location: L / 2}, nil
	}

	b := L - a
	var x float64
	if a <= b {
		x = math.Sqrt((L*L - b*b) / 3)
	} else {
		x = L - math.Sqrt((L*L-a*a)/3)
	}

	d, err := DeflectionAt(L, P, E, I, a, x)
	if err != nil {
		return MaxResult{}, err
	}
	return MaxResult{Deflection: d, Location: x}, nil
}

type Input struct {
	SpanM    float64  `json:"span_m"`
	LoadN    float64  `json:"load_n"`
	EPa      float64  `json:"e_pa"`
	IM4      float64  `json:"i_m4"`
	LoadPosM float64  `json:"load_pos_m"`
	EvalPosM *float64 `json:"eval_pos_m,omitempty"`
	WidthM   float64  `json:"width_m"`
	HeightM  float64  `json:"height_m"`
}

type Result struct {
	MaxDeflectionM float64  `json:"max_deflection_m"`
	MaxLocationM   float64  `json:"max_location_m"`
	DeflectionM    *float64 `json:"deflection_m,omitempty"`
	IUsedM4        float64  `json:"i_used_m4"`
	Notes          string   `json:"notes"`
}

// Calculate backs the calculator endpoint. Inputs arrive already in SI; a
// missing I can be backfilled from a rectangular width × height section.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("%w: span must be positive", ErrInvalidInput)
	}
	if in.EPa < 0 || in.IM4 < 0 {
		return Result{}, fmt.Errorf("%w: E and I must not be negative", ErrInvalidInput)
	}

	I := in.IM4
	if I == 0 && in.WidthM > 0 && in.HeightM > 0 {
		// Rectangle: I = b·h³/12
		I = in.WidthM * math.Pow(in.HeightM, 3) / 12.0
	}

	max, err := MaxDeflection(in.SpanM, in.LoadN, in.EPa, I, in.LoadPosM)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		MaxDeflectionM: max.Deflection,
		MaxLocationM:   max.Location,
		IUsedM4:        I,
		Notes:          "Simply supported beam, single point load (Euler-Bernoulli).",
	}

	if in.EvalPosM != nil {
		d, err := DeflectionAt(in.SpanM, in.LoadN, in.EPa, I, in.LoadPosM, *in.EvalPosM)
		if err != nil {
			return Result{}, err
		}
		res.DeflectionM = &d
	}
	return res, nil
}
