// Package material defines the material record every other part of the
// application works with. Properties are optional and stored once each, in
// canonical SI units; all display conversion happens in internal/units.
package material

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Material is one reference record, keyed by its unique name. Optional
// properties are nil when the source data does not provide them.
type Material struct {
	Name     string `json:"name"`
	Category string `json:"category"`

	Density          *float64 `json:"density,omitempty"`           // kg/m³
	YoungsModulus    *float64 `json:"youngs_modulus,omitempty"`    // Pa
	YieldStrength    *float64 `json:"yield_strength,omitempty"`    // Pa
	TensileStrength  *float64 `json:"tensile_strength,omitempty"`  // Pa
	PoissonRatio     *float64 `json:"poisson_ratio,omitempty"`     // dimensionless
	ShearModulus     *float64 `json:"shear_modulus,omitempty"`     // Pa
	ThermalExpansion *float64 `json:"thermal_expansion,omitempty"` // 1/°C
	MeltingPointC    *float64 `json:"melting_point_c,omitempty"`   // °C
	MaxServiceTempC  *float64 `json:"max_service_temp_c,omitempty"`
	ElongationPct    *float64 `json:"elongation_pct,omitempty"`
}

var (
	ErrInvalidMaterial = errors.New("invalid material")
	ErrNotFound        = errors.New("material not found")
)

// DerivedShearModulus returns the stored shear modulus when present,
// otherwise E/(2(1+ν)) when both inputs exist. ν <= -1 makes the formula
// blow up, so it counts as not computable.
func (m Material) DerivedShearModulus() *float64 {
	if m.ShearModulus != nil {
		return m.ShearModulus
	}
	if m.YoungsModulus == nil || m.PoissonRatio == nil {
		return nil
	}
	nu := *m.PoissonRatio
	if nu <= -1 {
		return nil
	}
	g := *m.YoungsModulus / (2 * (1 + nu))
	return &g
}

// SpecificStrength is yield strength over density (Pa·m³/kg), defined only
// when both inputs are present and density is nonzero.
func (m Material) SpecificStrength() *float64 {
	if m.YieldStrength == nil || m.Density == nil || *m.Density == 0 {
		return nil
	}
	v := *m.YieldStrength / *m.Density
	return &v
}

// SpecificModulus is Young's modulus over density (Pa·m³/kg).
func (m Material) SpecificModulus() *float64 {
	if m.YoungsModulus == nil || m.Density == nil || *m.Density == 0 {
		return nil
	}
	v := *m.YoungsModulus / *m.Density
	return &v
}

// Validate checks a record before it is created or imported.
func (m Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidMaterial)
	}
	if strings.TrimSpace(m.Category) == "" {
		return fmt.Errorf("%w: category required", ErrInvalidMaterial)
	}
	positive := map[string]*float64{
		"density":          m.Density,
		"youngs_modulus":   m.YoungsModulus,
		"yield_strength":   m.YieldStrength,
		"tensile_strength": m.TensileStrength,
		"shear_modulus":    m.ShearModulus,
	}
	for field, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidMaterial, field)
		}
	}
	if m.PoissonRatio != nil && (*m.PoissonRatio <= -1 || *m.PoissonRatio > 0.5) {
		return fmt.Errorf("%w: poisson_ratio outside (-1, 0.5]", ErrInvalidMaterial)
	}
	return nil
}

// Repository is the read/write surface the handlers need. Postgres and the
// in-memory seed store both implement it (internal/repo).
type Repository interface {
	List(ctx context.Context, category string) ([]Material, error)
	Get(ctx context.Context, name string) (Material, error)
	ByNames(ctx context.Context, names []string) ([]Material, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, m Material) error
	Update(ctx context.Context, m Material) error
	Upsert(ctx context.Context, m Material) error
}

// CategoriesOf collects the distinct category tags of a material set, sorted.
func CategoriesOf(mats []Material) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range mats {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	sort.Strings(out)
	return out
}
