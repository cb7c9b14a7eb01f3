package material

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

type Handler struct {
	Repo Repository
}

// List serves the browse table: all materials, optionally one category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mats, err := h.Repo.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("material list error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mats)
}

// Categories serves the distinct category tags for the filter control.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Repo.Categories(r.Context())
	if err != nil {
		log.Printf("categories error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cats)
}

type Derived struct {
	ShearModulus     *float64 `json:"shear_modulus,omitempty"`
	SpecificStrength *float64 `json:"specific_strength,omitempty"`
	SpecificModulus  *float64 `json:"specific_modulus,omitempty"`
}

type DetailResult struct {
	Material Material          `json:"material"`
	Derived  Derived           `json:"derived"`
	Display  map[string]string `json:"display"`
	Units    units.Selection   `json:"units"`
}

// Get serves one record with derived values and display strings in the
// requested unit selection.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	m, err := h.Repo.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Material not found", http.StatusNotFound)
			return
		}
		log.Printf("material get error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	sel, err := units.SelectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "Unknown unit", http.StatusBadRequest)
		return
	}

	display, err := displayStrings(m, sel)
	if err != nil {
		log.Printf("display conversion error: %v", err)
		http.Error(w, "Unit table error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DetailResult{
		Material: m,
		Derived: Derived{
			ShearModulus:     m.DerivedShearModulus(),
			SpecificStrength: m.SpecificStrength(),
			SpecificModulus:  m.SpecificModulus(),
		},
		Display: display,
		Units:   sel,
	})
}

// displayStrings renders the class-mapped properties through the registry.
// The derived shear modulus stands in for a missing stored one.
func displayStrings(m Material, sel units.Selection) (map[string]string, error) {
	fields := []struct {
		key   string
		value *float64
		class units.Class
	}{
		{"density", m.Density, units.ClassDensity},
		{"youngs_modulus", m.YoungsModulus, units.ClassModulus},
		{"shear_modulus", m.DerivedShearModulus(), units.ClassModulus},
		{"yield_strength", m.YieldStrength, units.ClassStrength},
		{"tensile_strength", m.TensileStrength, units.ClassStrength},
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		unit, err := sel.UnitFor(f.class)
		if err != nil {
			return nil, err
		}
		s, err := units.Convert(f.value, f.class, unit)
		if err != nil {
			return nil, err
		}
		out[f.key] = s
	}
	return out, nil
}

// Create handles the admin create endpoint.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := m.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(r.Context(), m); err != nil {
		log.Printf("material create error: %v", err)
		http.Error(w, "Material already exists or DB error", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Update handles the admin update endpoint; the path name wins over the body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var m Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	m.Name = mux.Vars(r)["name"]
	if err := m.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Update(r.Context(), m); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Material not found", http.StatusNotFound)
			return
		}
		log.Printf("material update error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
