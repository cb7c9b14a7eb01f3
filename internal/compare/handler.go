package compare

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

type Handler struct {
	Repo material.Repository
}

type Input struct {
	Names []string        `json:"names"`
	Axes  []string        `json:"axes,omitempty"`
	Units units.Selection `json:"units"`
}

type Result struct {
	Series  []Series        `json:"series"`
	Ranking []Ranking       `json:"ranking"`
	Units   units.Selection `json:"units"`
	Missing []string        `json:"missing,omitempty"`
}

// Compare backs the comparison view: resolve the named materials, normalize
// them over the requested axes and report an overall ranking. Names absent
// from the store are listed back instead of failing the whole request.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Names) < 2 {
		http.Error(w, "At least two material names required", http.StatusBadRequest)
		return
	}
	if err := input.Units.Validate(); err != nil {
		http.Error(w, "Unknown unit", http.StatusBadRequest)
		return
	}

	axisSet := DefaultAxes()
	if len(input.Axes) > 0 {
		axisSet = axisSet[:0]
		for _, key := range input.Axes {
			axis, ok := AxisByKey(key)
			if !ok {
				http.Error(w, fmt.Sprintf("Unknown axis %q", key), http.StatusBadRequest)
				return
			}
			axisSet = append(axisSet, axis)
		}
	}

	mats, err := h.Repo.ByNames(r.Context(), input.Names)
	if err != nil {
		log.Printf("compare lookup error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	found := make(map[string]bool, len(mats))
	for _, m := range mats {
		found[m.Name] = true
	}
	var missing []string
	for _, name := range input.Names {
		if !found[name] {
			missing = append(missing, name)
		}
	}

	series := Normalize(mats, axisSet, input.Units)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{
		Series:  series,
		Ranking: Rank(series, mats),
		Units:   input.Units,
		Missing: missing,
	})
}
