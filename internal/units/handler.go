package units

import (
	"encoding/json"
	"net/http"
	"net/url"
)

type Handler struct{}

// SelectionFromQuery builds a Selection from request query parameters:
// ?units=imperial picks the preset, ?density_unit= etc. override per class.
func SelectionFromQuery(q url.Values) (Selection, error) {
	sel := DefaultSelection()
	if q.Get("units") == "imperial" {
		sel = ImperialSelection()
	}
	if u := q.Get("density_unit"); u != "" {
		sel.Density = u
	}
	if u := q.Get("modulus_unit"); u != "" {
		sel.Modulus = u
	}
	if u := q.Get("strength_unit"); u != "" {
		sel.Strength = u
	}
	if err := sel.Validate(); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

type ListResult struct {
	Class Class      `json:"class"`
	Units []UnitSpec `json:"units"`
}

// List serves the unit table for populating unit-selector controls.
// Without ?class= it returns every class.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	class := Class(r.URL.Query().Get("class"))
	if class == "" {
		var out []ListResult
		for _, c := range Classes() {
			specs, err := Units(c)
			if err != nil {
				http.Error(w, "Unit table error", http.StatusInternalServerError)
				return
			}
			out = append(out, ListResult{Class: c, Units: specs})
		}
		json.NewEncoder(w).Encode(out)
		return
	}

	specs, err := Units(class)
	if err != nil {
		http.Error(w, "Unknown quantity class", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(ListResult{Class: class, Units: specs})
}

type ConvertInput struct {
	Value float64 `json:"value"`
	Class Class   `json:"class"`
	Unit  string  `json:"unit"`
	To    string  `json:"to"`
}

type ConvertResult struct {
	SI      float64 `json:"si"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Unit    string  `json:"unit"`
	Class   Class   `json:"class"`
}

// Convert accepts a user-entered value in one registered unit and returns it
// in another, always passing through the canonical SI value.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var input ConvertInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	si, err := Parse(input.Value, input.Class, input.Unit)
	if err != nil {
		http.Error(w, "Unknown unit or class", http.StatusBadRequest)
		return
	}
	if input.To == "" {
		input.To = input.Unit
	}
	value, err := DisplayValue(si, input.Class, input.To)
	if err != nil {
		http.Error(w, "Unknown unit or class", http.StatusBadRequest)
		return
	}
	display, err := Convert(&si, input.Class, input.To)
	if err != nil {
		http.Error(w, "Unknown unit or class", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConvertResult{
		SI:      si,
		Value:   value,
		Display: display,
		Unit:    input.To,
		Class:   input.Class,
	})
}
