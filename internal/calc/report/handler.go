package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

type Input struct {
	Material string          `json:"material"`
	Units    units.Selection `json:"units"`
}

type Handler struct {
	Repo material.Repository
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Material == "" {
		http.Error(w, "Material name required", http.StatusBadRequest)
		return
	}
	if err := input.Units.Validate(); err != nil {
		http.Error(w, "Unknown unit", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.Get(r.Context(), input.Material)
	if err != nil {
		if errors.Is(err, material.ErrNotFound) {
			http.Error(w, "Material not found", http.StatusNotFound)
			return
		}
		log.Printf("report lookup error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	link := fmt.Sprintf("%s://%s/materials/%s", scheme, r.Host, url.PathEscape(m.Name))

	pdf, err := Build(m, input.Units, link)
	if err != nil {
		log.Printf("report build error: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"datasheet.pdf\"")
	w.Write(pdf)
}
