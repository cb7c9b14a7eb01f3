package export

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

type Handler struct {
	Repo material.Repository
}

// Materials serves ?format=csv|xlsx&category=&units= as a file download.
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		http.Error(w, "Unknown format, want csv or xlsx", http.StatusBadRequest)
		return
	}

	sel, err := units.SelectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "Unknown unit", http.StatusBadRequest)
		return
	}

	mats, err := h.Repo.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("export list error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("materials-%s.%s", time.Now().Format("2006-01-02"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "xlsx" {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = WriteXLSX(w, mats, sel)
	} else {
		w.Header().Set("Content-Type", "text/csv")
		err = WriteCSV(w, mats, sel)
	}
	if err != nil {
		log.Printf("export write error: %v", err)
	}
}
