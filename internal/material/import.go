package material

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Import column order. Values are canonical SI; empty cells mean "no data".
// Row 1 is a header and is skipped.
var importColumns = []string{
	"name", "category", "density", "youngs_modulus", "yield_strength",
	"tensile_strength", "poisson_ratio", "shear_modulus", "thermal_expansion",
	"melting_point_c", "max_service_temp_c", "elongation_pct",
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	ImportID string       `json:"import_id"`
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped,omitempty"`
}

// Import ingests a multipart xlsx upload, one material per row, upserting
// valid rows and reporting the rest. A bad row never aborts the run.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	result := ImportResult{ImportID: uuid.NewString()}
	for i := 1; i < len(rows); i++ {
		m, err := parseImportRow(rows[i])
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		if err := h.Repo.Upsert(r.Context(), m); err != nil {
			log.Printf("import %s row %d upsert error: %v", result.ImportID, i+1, err)
			result.Skipped = append(result.Skipped, SkippedRow{Row: i + 1, Reason: "DB error"})
			continue
		}
		result.Imported++
	}

	log.Printf("import %s: %d imported, %d skipped", result.ImportID, result.Imported, len(result.Skipped))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func parseImportRow(row []string) (Material, error) {
	if len(row) < 2 {
		return Material{}, fmt.Errorf("need at least name and category")
	}
	m := Material{Name: strings.TrimSpace(row[0]), Category: strings.TrimSpace(row[1])}

	targets := []**float64{
		&m.Density, &m.YoungsModulus, &m.YieldStrength, &m.TensileStrength,
		&m.PoissonRatio, &m.ShearModulus, &m.ThermalExpansion,
		&m.MeltingPointC, &m.MaxServiceTempC, &m.ElongationPct,
	}
	for i, target := range targets {
		col := i + 2
		if col >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" || cell == "N/A" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Material{}, fmt.Errorf("column %s: not a number: %q", importColumns[col], cell)
		}
		*target = &v
	}

	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}
