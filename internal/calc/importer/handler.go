// Package importer batch-checks cylinder designs uploaded as an xlsx
// sheet, one design per row. Rows that fail validation or the wall solve
// are skipped, matching the tolerant import semantics of the other tools.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	analysis "CylCalc/internal/calc/analysis"
	cylinder "CylCalc/internal/calc/cylinder"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Skipped int                `json:"skipped"`
	Results []analysis.Summary `json:"results"`
}

func (h *Handler) Cylinders(w http.ResponseWriter, r *http.Request) {
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

	result := ImportResult{}
	for i := 1; i < len(rows); i++ {
		params, err := ParseRow(rows[i])
		if err != nil {
			result.Skipped++
			continue
		}
		summary, err := analysis.Run(analysis.Input{Cylinder: params})
		if err != nil {
			result.Skipped++
			continue
		}
		result.Results = append(result.Results, summary)
	}
	result.Count = len(result.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ParseRow maps one sheet row to a cylinder record.
// Expected columns: pressure, bore, rod, stroke, closed length,
// extra margin (optional).
func ParseRow(row []string) (cylinder.Params, error) {
	if len(row) < 5 {
		return cylinder.Params{}, fmt.Errorf("row needs at least 5 columns, got %d", len(row))
	}
	pressure, err := toFloat(row[0])
	if err != nil {
		return cylinder.Params{}, err
	}
	bore, err := toFloat(row[1])
	if err != nil {
		return cylinder.Params{}, err
	}
	rod, err := toFloat(row[2])
	if err != nil {
		return cylinder.Params{}, err
	}
	stroke, err := toFloat(row[3])
	if err != nil {
		return cylinder.Params{}, err
	}
	closed, err := toFloat(row[4])
	if err != nil {
		return cylinder.Params{}, err
	}
	params := cylinder.Params{
		Pressure:     pressure,
		BoreDiameter: bore,
		RodDiameter:  rod,
		Stroke:       stroke,
		ClosedLength: closed,
	}
	if len(row) > 5 && row[5] != "" {
		margin, err := toFloat(row[5])
		if err != nil {
			return cylinder.Params{}, err
		}
		params.ExtraMargin = &margin
	}
	return params, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
