// Package datasheet exports one analyzed cylinder design as an xlsx
// workbook, one labelled value per row.
package datasheet

import (
	"encoding/json"
	"net/http"

	"github.com/xuri/excelize/v2"

	analysis "CylCalc/internal/calc/analysis"
)

const sheet = "Design"

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input analysis.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	summary, err := analysis.Run(input)
	if err != nil {
		analysis.WriteError(w, err)
		return
	}

	f, err := Build(summary)
	if err != nil {
		http.Error(w, "Datasheet generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cylinder-datasheet.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Datasheet generation error", http.StatusInternalServerError)
		return
	}
}

// Build fills the workbook from one analysis summary.
func Build(s analysis.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Parameter", "Value", "Unit"},
		{"Working pressure", s.Record.Pressure, "MPa"},
		{"Bore diameter", s.Record.BoreDiameter, "mm"},
		{"Rod diameter", s.Record.RodDiameter, "mm"},
		{"Stroke", s.Record.Stroke, "mm"},
		{"Closed length", s.Record.ClosedLength, "mm"},
		{"Open length", s.OpenLength, "mm"},
		{"Piston area", s.PistonArea, "mm2"},
		{"Annular area", s.AnnularArea, "mm2"},
		{"Push force", s.PushForce, "N"},
		{"Pull force", s.PullForce, "N"},
		{"Minimum wall thickness", s.WallThickness, "mm"},
		{"Estimated weight", s.TotalWeight, "kg"},
	}
	if s.Buckling != nil {
		rows = append(rows,
			[]any{"Mounting", s.Buckling.Category, ""},
			[]any{"Critical load", s.Buckling.CriticalLoad, "N"},
			[]any{"Buckling factor", s.Buckling.BucklingFactor, ""},
			[]any{"Buckling safe", s.Buckling.IsSafe, ""},
		)
	}

	for i, rowVals := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rowVals); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, err
	}
	return f, nil
}
