// Package report renders a validated cylinder design as a PDF datasheet
// for sharing and archiving.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	analysis "CylCalc/internal/calc/analysis"
)

// Input wraps one analysis request with the report header fields.
type Input struct {
	Project  string         `json:"project"`
	Author   string         `json:"author"`
	Title    string         `json:"title"`
	Notes    string         `json:"notes"`
	Analysis analysis.Input `json:"analysis"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	summary, err := analysis.Run(input.Analysis)
	if err != nil {
		analysis.WriteError(w, err)
		return
	}
	if input.Title == "" {
		input.Title = "Hydraulic Cylinder Design Report"
	}

	pdf := Build(input, summary)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cylinder-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Build lays out the report. Separated from the handler so tests can
// render without an HTTP round trip.
func Build(input Input, s analysis.Summary) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Input parameters")
	rec := s.Record
	row(pdf, "Working pressure", "%.1f MPa", rec.Pressure)
	row(pdf, "Bore diameter", "%.1f mm", rec.BoreDiameter)
	row(pdf, "Rod diameter", "%.1f mm", rec.RodDiameter)
	row(pdf, "Stroke", "%.1f mm", rec.Stroke)
	row(pdf, "Closed length", "%.1f mm", rec.ClosedLength)

	section(pdf, "Derived geometry")
	row(pdf, "Piston area", "%.1f mm2", s.PistonArea)
	row(pdf, "Annular area", "%.1f mm2", s.AnnularArea)
	row(pdf, "Open length", "%.1f mm", s.OpenLength)
	row(pdf, "Bore/rod ratio", "%.3f", s.BoreToRodRatio)
	row(pdf, "Minimum closed length", "%.1f mm", s.MinClosedLength)

	section(pdf, "Results")
	row(pdf, "Push force", "%.0f N", s.PushForce)
	row(pdf, "Pull force", "%.0f N", s.PullForce)
	row(pdf, "Minimum wall thickness", "%.2f mm", s.WallThickness)
	row(pdf, "Estimated weight", "%.1f kg", s.TotalWeight)

	if s.Buckling != nil {
		section(pdf, "Buckling check")
		pdf.Cell(0, 6, fmt.Sprintf("Mounting: %s", s.Buckling.Description))
		pdf.Ln(6)
		row(pdf, "Critical load", "%.0f N", s.Buckling.CriticalLoad)
		row(pdf, "Applied load", "%.0f N", s.Buckling.AppliedLoad)
		row(pdf, "Buckling factor", "%.2f", s.Buckling.BucklingFactor)
		row(pdf, "Effective length", "%.0f mm", s.Buckling.EffectiveLength)
		verdict := "NOT SAFE"
		if s.Buckling.IsSafe {
			verdict = "SAFE"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Verdict: %s", verdict))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
	}

	if input.Notes != "" {
		section(pdf, "Notes")
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, format string, v float64) {
	pdf.Cell(70, 6, label)
	pdf.Cell(0, 6, fmt.Sprintf(format, v))
	pdf.Ln(6)
}
