package sealcatalog

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct{}

// Lookup serves a single catalog query:
// GET ...?category=piston&diameter=80
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	category := Category(r.URL.Query().Get("category"))
	diameter, err := strconv.ParseFloat(r.URL.Query().Get("diameter"), 64)
	if err != nil || diameter <= 0 {
		http.Error(w, "Valid diameter required", http.StatusBadRequest)
		return
	}
	profile, ok := LookupByDiameter(category, diameter)
	if !ok {
		http.Error(w, "No catalog profile for this category and diameter", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
