package mounting

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type schemaEntry struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Schema serves the declarative field schema of every mounting category so
// a client can render its input forms without hardcoding the variants.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	var entries []schemaEntry
	for _, cat := range Categories() {
		m, err := New(cat)
		if err != nil {
			http.Error(w, "Schema error", http.StatusInternalServerError)
			return
		}
		entries = append(entries, schemaEntry{
			Category:    m.Category(),
			Description: m.Description(),
			Fields:      m.FieldSchema(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
