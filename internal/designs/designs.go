// Package designs is the saved-design library: named cylinder records
// stored per user. A payload is accepted only after it passes the full
// construction validation, so the library never holds an invalid design.
package designs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	auth "CylCalc/internal/auth"
	analysis "CylCalc/internal/calc/analysis"
	cylinder "CylCalc/internal/calc/cylinder"
	repo "CylCalc/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name   string          `json:"name"`
	Record cylinder.Params `json:"record"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Design name required", http.StatusBadRequest)
		return
	}

	c, err := cylinder.FromRecord(req.Record)
	if err != nil {
		analysis.WriteError(w, err)
		return
	}

	// Store the resolved record so defaults are pinned at save time.
	payload, err := json.Marshal(c.ToRecord())
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), userID, req.Name, payload)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	design, err := h.Repo.GetDesign(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(design)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteDesign(r.Context(), userID, id); err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
