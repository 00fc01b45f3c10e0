package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	cylinder "CylCalc/internal/calc/cylinder"
)

type Handler struct{}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Param string `json:"param,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	summary, err := Run(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// WriteError renders a design error with its kind and offending parameter
// so a client form can highlight the field. Other errors stay generic.
func WriteError(w http.ResponseWriter, err error) {
	var de *cylinder.Error
	if errors.As(err, &de) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{
			Error: de.Message,
			Kind:  de.Kind.String(),
			Param: de.Param,
		})
		return
	}
	http.Error(w, "Calculation error", http.StatusBadRequest)
}
