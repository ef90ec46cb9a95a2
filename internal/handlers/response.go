package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports a failed operation with the underlying error exposed.
func writeError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

func writeLoanNotFound(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{
		Message: fmt.Sprintf("Loan with ID %s not found.", id),
	})
}
