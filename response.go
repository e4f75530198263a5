package flighttransfer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// statusFor maps a transfer error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, transfer.ErrInvalidInput),
		errors.Is(err, transfer.ErrEstimationUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, transfer.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
