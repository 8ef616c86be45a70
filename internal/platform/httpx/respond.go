// Package httpx holds the JSON response helpers shared by all handlers.
// Extracted once the same writeJSON started repeating across domain packages.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body. Detail is only populated for
// validation failures and never carries store internals.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {message} with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// WriteValidationError writes a 400 with {message, error} where error carries
// the field-level validation detail.
func WriteValidationError(w http.ResponseWriter, message, detail string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Detail: detail})
}
