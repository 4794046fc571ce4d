package handler

import (
	"encoding/json"
	"net/http"
)

// Fixed client-facing error messages. The resolve endpoint exposes exactly
// these two strings; underlying causes are logged server-side only.
const (
	msgInvalidInput  = "Invalid input provided"
	msgInternalError = "Internal server error"
	msgNotFound      = "adventure not found"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status code.
// Encoding failures at this point cannot be reported to the client; they
// are silently dropped because the status line is already written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends a JSON error body with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
