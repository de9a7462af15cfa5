package server

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the JSON shape of every error reply
type errorResponse struct {
	Error string `json:"error"`
}

// writeError sends a JSON error response with the given status
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// writeJSON sends a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
