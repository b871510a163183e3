// Package handler provides the HTTP handlers for the Tempus Tracker API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// messageResponse is the body shape shared by every endpoint.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError translates an error to its declared HTTP status. Typed domain
// failures map 1:1 and carry their message with the sentinel prefix
// stripped; anything unclassified collapses to a generic internal error
// without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	if !domain.IsClassified(err) {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		return
	}
	writeJSON(w, domain.StatusCode(err), messageResponse{Message: domain.Message(err)})
}
