// Package response provides utilities for sending consistent HTTP responses.
// Every payload is wrapped in the same envelope so clients can branch on a
// single success flag.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the uniform response wrapper. Data is set on success, Error on
// failure; Message carries optional human-readable context either way.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondData sends a 200 envelope wrapping data.
func RespondData(w http.ResponseWriter, data interface{}) {
	RespondJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// RespondMessage sends a success envelope carrying only a message.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Envelope{Success: true, Message: message})
}

// RespondError sends a failure envelope with the given status code.
// The message should be a user-friendly error description.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "query must be at least 2 characters")
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Envelope{Success: false, Error: message})
}
