package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the wire format for every API response, matching the upstream
// listings feed: a data payload plus status and success flags.
type Envelope struct {
	Data          any    `json:"data,omitempty"`
	Status        int    `json:"status"`
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// WriteData writes a success envelope around data.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{
		Data:    data,
		Status:  status,
		Success: true,
	})
}

// WriteError writes a failure envelope with the given message.
func WriteError(w http.ResponseWriter, status int, message, correlationID string) {
	WriteJSON(w, status, Envelope{
		Status:        status,
		Success:       false,
		Message:       message,
		CorrelationID: correlationID,
	})
}
