package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

// Standard response types for consistent API responses

// ResultResponse acknowledges a processed webhook delivery
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondOK sends the standard webhook acknowledgment
func respondOK(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, ResultResponse{Result: "ok"})
}

// User-facing error messages
const (
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgMalformedPayload    = "Malformed event payload"
	ErrMsgUnknownError        = "Unknown error"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMalformedPayload):
		return http.StatusBadRequest, ErrMsgMalformedPayload
	}

	return http.StatusInternalServerError, ErrMsgUnknownError
}
