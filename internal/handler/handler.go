package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pulse-meals/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP response. Domain
// errors keep their stable code; everything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		case model.ErrCodeInvalidTransition:
			status = http.StatusConflict
		}
		logger.Warn().Str("code", domainErr.Code).Str("error", domainErr.Message).Msg("domain error")
		writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	var persistErr *model.PersistenceError
	if errors.As(err, &persistErr) {
		logger.Error().Err(persistErr).Str("op", persistErr.Op).Msg("persistence error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "storage operation failed",
			Code:  model.ErrCodePersistenceFailure,
		})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal error", logger)
}
