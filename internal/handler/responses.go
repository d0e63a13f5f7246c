package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mirefen/GloamBot_Go/internal/cooldown"
	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first; headers are already sent, so an
	// encode failure can only be logged
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
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

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cooldownErr cooldown.ErrOnCooldown
	if errors.As(err, &cooldownErr) {
		// The cooldown error already renders the remaining time
		return http.StatusTooManyRequests, cooldownErr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrActorNotFound):
		return http.StatusNotFound, ErrMsgActorNotFoundError
	case errors.Is(err, domain.ErrUnknownLocation):
		return http.StatusBadRequest, ErrMsgUnknownLocationErr
	case errors.Is(err, domain.ErrUnknownMonster):
		return http.StatusBadRequest, ErrMsgUnknownMonsterError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStateInconsistent):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
