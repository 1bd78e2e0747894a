// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler converts application errors into HTTP responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// WriteHTTPError normalizes err to a StandardError, logs it, and writes a
// JSON error body with a status code derived from the error code.
func (h *ErrorHandler) WriteHTTPError(w http.ResponseWriter, err error) {
	stdErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(stdErr.Code))
	_ = json.NewEncoder(w).Encode(stdErr)
}

// normalizeError ensures we always have a StandardError.
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func statusFor(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidFilterFormat:
		return http.StatusBadRequest
	case ErrCodeInterpreterTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeCatalogLoadFailed, ErrCodeCacheUnavailable, ErrCodeInterpreterFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
