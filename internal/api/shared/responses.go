package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/redact"
	"github.com/coursekit/course-api/internal/schema"
)

// RespondWithJSON writes data as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Error("failed to encode JSON response",
			"error", err)
	}
}

// RespondWithError writes `{"details": message}` with the given status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, schema.InternalErrorResponse{Details: message})
}

// RespondWithErrorAndLog writes `{"details": message}` and logs err redacted.
// 5xx responses are logged at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context(), slog.Default()).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, schema.InternalErrorResponse{Details: message})
}

// RespondWithValidationError writes the field errors of ve with status 422.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, ve *domain.ValidationError) {
	details := make([]schema.ValidationError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		details = append(details, schema.ValidationError{
			Type:     fe.Type,
			Input:    fe.Input,
			Context:  fe.Context,
			Message:  fe.Message,
			Location: fe.Location,
		})
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("request failed validation",
		"path", r.URL.Path,
		"errors", len(details))

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, schema.ValidationErrorResponse{Details: details})
}
