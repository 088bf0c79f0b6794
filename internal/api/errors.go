package api

import (
	"errors"
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/service/auth"
	"github.com/coursekit/course-api/internal/store"
)

// Messages returned in the details field of error responses.
const (
	MsgUserNotFound       = "User not found"
	MsgFileNotFound       = "File not found"
	MsgCourseNotFound     = "Course not found"
	MsgExerciseNotFound   = "Exercise not found"
	MsgNotFound           = "Not found"
	MsgEmailExists        = "User with this email already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidToken       = "Invalid token"
	MsgTokenExpired       = "Token expired"
	MsgInvalidEntity      = "Invalid entity"
	MsgInternalError      = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking their types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrReferenceNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrFileNotFound):
		return MsgFileNotFound
	case errors.Is(err, store.ErrCourseNotFound):
		return MsgCourseNotFound
	case errors.Is(err, store.ErrExerciseNotFound):
		return MsgExerciseNotFound
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrReferenceNotFound):
		return MsgNotFound

	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidEntity

	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrExpiredToken):
		return MsgTokenExpired
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return MsgInvalidToken

	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the response for err: the field list for
// validation errors, `{"details": message}` for everything else.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		shared.RespondWithValidationError(w, r, ve)
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
