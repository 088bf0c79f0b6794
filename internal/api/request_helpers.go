package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
)

// pathID parses the UUID path parameter name. On failure it writes the 422
// response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := domain.ParseID(chi.URLParam(r, name), "path", name)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("invalid path parameter",
			slog.String("param_name", name),
			slog.String("value", chi.URLParam(r, name)))
		HandleAPIError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses the required UUID query parameter name.
func queryID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	values, present := r.URL.Query()[name]
	if !present || len(values) == 0 {
		HandleAPIError(w, r, domain.NewValidationError(domain.MissingField(nil, "query", name)))
		return uuid.Nil, false
	}
	id, err := domain.ParseID(values[0], "query", name)
	if err != nil {
		HandleAPIError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated user's ID set by the auth
// middleware. It writes a 401 when the route was not protected.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeBody decodes the JSON body into v, writing the 422 response on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

// respondOK writes an empty 200 response.
func respondOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
