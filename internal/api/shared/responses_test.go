package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/schema"
)

func TestRespondWithValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	rec := httptest.NewRecorder()

	ve := domain.NewValidationError(domain.StringTooShort("", 1, "body", "filename"))
	RespondWithValidationError(rec, req, ve)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body schema.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "string_too_short", body.Details[0].Type)
	assert.Equal(t, "String should have at least 1 character", body.Details[0].Message)
	assert.Equal(t, []string{"body", "filename"}, body.Details[0].Location)
	assert.Equal(t, "", body.Details[0].Input)
	assert.EqualValues(t, 1, body.Details[0].Context["min_length"])
}

func TestRespondWithErrorAndLog(t *testing.T) {
	log, buf := logger.GetTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	rec := httptest.NewRecorder()

	err := errors.New("dial postgres://admin:hunter2@db:5432/app failed")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Internal server error", err)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body schema.InternalErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Details)

	logger.AssertLogContains(t, buf, "API error response")
	logger.AssertLogContains(t, buf, `"level":"ERROR"`)
	logger.AssertLogNotContains(t, buf, "hunter2")
}
