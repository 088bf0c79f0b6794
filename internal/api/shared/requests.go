package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
)

// DecodeJSON decodes the request body into v. Malformed JSON is reported
// as a *domain.ValidationError of type json_invalid.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError(domain.MissingField(nil, "body"))
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		fe := domain.FieldError{Location: loc, Type: "string_type", Message: "Input should be a valid string"}
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			fe.Type = domain.ErrTypeIntParsing
			fe.Message = "Input should be a valid integer"
		case reflect.Struct, reflect.Map:
			fe.Type = "model_type"
			fe.Message = "Input should be a valid dictionary or object"
		}
		return domain.NewValidationError(fe)
	case errors.As(err, &syntaxErr):
		return domain.NewValidationError(domain.FieldError{
			Location: []string{"body"},
			Type:     domain.ErrTypeJSONInvalid,
			Message:  "JSON decode error",
			Context:  map[string]any{"error": syntaxErr.Error()},
		})
	default:
		return domain.NewValidationError(domain.FieldError{
			Location: []string{"body"},
			Type:     domain.ErrTypeJSONInvalid,
			Message:  "JSON decode error",
			Context:  map[string]any{"error": err.Error()},
		})
	}
}

// RequireString records a missing-field error in ve when value is nil.
func RequireString(ve *domain.ValidationError, value *string, location ...string) string {
	if value == nil {
		ve.Add(domain.MissingField(nil, location...))
		return ""
	}
	return *value
}

// RequireInt records a missing-field error in ve when value is nil.
func RequireInt(ve *domain.ValidationError, value *int, location ...string) int {
	if value == nil {
		ve.Add(domain.MissingField(nil, location...))
		return 0
	}
	return *value
}

// RequireID parses a required UUID, recording a missing or uuid_parsing
// error in ve.
func RequireID(ve *domain.ValidationError, value *string, location ...string) uuid.UUID {
	if value == nil {
		ve.Add(domain.MissingField(nil, location...))
		return uuid.Nil
	}
	id, err := domain.ParseID(*value, location...)
	if err != nil {
		if fe, ok := domain.AsValidationError(err); ok {
			ve.Merge(fe)
		}
		return uuid.Nil
	}
	return id
}
