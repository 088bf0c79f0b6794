package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxIntValue bounds integer fields; they are stored as 32-bit integers.
const MaxIntValue = math.MaxInt32

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Concrete failures are reported through *ValidationError, which wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// Validation error types reported to API clients.
const (
	ErrTypeMissing          = "missing"
	ErrTypeStringTooShort   = "string_too_short"
	ErrTypeStringTooLong    = "string_too_long"
	ErrTypeUUIDParsing      = "uuid_parsing"
	ErrTypeIntParsing       = "int_parsing"
	ErrTypeGreaterThanEqual = "greater_than_equal"
	ErrTypeLessThanEqual    = "less_than_equal"
	ErrTypeValueError       = "value_error"
	ErrTypeJSONInvalid      = "json_invalid"
)

// FieldError describes a single invalid input value.
type FieldError struct {
	// Location is the path to the offending value, e.g. ["body", "filename"].
	Location []string
	Type     string
	Message  string
	Input    any
	Context  map[string]any
}

// Field returns the last element of the location path.
func (f FieldError) Field() string {
	if len(f.Location) == 0 {
		return ""
	}
	return f.Location[len(f.Location)-1]
}

// ValidationError collects field errors for one request or entity.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Location, "."), fe.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Add appends a field error.
func (e *ValidationError) Add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

// Merge appends all field errors of other, if any.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	e.Errors = append(e.Errors, other.Errors...)
}

// OrNil returns nil when no field errors were collected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a ValidationError holding a single field error.
func NewValidationError(fe FieldError) *ValidationError {
	return &ValidationError{Errors: []FieldError{fe}}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// MissingField reports a required value that was not supplied.
func MissingField(input any, location ...string) FieldError {
	return FieldError{
		Location: location,
		Type:     ErrTypeMissing,
		Message:  "Field required",
		Input:    input,
	}
}

// StringTooShort reports a string shorter than minLength characters.
func StringTooShort(input string, minLength int, location ...string) FieldError {
	unit := "characters"
	if minLength == 1 {
		unit = "character"
	}
	return FieldError{
		Location: location,
		Type:     ErrTypeStringTooShort,
		Message:  fmt.Sprintf("String should have at least %d %s", minLength, unit),
		Input:    input,
		Context:  map[string]any{"min_length": minLength},
	}
}

// StringTooLong reports a string longer than maxLength characters.
func StringTooLong(input string, maxLength int, location ...string) FieldError {
	return FieldError{
		Location: location,
		Type:     ErrTypeStringTooLong,
		Message:  fmt.Sprintf("String should have at most %d characters", maxLength),
		Input:    input,
		Context:  map[string]any{"max_length": maxLength},
	}
}

// GreaterThanEqual reports a number below the allowed minimum.
func GreaterThanEqual(input int, bound int, location ...string) FieldError {
	return FieldError{
		Location: location,
		Type:     ErrTypeGreaterThanEqual,
		Message:  fmt.Sprintf("Input should be greater than or equal to %d", bound),
		Input:    input,
		Context:  map[string]any{"ge": bound},
	}
}

// LessThanEqual reports a number above the allowed maximum.
func LessThanEqual(input int, bound int, location ...string) FieldError {
	return FieldError{
		Location: location,
		Type:     ErrTypeLessThanEqual,
		Message:  fmt.Sprintf("Input should be less than or equal to %d", bound),
		Input:    input,
		Context:  map[string]any{"le": bound},
	}
}

// CheckInt validates that value lies in [0, MaxIntValue].
func CheckInt(ve *ValidationError, value int, location ...string) {
	switch {
	case value < 0:
		ve.Add(GreaterThanEqual(value, 0, location...))
	case value > MaxIntValue:
		ve.Add(LessThanEqual(value, MaxIntValue, location...))
	}
}

// ValueError reports a value that is well-formed but semantically wrong.
func ValueError(input any, reason string, location ...string) FieldError {
	return FieldError{
		Location: location,
		Type:     ErrTypeValueError,
		Message:  "Value error, " + reason,
		Input:    input,
		Context:  map[string]any{"error": reason},
	}
}

// CheckString validates the length of a required string field and appends
// any failure to ve.
func CheckString(ve *ValidationError, value string, minLength, maxLength int, location ...string) {
	n := len([]rune(value))
	switch {
	case n < minLength:
		ve.Add(StringTooShort(value, minLength, location...))
	case maxLength > 0 && n > maxLength:
		ve.Add(StringTooLong(value, maxLength, location...))
	}
}
