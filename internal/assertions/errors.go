package assertions

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursekit/course-api/internal/schema"
)

// ValidationError checks one entry of a 422 response.
func ValidationError(t testing.TB, actual, expected schema.ValidationError) bool {
	t.Helper()
	ok := Equal(t, actual.Type, expected.Type, "type")
	ok = jsonEqual(t, actual.Input, expected.Input, "input") && ok
	ok = jsonEqual(t, actual.Context, expected.Context, "context") && ok
	ok = Equal(t, actual.Message, expected.Message, "message") && ok
	ok = Equal(t, actual.Location, expected.Location, "location") && ok
	return ok
}

// ValidationErrorResponse checks a 422 response entry by entry.
func ValidationErrorResponse(t testing.TB, actual, expected schema.ValidationErrorResponse) bool {
	t.Helper()
	step("Check validation error response")
	if !Length(t, actual.Details, expected.Details, "details") {
		return false
	}
	ok := true
	for i := range expected.Details {
		ok = ValidationError(t, actual.Details[i], expected.Details[i]) && ok
	}
	return ok
}

// InternalErrorResponse checks a `{"details": "..."}` response.
func InternalErrorResponse(t testing.TB, actual, expected schema.InternalErrorResponse) bool {
	t.Helper()
	step("Check internal error response")
	return Equal(t, actual.Details, expected.Details, "details")
}

// jsonEqual compares values by their JSON encoding, so numbers decoded from
// a response compare equal to the ints of an expectation.
func jsonEqual(t testing.TB, actual, expected any, name string) bool {
	t.Helper()
	a, errA := json.Marshal(actual)
	e, errE := json.Marshal(expected)
	if errA != nil || errE != nil {
		return assert.Fail(t, fmt.Sprintf(`Cannot compare "%s": %v %v`, name, errA, errE))
	}
	return assert.JSONEqf(t, string(e), string(a),
		`Incorrect value: "%s". Expected value: %s. Actual value: %s`, name, e, a)
}
