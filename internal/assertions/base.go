package assertions

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// step logs the name of a composite check at debug level.
func step(name string) {
	slog.Debug(name, slog.String("component", "assertions"))
}

// StatusCode checks the HTTP status code of a response.
func StatusCode(t testing.TB, actual, expected int) bool {
	t.Helper()
	return assert.Equalf(t, expected, actual,
		"Incorrect response status code. Expected status code: %d. Actual status code: %d",
		expected, actual)
}

// Equal checks that the named value equals expected.
func Equal(t testing.TB, actual, expected any, name string) bool {
	t.Helper()
	return assert.Equalf(t, expected, actual,
		`Incorrect value: "%s". Expected value: %v. Actual value: %v`,
		name, expected, actual)
}

// IsTrue checks that the named value is true.
func IsTrue(t testing.TB, actual bool, name string) bool {
	t.Helper()
	return assert.Truef(t, actual,
		`Incorrect value: "%s". Expected true value but got: %v`,
		name, actual)
}

// Length checks that actual has as many elements as expected. Both must be
// arrays, slices, maps, strings or channels; anything else, untyped nil
// included, fails the check.
func Length(t testing.TB, actual, expected any, name string) bool {
	t.Helper()
	want, ok := length(expected)
	if !ok {
		return assert.Failf(t, "Object has no length",
			`Expected value of "%s" has no length: %#v`, name, expected)
	}
	got, ok := length(actual)
	if !ok {
		return assert.Failf(t, "Object has no length",
			`Actual value of "%s" has no length: %#v`, name, actual)
	}
	return assert.Equalf(t, want, got,
		`Incorrect object length: "%s". Expected length: %d. Actual length: %d`,
		name, want, got)
}

func length(x any) (int, bool) {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len(), true
	default:
		return 0, false
	}
}
