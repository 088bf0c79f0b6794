package assertions

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var schemaValidator = validator.New(validator.WithRequiredStructEnabled())

// CheckJSONSchema decodes body into target, a pointer to a schema struct,
// rejecting unknown fields and trailing data, then applies the validate
// tags of the struct.
func CheckJSONSchema(body []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON document")
	}
	return schemaValidator.Struct(target)
}

// ValidateJSONSchema reports a failure unless body matches the schema of
// target. On success target holds the decoded document.
func ValidateJSONSchema(t testing.TB, body []byte, target any) bool {
	t.Helper()
	step("Validate JSON schema")
	return assert.NoErrorf(t, CheckJSONSchema(body, target), "JSON schema mismatch for %T: %s", target, body)
}
