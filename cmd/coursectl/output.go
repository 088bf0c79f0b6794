package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/coursekit/course-api/internal/client"
)

// printResponse writes "label: body". With a dotted field path such as
// "token.accessToken" only the value at that path is written.
func printResponse(w io.Writer, label string, body []byte, field string) error {
	if field == "" {
		_, err := fmt.Fprintf(w, "%s: %s\n", label, body)
		return err
	}

	value, err := lookup(body, field)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", label, value)
	return err
}

// lookup returns the value at a dotted path. Strings are unquoted, other
// values are returned as raw JSON.
func lookup(body []byte, field string) (string, error) {
	value, dataType, _, err := jsonparser.Get(body, strings.Split(field, ".")...)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return "", fmt.Errorf("field %q not found", field)
		}
		return "", fmt.Errorf("failed to read field %q: %w", field, err)
	}
	if dataType == jsonparser.String {
		return jsonparser.ParseString(value)
	}
	return string(value), nil
}

// stringField reads a string that must be present, like an entity id.
func stringField(body []byte, keys ...string) (string, error) {
	value, err := jsonparser.GetString(body, keys...)
	if err != nil {
		return "", fmt.Errorf("response has no %s: %w", strings.Join(keys, "."), err)
	}
	return value, nil
}

// checkOK turns a non-200 response into an error quoting its body.
func checkOK(action string, resp *client.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d: %s", action, resp.StatusCode, resp.Text())
	}
	return nil
}
