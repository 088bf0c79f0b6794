package client

import (
	"fmt"
	"net/http"
	"slices"
)

// maxErrorBody bounds the response body quoted in StatusError messages.
const maxErrorBody = 512

// StatusError is returned by the decoding client methods when the server
// answers with an unexpected status code.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("%s %s: unexpected status %d %s: %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), body)
}

// expectStatus returns a *StatusError unless resp has one of the wanted
// codes. No codes means 200.
func expectStatus(resp *Response, want ...int) error {
	if len(want) == 0 {
		want = []int{http.StatusOK}
	}
	if slices.Contains(want, resp.StatusCode) {
		return nil
	}
	return &StatusError{
		Method:     resp.Request.Method,
		Path:       resp.Request.URL.Path,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// decode checks that resp is a 200 and decodes its body into a new T.
func decode[T any](resp *Response, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if err := expectStatus(resp); err != nil {
		return nil, err
	}
	var v T
	if err := resp.JSON(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
