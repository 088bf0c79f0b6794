package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/testutils"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).RunContext(context.Background(), append([]string{"coursectl"}, args...))
	return out.String(), err
}

func registerUser(t *testing.T, server *testutils.CourseAPIServer) schema.CreateUserRequest {
	t.Helper()
	req := schema.NewCreateUserRequest()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := server.Client().Post(server.URL+"/api/v1/users", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return req
}

func TestCreateExercise(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	upload := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(upload, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	out, err := runApp(t, "--base-url", server.URL, "--coverage", "create-exercise", "--upload-file", upload)
	require.NoError(t, err)

	for _, label := range []string{"Create user data:", "Create file data:", "Create course data:", "Create exercise data:"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Coverage:")
	assert.Contains(t, out, "POST /api/v1/exercises 200 x1")
	assert.Contains(t, out, "POST /api/v1/authentication/login 200 x1")
}

func TestCreateExerciseMissingUpload(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)

	_, err := runApp(t, "--base-url", server.URL, "create-exercise", "--upload-file", filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "create file")
}

func TestLoginField(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	user := registerUser(t, server)

	_, err := runApp(t, "--base-url", server.URL, "login", "--email", user.Email, "--password", "wrong")
	assert.ErrorContains(t, err, "unexpected status 401")

	out, err := runApp(t, "--base-url", server.URL, "login",
		"--email", user.Email, "--password", user.Password, "--field", "token.tokenType")
	require.NoError(t, err)
	assert.Equal(t, "Login data: bearer\n", out)

	_, err = runApp(t, "--base-url", server.URL, "login",
		"--email", user.Email, "--password", user.Password, "--field", "token.nope")
	assert.ErrorContains(t, err, `field "token.nope" not found`)
}

func TestMe(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	user := registerUser(t, server)

	out, err := runApp(t, "--base-url", server.URL, "me",
		"--email", user.Email, "--password", user.Password, "--field", "user.email")
	require.NoError(t, err)
	assert.Equal(t, "User data: "+user.Email+"\n", out)
}

func TestLookup(t *testing.T) {
	body := []byte(`{"user":{"id":"1","age":3,"tags":["a"]}}`)

	tests := []struct {
		field   string
		want    string
		wantErr bool
	}{
		{field: "user.id", want: "1"},
		{field: "user.age", want: "3"},
		{field: "user.tags", want: `["a"]`},
		{field: "user.missing", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			got, err := lookup(body, tc.field)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
