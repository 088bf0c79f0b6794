package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/blob"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/platform/memory"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
	"github.com/coursekit/course-api/internal/service/auth"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

type testAPI struct {
	server *httptest.Server
	jwt    auth.JWTService
	logs   *logger.TestLogBuffer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log, logs := logger.GetTestLogger(t)
	db := memory.New()
	stores := db.Stores()
	blobs := blob.New(afero.NewMemMapFs(), "/files", log)
	hasher := auth.NewBcryptVerifier(bcrypt.MinCost)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        30,
		RefreshTokenLifetimeMinutes: 60,
		BcryptCost:                  bcrypt.MinCost,
	})
	require.NoError(t, err)

	var handler http.Handler
	api := &testAPI{jwt: jwtService, logs: logs}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(api.server.Close)

	handler = NewRouter(RouterConfig{
		Logger:        log,
		JWTService:    jwtService,
		Tokens:        auth.NewAuthenticator(stores.Users, jwtService, hasher, log),
		Users:         service.NewUserService(stores.Users, db, hasher, log),
		Files:         service.NewFileService(stores.Files, blobs, log),
		Courses:       service.NewCourseService(stores, db, log),
		Exercises:     service.NewExerciseService(stores, db, log),
		Static:        blobs.HTTPFileSystem(),
		PublicBaseURL: api.server.URL + "/",
	})
	return api
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (a *testAPI) upload(t *testing.T, token string, fields map[string]string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if content != nil {
		part, err := mw.CreateFormFile(FormUploadFile, "image.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, a.server.URL+BasePath+"/files", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// registerAndLogin creates a user and returns it with an access token.
func (a *testAPI) registerAndLogin(t *testing.T) (schema.User, string) {
	t.Helper()

	req := schema.NewCreateUserRequest()
	resp := a.do(t, http.MethodPost, BasePath+"/users", "", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decode[schema.CreateUserResponse](t, resp).User

	resp = a.do(t, http.MethodPost, BasePath+"/authentication/login", "",
		schema.LoginRequest{Email: req.Email, Password: req.Password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return user, decode[schema.LoginResponse](t, resp).Token.AccessToken
}

func (a *testAPI) createFile(t *testing.T, token string) schema.File {
	t.Helper()
	resp := a.upload(t, token, map[string]string{FormFilename: "preview.png", FormDirectory: "courses"}, []byte("png-bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[schema.CreateFileResponse](t, resp).File
}

func (a *testAPI) createCourse(t *testing.T, token string, fileID, userID string) schema.Course {
	t.Helper()
	req := schema.NewCreateCourseRequest()
	req.PreviewFileID = fileID
	req.CreatedByUserID = userID
	resp := a.do(t, http.MethodPost, BasePath+"/courses", token, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[schema.CreateCourseResponse](t, resp).Course
}
