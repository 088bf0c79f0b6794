package testutils

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursekit/course-api/internal/api"
	"github.com/coursekit/course-api/internal/client"
	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/blob"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/platform/memory"
	"github.com/coursekit/course-api/internal/service"
	"github.com/coursekit/course-api/internal/service/auth"
	"github.com/coursekit/course-api/internal/store"
)

// TestJWTSecret signs the tokens of test servers. Never use it elsewhere.
const TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

// TestAuthConfig is the auth configuration of test servers.
var TestAuthConfig = config.AuthConfig{
	JWTSecret:                   TestJWTSecret,
	TokenLifetimeMinutes:        15,
	RefreshTokenLifetimeMinutes: 24 * 60,
	BcryptCost:                  bcrypt.MinCost,
}

// CourseAPIServer is a running course API backed by in-memory storage.
type CourseAPIServer struct {
	*httptest.Server

	DB         *memory.DB
	Stores     store.Stores
	Files      afero.Fs
	JWTService auth.JWTService
	Logs       *logger.TestLogBuffer
	Logger     *slog.Logger
}

// NewCourseAPIServer starts a server that is closed when t finishes.
func NewCourseAPIServer(t testing.TB) *CourseAPIServer {
	t.Helper()

	log, logs := logger.GetTestLogger(t)
	jwtService, err := auth.NewJWTService(TestAuthConfig)
	require.NoError(t, err, "failed to create JWT service")

	db := memory.New()
	stores := db.Stores()
	fs := afero.NewMemMapFs()
	blobs := blob.New(fs, "/files", log)
	hasher := auth.NewBcryptVerifier(TestAuthConfig.BcryptCost)

	s := &CourseAPIServer{
		DB:         db,
		Stores:     stores,
		Files:      fs,
		JWTService: jwtService,
		Logs:       logs,
		Logger:     log,
	}

	// File links embed the server URL, so the router is built once the
	// listener exists.
	var handler http.Handler
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)

	handler = api.NewRouter(api.RouterConfig{
		Logger:        log,
		JWTService:    jwtService,
		Tokens:        auth.NewAuthenticator(stores.Users, jwtService, hasher, log),
		Users:         service.NewUserService(stores.Users, db, hasher, log),
		Files:         service.NewFileService(stores.Files, blobs, log),
		Courses:       service.NewCourseService(stores, db, log),
		Exercises:     service.NewExerciseService(stores, db, log),
		Static:        blobs.HTTPFileSystem(),
		PublicBaseURL: s.URL + "/",
	})
	return s
}

// HTTPConfig returns a client configuration pointing at the server.
func (s *CourseAPIServer) HTTPConfig(coverage *client.CoverageTracker) client.HTTPConfig {
	return client.HTTPConfig{
		BaseURL:   s.URL,
		Timeout:   10 * time.Second,
		Logger:    s.Logger,
		Coverage:  coverage,
		Transport: s.Client().Transport,
	}
}

// AccessToken issues an access token for userID without logging in.
func (s *CourseAPIServer) AccessToken(t testing.TB, userID uuid.UUID) string {
	t.Helper()
	token, err := s.JWTService.GenerateToken(context.Background(), userID)
	require.NoError(t, err, "failed to generate access token")
	return token
}
