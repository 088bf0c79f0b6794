package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/logger"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: 8000, LogLevel: "debug", PublicBaseURL: "http://localhost:8000/"},
		Store:  config.StoreConfig{Driver: "memory"},
		Auth: config.AuthConfig{
			JWTSecret:                   "server-test-secret-that-is-32-chars",
			TokenLifetimeMinutes:        15,
			RefreshTokenLifetimeMinutes: 60,
			BcryptCost:                  bcrypt.MinCost,
		},
		Files: config.FilesConfig{Root: "/files", FS: "memory"},
	}
}

func TestApplicationServesUntilCancelled(t *testing.T) {
	log, logs := logger.GetTestLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(ctx, memoryConfig(t), log)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Post(base+"/api/v1/users", "application/json", strings.NewReader(
		`{"email":"a@example.com","password":"secret","lastName":"L","firstName":"F","middleName":"M"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, logs, "server shutdown completed")
}

func TestNewApplicationRejectsUnknownDriver(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := memoryConfig(t)
	cfg.Store.Driver = "sqlite"

	_, err := newApplication(context.Background(), cfg, log)
	assert.ErrorContains(t, err, `unknown store driver "sqlite"`)
}

func TestNewApplicationRejectsUnknownFilesystem(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := memoryConfig(t)
	cfg.Files.FS = "s3"

	_, err := newApplication(context.Background(), cfg, log)
	assert.ErrorContains(t, err, "failed to initialize file storage")
}

func TestRunMigrationsRequiresPostgres(t *testing.T) {
	t.Setenv("COURSE_AUTH_JWT_SECRET", "server-test-secret-that-is-32-chars")
	t.Setenv("COURSE_STORE_DRIVER", "memory")

	err := run([]string{"-migrate", "up", "-env-file", ""})
	assert.ErrorContains(t, err, "migrations require the postgres store")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("COURSE_AUTH_JWT_SECRET", "short")
	t.Setenv("COURSE_STORE_DRIVER", "memory")

	err := run([]string{"-env-file", ""})
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	assert.Error(t, run([]string{"-nope"}))
}
