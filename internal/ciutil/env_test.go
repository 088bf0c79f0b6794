package ciutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursekit/course-api/internal/platform/logger"
)

func clearEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
	}
}

func TestIsCI(t *testing.T) {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t, EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI)
			assert.False(t, IsCI())
			t.Setenv(name, "true")
			assert.True(t, IsCI())
		})
	}
}

func TestGetEnvWithFallbacks(t *testing.T) {
	log, logs := logger.GetTestLogger(t)
	clearEnv(t, "CIUTIL_A", "CIUTIL_B")

	assert.Equal(t, "default", GetEnvWithFallbacks([]string{"CIUTIL_A", "CIUTIL_B"}, "default", log))

	t.Setenv("CIUTIL_B", "postgres://user:hunter2@db:5432/course")
	assert.Equal(t, "postgres://user:hunter2@db:5432/course",
		GetEnvWithFallbacks([]string{"CIUTIL_A", "CIUTIL_B"}, "default", log))
	logger.AssertLogContains(t, logs, "using fallback environment variable")
	logger.AssertLogNotContains(t, logs, "hunter2")

	logs.Reset()
	t.Setenv("CIUTIL_A", "primary")
	assert.Equal(t, "primary", GetEnvWithFallbacks([]string{"CIUTIL_A", "CIUTIL_B"}, "default", log))
	assert.Empty(t, logs.String())
}

func TestTestDatabaseURL(t *testing.T) {
	clearEnv(t, EnvTestDatabaseURL, EnvCourseDatabaseURL, EnvDatabaseURL)
	assert.Empty(t, TestDatabaseURL(nil))

	t.Setenv(EnvDatabaseURL, "postgres://generic")
	assert.Equal(t, "postgres://generic", TestDatabaseURL(nil))

	t.Setenv(EnvTestDatabaseURL, "postgres://test")
	assert.Equal(t, "postgres://test", TestDatabaseURL(nil))
}
