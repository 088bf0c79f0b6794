package client

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageTrackerReport(t *testing.T) {
	tracker := NewCoverageTracker("api-course")
	assert.Equal(t, "api-course", tracker.Service())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record(http.MethodGet, Routes.CourseByID, http.StatusOK)
		}()
	}
	wg.Wait()
	tracker.Record(http.MethodPost, Routes.Courses, http.StatusOK)
	tracker.Record(http.MethodGet, Routes.Courses, http.StatusUnprocessableEntity)
	tracker.Record(http.MethodGet, Routes.Courses, http.StatusOK)

	assert.Equal(t, []CoverageHit{
		{Method: http.MethodGet, Route: Routes.Courses, StatusCode: http.StatusOK, Count: 1},
		{Method: http.MethodGet, Route: Routes.Courses, StatusCode: http.StatusUnprocessableEntity, Count: 1},
		{Method: http.MethodPost, Route: Routes.Courses, StatusCode: http.StatusOK, Count: 1},
		{Method: http.MethodGet, Route: Routes.CourseByID, StatusCode: http.StatusOK, Count: 10},
	}, tracker.Report())

	tracker.Reset()
	assert.Empty(t, tracker.Report())
}

func TestCoverageMiddlewareUsesRouteTemplate(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK, `{"exercise":{}}`)
	tracker := NewCoverageTracker("api-course")

	api, err := newHTTPClient(HTTPConfig{BaseURL: srv.URL, Coverage: tracker, Transport: srv.Client().Transport})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = NewExercisesClient(api).GetExerciseAPI(ctx, "e1")
	require.NoError(t, err)
	_, err = NewExercisesClient(api).GetExerciseAPI(ctx, "e2")
	require.NoError(t, err)
	_, err = api.Get(ctx, "/health", nil)
	require.NoError(t, err)

	assert.Equal(t, []CoverageHit{
		{Method: http.MethodGet, Route: Routes.ExerciseByID, StatusCode: http.StatusOK, Count: 2},
		{Method: http.MethodGet, Route: "/health", StatusCode: http.StatusOK, Count: 1},
	}, tracker.Report())
}
