package client

import (
	"context"
	"net/url"

	"github.com/coursekit/course-api/internal/schema"
)

// ExercisesClient calls the /exercises endpoints.
type ExercisesClient struct {
	api *APIClient
}

// NewExercisesClient wraps an authenticated client.
func NewExercisesClient(api *APIClient) *ExercisesClient {
	return &ExercisesClient{api: api}
}

// GetExercisesAPI sends GET /exercises?courseId=.
func (c *ExercisesClient) GetExercisesAPI(ctx context.Context, query schema.GetExercisesQuery) (*Response, error) {
	ctx = withRoute(ctx, Routes.Exercises)
	return c.api.Get(ctx, Routes.Exercises, url.Values{"courseId": {query.CourseID}})
}

// GetExerciseAPI sends GET /exercises/{exercise_id}.
func (c *ExercisesClient) GetExerciseAPI(ctx context.Context, exerciseID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.ExerciseByID)
	return c.api.Get(ctx, entityPath(Routes.Exercises, exerciseID), nil)
}

// CreateExerciseAPI sends POST /exercises.
func (c *ExercisesClient) CreateExerciseAPI(ctx context.Context, req schema.CreateExerciseRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.Exercises)
	return c.api.Post(ctx, Routes.Exercises, req)
}

// UpdateExerciseAPI sends PATCH /exercises/{exercise_id}.
func (c *ExercisesClient) UpdateExerciseAPI(ctx context.Context, exerciseID string, req schema.UpdateExerciseRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.ExerciseByID)
	return c.api.Patch(ctx, entityPath(Routes.Exercises, exerciseID), req)
}

// DeleteExerciseAPI sends DELETE /exercises/{exercise_id}.
func (c *ExercisesClient) DeleteExerciseAPI(ctx context.Context, exerciseID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.ExerciseByID)
	return c.api.Delete(ctx, entityPath(Routes.Exercises, exerciseID))
}

// GetExercises lists the exercises of query.CourseID.
func (c *ExercisesClient) GetExercises(ctx context.Context, query schema.GetExercisesQuery) (*schema.GetExercisesResponse, error) {
	return decode[schema.GetExercisesResponse](c.GetExercisesAPI(ctx, query))
}

// GetExercise returns one exercise.
func (c *ExercisesClient) GetExercise(ctx context.Context, exerciseID string) (*schema.GetExerciseResponse, error) {
	return decode[schema.GetExerciseResponse](c.GetExerciseAPI(ctx, exerciseID))
}

// CreateExercise creates an exercise.
func (c *ExercisesClient) CreateExercise(ctx context.Context, req schema.CreateExerciseRequest) (*schema.CreateExerciseResponse, error) {
	return decode[schema.CreateExerciseResponse](c.CreateExerciseAPI(ctx, req))
}

// UpdateExercise changes the non-nil fields of req.
func (c *ExercisesClient) UpdateExercise(ctx context.Context, exerciseID string, req schema.UpdateExerciseRequest) (*schema.UpdateExerciseResponse, error) {
	return decode[schema.UpdateExerciseResponse](c.UpdateExerciseAPI(ctx, exerciseID, req))
}
