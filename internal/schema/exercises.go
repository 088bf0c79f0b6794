package schema

import "github.com/coursekit/course-api/internal/fakers"

// Exercise is a graded task of a course.
type Exercise struct {
	ID            string `json:"id"            validate:"required,uuid"`
	Title         string `json:"title"         validate:"required"`
	CourseID      string `json:"courseId"      validate:"required,uuid"`
	MaxScore      int    `json:"maxScore"      validate:"gte=0"`
	MinScore      int    `json:"minScore"      validate:"gte=0"`
	OrderIndex    int    `json:"orderIndex"    validate:"gte=0"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime" validate:"required"`
}

// GetExercisesQuery is the query of GET /exercises.
type GetExercisesQuery struct {
	CourseID string `json:"courseId"`
}

// CreateExerciseRequest is the body of POST /exercises.
type CreateExerciseRequest struct {
	Title         string `json:"title"`
	CourseID      string `json:"courseId"`
	MaxScore      int    `json:"maxScore"`
	MinScore      int    `json:"minScore"`
	OrderIndex    int    `json:"orderIndex"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
}

// NewCreateExerciseRequest returns a randomized request. The caller sets
// CourseID when it must reference a real course.
func NewCreateExerciseRequest() CreateExerciseRequest {
	f := fakers.Default
	return CreateExerciseRequest{
		Title:         f.Sentence(),
		CourseID:      f.UUID(),
		MaxScore:      f.MaxScore(),
		MinScore:      f.MinScore(),
		OrderIndex:    f.Integer(),
		Description:   f.Text(),
		EstimatedTime: f.EstimatedTime(),
	}
}

// UpdateExerciseRequest is the body of PATCH /exercises/{exercise_id}.
type UpdateExerciseRequest struct {
	Title         *string `json:"title,omitempty"`
	MaxScore      *int    `json:"maxScore,omitempty"`
	MinScore      *int    `json:"minScore,omitempty"`
	OrderIndex    *int    `json:"orderIndex,omitempty"`
	Description   *string `json:"description,omitempty"`
	EstimatedTime *string `json:"estimatedTime,omitempty"`
}

// NewUpdateExerciseRequest returns a request changing every field.
func NewUpdateExerciseRequest() UpdateExerciseRequest {
	f := fakers.Default
	return UpdateExerciseRequest{
		Title:         ptr(f.Sentence()),
		MaxScore:      ptr(f.MaxScore()),
		MinScore:      ptr(f.MinScore()),
		OrderIndex:    ptr(f.Integer()),
		Description:   ptr(f.Text()),
		EstimatedTime: ptr(f.EstimatedTime()),
	}
}

// ExerciseResponse wraps a single exercise.
type ExerciseResponse struct {
	Exercise Exercise `json:"exercise" validate:"required"`
}

// Response bodies of the exercise endpoints.
type (
	CreateExerciseResponse = ExerciseResponse
	GetExerciseResponse    = ExerciseResponse
	UpdateExerciseResponse = ExerciseResponse
)

// GetExercisesResponse is the body of GET /exercises.
type GetExercisesResponse struct {
	Exercises []Exercise `json:"exercises" validate:"dive"`
}
