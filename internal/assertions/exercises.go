package assertions

import (
	"testing"

	"github.com/coursekit/course-api/internal/schema"
)

// ExerciseNotFoundMessage is the details of a 404 for a missing exercise.
const ExerciseNotFoundMessage = "Exercise not found"

// CreateExerciseResponse checks that the created exercise echoes the
// request.
func CreateExerciseResponse(t testing.TB, request schema.CreateExerciseRequest, response schema.CreateExerciseResponse) bool {
	t.Helper()
	step("Check create exercise response")
	e := response.Exercise
	ok := Equal(t, e.Title, request.Title, "title")
	ok = Equal(t, e.CourseID, request.CourseID, "course_id") && ok
	ok = Equal(t, e.MaxScore, request.MaxScore, "max_score") && ok
	ok = Equal(t, e.MinScore, request.MinScore, "min_score") && ok
	ok = Equal(t, e.OrderIndex, request.OrderIndex, "order_index") && ok
	ok = Equal(t, e.Description, request.Description, "description") && ok
	ok = Equal(t, e.EstimatedTime, request.EstimatedTime, "estimated_time") && ok
	return ok
}

// UpdateExerciseResponse checks that the non-nil fields of request were
// applied.
func UpdateExerciseResponse(t testing.TB, request schema.UpdateExerciseRequest, response schema.UpdateExerciseResponse) bool {
	t.Helper()
	step("Check update exercise response")
	e := response.Exercise
	ok := true
	if request.Title != nil {
		ok = Equal(t, e.Title, *request.Title, "title") && ok
	}
	if request.MaxScore != nil {
		ok = Equal(t, e.MaxScore, *request.MaxScore, "max_score") && ok
	}
	if request.MinScore != nil {
		ok = Equal(t, e.MinScore, *request.MinScore, "min_score") && ok
	}
	if request.OrderIndex != nil {
		ok = Equal(t, e.OrderIndex, *request.OrderIndex, "order_index") && ok
	}
	if request.Description != nil {
		ok = Equal(t, e.Description, *request.Description, "description") && ok
	}
	if request.EstimatedTime != nil {
		ok = Equal(t, e.EstimatedTime, *request.EstimatedTime, "estimated_time") && ok
	}
	return ok
}

// Exercise compares two exercises field by field.
func Exercise(t testing.TB, actual, expected schema.Exercise) bool {
	t.Helper()
	step("Check single exercise fields")
	ok := Equal(t, actual.ID, expected.ID, "id")
	ok = Equal(t, actual.Title, expected.Title, "title") && ok
	ok = Equal(t, actual.CourseID, expected.CourseID, "course_id") && ok
	ok = Equal(t, actual.MaxScore, expected.MaxScore, "max_score") && ok
	ok = Equal(t, actual.MinScore, expected.MinScore, "min_score") && ok
	ok = Equal(t, actual.OrderIndex, expected.OrderIndex, "order_index") && ok
	ok = Equal(t, actual.Description, expected.Description, "description") && ok
	ok = Equal(t, actual.EstimatedTime, expected.EstimatedTime, "estimated_time") && ok
	return ok
}

// GetExerciseResponse checks a fetched exercise against the created one.
func GetExerciseResponse(t testing.TB, getResponse schema.GetExerciseResponse, createResponse schema.CreateExerciseResponse) bool {
	t.Helper()
	step("Check get exercise response")
	return Exercise(t, getResponse.Exercise, createResponse.Exercise)
}

// GetExercisesResponse checks an exercise list against the created
// exercises, in order.
func GetExercisesResponse(t testing.TB, getResponse schema.GetExercisesResponse, createResponses []schema.CreateExerciseResponse) bool {
	t.Helper()
	step("Check get exercises response")
	if !Length(t, getResponse.Exercises, createResponses, "exercises") {
		return false
	}
	ok := true
	for i, created := range createResponses {
		ok = Exercise(t, getResponse.Exercises[i], created.Exercise) && ok
	}
	return ok
}

// ExerciseNotFoundResponse checks the 404 for a missing exercise.
func ExerciseNotFoundResponse(t testing.TB, actual schema.InternalErrorResponse) bool {
	t.Helper()
	step("Check exercise not found response")
	return InternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: ExerciseNotFoundMessage})
}
