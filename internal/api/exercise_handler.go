package api

import (
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
)

type createExerciseBody struct {
	Title         *string `json:"title"`
	CourseID      *string `json:"courseId"`
	MaxScore      *int    `json:"maxScore"`
	MinScore      *int    `json:"minScore"`
	OrderIndex    *int    `json:"orderIndex"`
	Description   *string `json:"description"`
	EstimatedTime *string `json:"estimatedTime"`
}

// ExerciseHandler serves the /exercises endpoints.
type ExerciseHandler struct {
	exercises service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exercises service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// ListExercises handles GET /exercises?courseId=.
func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	courseID, ok := queryID(w, r, "courseId")
	if !ok {
		return
	}
	list, err := h.exercises.ListExercises(r.Context(), courseID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := schema.GetExercisesResponse{Exercises: make([]schema.Exercise, 0, len(list))}
	for _, e := range list {
		resp.Exercises = append(resp.Exercises, exerciseView(e))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateExercise handles POST /exercises.
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var body createExerciseBody
	if !decodeBody(w, r, &body) {
		return
	}

	ve := &domain.ValidationError{}
	in := service.CreateExerciseInput{
		Title:         shared.RequireString(ve, body.Title, "body", "title"),
		CourseID:      shared.RequireID(ve, body.CourseID, "body", "courseId"),
		MaxScore:      shared.RequireInt(ve, body.MaxScore, "body", "maxScore"),
		MinScore:      shared.RequireInt(ve, body.MinScore, "body", "minScore"),
		OrderIndex:    shared.RequireInt(ve, body.OrderIndex, "body", "orderIndex"),
		Description:   shared.RequireString(ve, body.Description, "body", "description"),
		EstimatedTime: shared.RequireString(ve, body.EstimatedTime, "body", "estimatedTime"),
	}
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	exercise, err := h.exercises.CreateExercise(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.CreateExerciseResponse{Exercise: exerciseView(exercise)})
}

// GetExercise handles GET /exercises/{exercise_id}.
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathID(w, r, "exercise_id")
	if !ok {
		return
	}
	exercise, err := h.exercises.GetExercise(r.Context(), exerciseID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.GetExerciseResponse{Exercise: exerciseView(exercise)})
}

// UpdateExercise handles PATCH /exercises/{exercise_id}.
func (h *ExerciseHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathID(w, r, "exercise_id")
	if !ok {
		return
	}
	var body schema.UpdateExerciseRequest
	if !decodeBody(w, r, &body) {
		return
	}

	exercise, err := h.exercises.UpdateExercise(r.Context(), exerciseID, domain.ExercisePatch{
		Title:         body.Title,
		MaxScore:      body.MaxScore,
		MinScore:      body.MinScore,
		OrderIndex:    body.OrderIndex,
		Description:   body.Description,
		EstimatedTime: body.EstimatedTime,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.UpdateExerciseResponse{Exercise: exerciseView(exercise)})
}

// DeleteExercise handles DELETE /exercises/{exercise_id}.
func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathID(w, r, "exercise_id")
	if !ok {
		return
	}
	if err := h.exercises.DeleteExercise(r.Context(), exerciseID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	respondOK(w)
}
