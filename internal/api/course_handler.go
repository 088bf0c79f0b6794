package api

import (
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
)

type createCourseBody struct {
	Title           *string `json:"title"`
	MaxScore        *int    `json:"maxScore"`
	MinScore        *int    `json:"minScore"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	PreviewFileID   *string `json:"previewFileId"`
	CreatedByUserID *string `json:"createdByUserId"`
}

// CourseHandler serves the /courses endpoints.
type CourseHandler struct {
	courses       service.CourseService
	publicBaseURL string
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses service.CourseService, publicBaseURL string) *CourseHandler {
	return &CourseHandler{courses: courses, publicBaseURL: publicBaseURL}
}

// ListCourses handles GET /courses?userId=.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId")
	if !ok {
		return
	}
	list, err := h.courses.ListCourses(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := schema.GetCoursesResponse{Courses: make([]schema.Course, 0, len(list))}
	for _, d := range list {
		resp.Courses = append(resp.Courses, courseView(h.publicBaseURL, d))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateCourse handles POST /courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var body createCourseBody
	if !decodeBody(w, r, &body) {
		return
	}

	ve := &domain.ValidationError{}
	in := service.CreateCourseInput{
		Title:           shared.RequireString(ve, body.Title, "body", "title"),
		MaxScore:        shared.RequireInt(ve, body.MaxScore, "body", "maxScore"),
		MinScore:        shared.RequireInt(ve, body.MinScore, "body", "minScore"),
		Description:     shared.RequireString(ve, body.Description, "body", "description"),
		EstimatedTime:   shared.RequireString(ve, body.EstimatedTime, "body", "estimatedTime"),
		PreviewFileID:   shared.RequireID(ve, body.PreviewFileID, "body", "previewFileId"),
		CreatedByUserID: shared.RequireID(ve, body.CreatedByUserID, "body", "createdByUserId"),
	}
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	details, err := h.courses.CreateCourse(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.CreateCourseResponse{Course: courseView(h.publicBaseURL, details)})
}

// GetCourse handles GET /courses/{course_id}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "course_id")
	if !ok {
		return
	}
	details, err := h.courses.GetCourse(r.Context(), courseID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.GetCourseResponse{Course: courseView(h.publicBaseURL, details)})
}

// UpdateCourse handles PATCH /courses/{course_id}.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "course_id")
	if !ok {
		return
	}
	var body schema.UpdateCourseRequest
	if !decodeBody(w, r, &body) {
		return
	}

	details, err := h.courses.UpdateCourse(r.Context(), courseID, domain.CoursePatch{
		Title:         body.Title,
		MaxScore:      body.MaxScore,
		MinScore:      body.MinScore,
		Description:   body.Description,
		EstimatedTime: body.EstimatedTime,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.UpdateCourseResponse{Course: courseView(h.publicBaseURL, details)})
}

// DeleteCourse handles DELETE /courses/{course_id}.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "course_id")
	if !ok {
		return
	}
	if err := h.courses.DeleteCourse(r.Context(), courseID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	respondOK(w)
}
