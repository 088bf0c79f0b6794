package schema

import "github.com/coursekit/course-api/internal/fakers"

// Course is a course with its preview file and author expanded.
type Course struct {
	ID            string `json:"id"            validate:"required,uuid"`
	Title         string `json:"title"         validate:"required"`
	MaxScore      int    `json:"maxScore"      validate:"gte=0"`
	MinScore      int    `json:"minScore"      validate:"gte=0"`
	Description   string `json:"description"`
	PreviewFile   File   `json:"previewFile"   validate:"required"`
	EstimatedTime string `json:"estimatedTime" validate:"required"`
	CreatedByUser User   `json:"createdByUser" validate:"required"`
}

// GetCoursesQuery is the query of GET /courses.
type GetCoursesQuery struct {
	UserID string `json:"userId"`
}

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title           string `json:"title"`
	MaxScore        int    `json:"maxScore"`
	MinScore        int    `json:"minScore"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	PreviewFileID   string `json:"previewFileId"`
	CreatedByUserID string `json:"createdByUserId"`
}

// NewCreateCourseRequest returns a randomized request. The caller sets the
// preview file and author IDs when they must reference real entities.
func NewCreateCourseRequest() CreateCourseRequest {
	f := fakers.Default
	return CreateCourseRequest{
		Title:           f.Sentence(),
		MaxScore:        f.MaxScore(),
		MinScore:        f.MinScore(),
		Description:     f.Text(),
		EstimatedTime:   f.EstimatedTime(),
		PreviewFileID:   f.UUID(),
		CreatedByUserID: f.UUID(),
	}
}

// UpdateCourseRequest is the body of PATCH /courses/{course_id}.
type UpdateCourseRequest struct {
	Title         *string `json:"title,omitempty"`
	MaxScore      *int    `json:"maxScore,omitempty"`
	MinScore      *int    `json:"minScore,omitempty"`
	Description   *string `json:"description,omitempty"`
	EstimatedTime *string `json:"estimatedTime,omitempty"`
}

// NewUpdateCourseRequest returns a request changing every field.
func NewUpdateCourseRequest() UpdateCourseRequest {
	f := fakers.Default
	return UpdateCourseRequest{
		Title:         ptr(f.Sentence()),
		MaxScore:      ptr(f.MaxScore()),
		MinScore:      ptr(f.MinScore()),
		Description:   ptr(f.Text()),
		EstimatedTime: ptr(f.EstimatedTime()),
	}
}

// CourseResponse wraps a single course.
type CourseResponse struct {
	Course Course `json:"course" validate:"required"`
}

// Response bodies of the course endpoints.
type (
	CreateCourseResponse = CourseResponse
	GetCourseResponse    = CourseResponse
	UpdateCourseResponse = CourseResponse
)

// GetCoursesResponse is the body of GET /courses.
type GetCoursesResponse struct {
	Courses []Course `json:"courses" validate:"dive"`
}
