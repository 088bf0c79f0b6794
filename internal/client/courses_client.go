package client

import (
	"context"
	"net/url"

	"github.com/coursekit/course-api/internal/schema"
)

// CoursesClient calls the /courses endpoints.
type CoursesClient struct {
	api *APIClient
}

// NewCoursesClient wraps an authenticated client.
func NewCoursesClient(api *APIClient) *CoursesClient {
	return &CoursesClient{api: api}
}

// GetCoursesAPI sends GET /courses?userId=.
func (c *CoursesClient) GetCoursesAPI(ctx context.Context, query schema.GetCoursesQuery) (*Response, error) {
	ctx = withRoute(ctx, Routes.Courses)
	return c.api.Get(ctx, Routes.Courses, url.Values{"userId": {query.UserID}})
}

// GetCourseAPI sends GET /courses/{course_id}.
func (c *CoursesClient) GetCourseAPI(ctx context.Context, courseID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.CourseByID)
	return c.api.Get(ctx, entityPath(Routes.Courses, courseID), nil)
}

// CreateCourseAPI sends POST /courses.
func (c *CoursesClient) CreateCourseAPI(ctx context.Context, req schema.CreateCourseRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.Courses)
	return c.api.Post(ctx, Routes.Courses, req)
}

// UpdateCourseAPI sends PATCH /courses/{course_id}.
func (c *CoursesClient) UpdateCourseAPI(ctx context.Context, courseID string, req schema.UpdateCourseRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.CourseByID)
	return c.api.Patch(ctx, entityPath(Routes.Courses, courseID), req)
}

// DeleteCourseAPI sends DELETE /courses/{course_id}.
func (c *CoursesClient) DeleteCourseAPI(ctx context.Context, courseID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.CourseByID)
	return c.api.Delete(ctx, entityPath(Routes.Courses, courseID))
}

// GetCourses lists the courses created by query.UserID.
func (c *CoursesClient) GetCourses(ctx context.Context, query schema.GetCoursesQuery) (*schema.GetCoursesResponse, error) {
	return decode[schema.GetCoursesResponse](c.GetCoursesAPI(ctx, query))
}

// GetCourse returns one course.
func (c *CoursesClient) GetCourse(ctx context.Context, courseID string) (*schema.GetCourseResponse, error) {
	return decode[schema.GetCourseResponse](c.GetCourseAPI(ctx, courseID))
}

// CreateCourse creates a course.
func (c *CoursesClient) CreateCourse(ctx context.Context, req schema.CreateCourseRequest) (*schema.CreateCourseResponse, error) {
	return decode[schema.CreateCourseResponse](c.CreateCourseAPI(ctx, req))
}

// UpdateCourse changes the non-nil fields of req.
func (c *CoursesClient) UpdateCourse(ctx context.Context, courseID string, req schema.UpdateCourseRequest) (*schema.UpdateCourseResponse, error) {
	return decode[schema.UpdateCourseResponse](c.UpdateCourseAPI(ctx, courseID, req))
}
