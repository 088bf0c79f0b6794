package assertions

import (
	"testing"

	"github.com/coursekit/course-api/internal/schema"
)

// CourseNotFoundMessage is the details of a 404 for a missing course.
const CourseNotFoundMessage = "Course not found"

// CreateCourseResponse checks that the created course echoes the request.
func CreateCourseResponse(t testing.TB, request schema.CreateCourseRequest, response schema.CreateCourseResponse) bool {
	t.Helper()
	step("Check create course response")
	c := response.Course
	ok := Equal(t, c.Title, request.Title, "title")
	ok = Equal(t, c.MaxScore, request.MaxScore, "max_score") && ok
	ok = Equal(t, c.MinScore, request.MinScore, "min_score") && ok
	ok = Equal(t, c.Description, request.Description, "description") && ok
	ok = Equal(t, c.EstimatedTime, request.EstimatedTime, "estimated_time") && ok
	ok = Equal(t, c.PreviewFile.ID, request.PreviewFileID, "preview_file_id") && ok
	ok = Equal(t, c.CreatedByUser.ID, request.CreatedByUserID, "created_by_user_id") && ok
	return ok
}

// UpdateCourseResponse checks that the non-nil fields of request were
// applied.
func UpdateCourseResponse(t testing.TB, request schema.UpdateCourseRequest, response schema.UpdateCourseResponse) bool {
	t.Helper()
	step("Check update course response")
	c := response.Course
	ok := true
	if request.Title != nil {
		ok = Equal(t, c.Title, *request.Title, "title") && ok
	}
	if request.MaxScore != nil {
		ok = Equal(t, c.MaxScore, *request.MaxScore, "max_score") && ok
	}
	if request.MinScore != nil {
		ok = Equal(t, c.MinScore, *request.MinScore, "min_score") && ok
	}
	if request.Description != nil {
		ok = Equal(t, c.Description, *request.Description, "description") && ok
	}
	if request.EstimatedTime != nil {
		ok = Equal(t, c.EstimatedTime, *request.EstimatedTime, "estimated_time") && ok
	}
	return ok
}

// Course compares two courses, including their file and author.
func Course(t testing.TB, actual, expected schema.Course) bool {
	t.Helper()
	step("Check course")
	ok := Equal(t, actual.ID, expected.ID, "id")
	ok = Equal(t, actual.Title, expected.Title, "title") && ok
	ok = Equal(t, actual.MaxScore, expected.MaxScore, "max_score") && ok
	ok = Equal(t, actual.MinScore, expected.MinScore, "min_score") && ok
	ok = Equal(t, actual.Description, expected.Description, "description") && ok
	ok = Equal(t, actual.EstimatedTime, expected.EstimatedTime, "estimated_time") && ok
	ok = File(t, actual.PreviewFile, expected.PreviewFile) && ok
	ok = User(t, actual.CreatedByUser, expected.CreatedByUser) && ok
	return ok
}

// GetCourseResponse checks a fetched course against the created one.
func GetCourseResponse(t testing.TB, getResponse schema.GetCourseResponse, createResponse schema.CreateCourseResponse) bool {
	t.Helper()
	step("Check get course response")
	return Course(t, getResponse.Course, createResponse.Course)
}

// GetCoursesResponse checks a course list against the created courses, in
// order.
func GetCoursesResponse(t testing.TB, getResponse schema.GetCoursesResponse, createResponses []schema.CreateCourseResponse) bool {
	t.Helper()
	step("Check get courses response")
	if !Length(t, getResponse.Courses, createResponses, "courses") {
		return false
	}
	ok := true
	for i, created := range createResponses {
		ok = Course(t, getResponse.Courses[i], created.Course) && ok
	}
	return ok
}

// CourseNotFoundResponse checks the 404 for a missing course.
func CourseNotFoundResponse(t testing.TB, actual schema.InternalErrorResponse) bool {
	t.Helper()
	step("Check course not found response")
	return InternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: CourseNotFoundMessage})
}
