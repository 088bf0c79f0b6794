package assertions_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/assertions"
	"github.com/coursekit/course-api/internal/client"
	"github.com/coursekit/course-api/internal/fixtures"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/testutils"
)

func TestFileAssertionsAgainstServer(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	fx := fixtures.New(server.HTTPConfig(nil))
	ctx := context.Background()

	user := fx.FunctionUser(t)
	assertions.CreateUserResponse(t, user.Request, user.Response)

	files := fx.FilesClient(t, user)

	t.Run("create and get", func(t *testing.T) {
		file := fx.FunctionFile(t, user)
		assertions.CreateFileResponse(t, file.Request, file.Response, server.URL)
		assertions.FileIsAccessible(t, server.Client(), file.Response.File.URL)

		resp, err := files.GetFileAPI(ctx, file.Response.File.ID)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusOK)

		var got schema.GetFileResponse
		assertions.ValidateJSONSchema(t, resp.Body, &got)
		assertions.GetFileResponse(t, got, file.Response)
	})

	t.Run("empty filename", func(t *testing.T) {
		req := schema.NewCreateFileRequest(fx.SampleImage(t))
		req.Filename = ""
		resp, err := files.CreateFileAPI(ctx, req)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusUnprocessableEntity)
		assertions.CreateFileWithEmptyFilenameResponse(t, decode[schema.ValidationErrorResponse](t, resp))
	})

	t.Run("empty directory", func(t *testing.T) {
		req := schema.NewCreateFileRequest(fx.SampleImage(t))
		req.Directory = ""
		resp, err := files.CreateFileAPI(ctx, req)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusUnprocessableEntity)
		assertions.CreateFileWithEmptyDirectoryResponse(t, decode[schema.ValidationErrorResponse](t, resp))
	})

	t.Run("incorrect file id", func(t *testing.T) {
		resp, err := files.GetFileAPI(ctx, assertions.IncorrectFileID)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusUnprocessableEntity)
		assertions.GetFileWithIncorrectFileIDResponse(t, decode[schema.ValidationErrorResponse](t, resp))
	})

	t.Run("deleted file", func(t *testing.T) {
		file := fx.FunctionFile(t, user)
		resp, err := files.DeleteFileAPI(ctx, file.Response.File.ID)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusOK)

		resp, err = files.GetFileAPI(ctx, file.Response.File.ID)
		require.NoError(t, err)
		assertions.StatusCode(t, resp.StatusCode, http.StatusNotFound)
		assertions.FileNotFoundResponse(t, decode[schema.InternalErrorResponse](t, resp))
	})
}

func TestCourseAndExerciseAssertionsAgainstServer(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	fx := fixtures.New(server.HTTPConfig(nil))
	ctx := context.Background()

	user := fx.FunctionUser(t)
	file := fx.FunctionFile(t, user)
	course := fx.FunctionCourse(t, user, file)
	assertions.CreateCourseResponse(t, course.Request, course.Response)

	courses := fx.CoursesClient(t, user)
	list, err := courses.GetCourses(ctx, schema.GetCoursesQuery{UserID: user.Response.User.ID})
	require.NoError(t, err)
	assertions.GetCoursesResponse(t, *list, []schema.CreateCourseResponse{course.Response})

	exercise := fx.FunctionExercise(t, user, course)
	assertions.CreateExerciseResponse(t, exercise.Request, exercise.Response)

	update := schema.NewUpdateExerciseRequest()
	updated, err := fx.ExercisesClient(t, user).UpdateExercise(ctx, exercise.Response.Exercise.ID, update)
	require.NoError(t, err)
	assertions.UpdateExerciseResponse(t, update, *updated)

	resp, err := courses.DeleteCourseAPI(ctx, course.Response.Course.ID)
	require.NoError(t, err)
	assertions.StatusCode(t, resp.StatusCode, http.StatusOK)

	resp, err = courses.GetCourseAPI(ctx, course.Response.Course.ID)
	require.NoError(t, err)
	assertions.CourseNotFoundResponse(t, decode[schema.InternalErrorResponse](t, resp))

	resp, err = fx.ExercisesClient(t, user).GetExerciseAPI(ctx, exercise.Response.Exercise.ID)
	require.NoError(t, err)
	assertions.ExerciseNotFoundResponse(t, decode[schema.InternalErrorResponse](t, resp))
}

func decode[T any](t *testing.T, resp *client.Response) T {
	t.Helper()
	var v T
	require.NoError(t, resp.JSON(&v), "failed to decode %s", resp.Text())
	return v
}
