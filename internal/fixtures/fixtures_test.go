package fixtures_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/fixtures"
	"github.com/coursekit/course-api/internal/testutils"
)

func TestSampleImage(t *testing.T) {
	fx := fixtures.New(testutils.NewCourseAPIServer(t).HTTPConfig(nil))

	path := fx.SampleImage(t)
	assert.Equal(t, fixtures.ImagePNGFile, path)
	assert.Equal(t, path, fx.SampleImage(t), "second call reuses the file")

	data, err := afero.ReadFile(fx.FS(), path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestFunctionFixtures(t *testing.T) {
	server := testutils.NewCourseAPIServer(t)
	fx := fixtures.New(server.HTTPConfig(nil))
	ctx := context.Background()

	user := fx.FunctionUser(t)
	assert.Equal(t, user.Request.Email, user.Response.User.Email)
	assert.Equal(t, user.Email(), user.AuthenticationUser().Email)
	assert.Equal(t, user.Password(), user.AuthenticationUser().Password)

	me, err := fx.PrivateUsersClient(t, user).GetUserMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Response.User.ID, me.User.ID)

	file := fx.FunctionFile(t, user)
	assert.Equal(t, file.Request.Filename, file.Response.File.Filename)

	course := fx.FunctionCourse(t, user, file)
	assert.Equal(t, file.Response.File.ID, course.Response.Course.PreviewFile.ID)
	assert.Equal(t, user.Response.User.ID, course.Response.Course.CreatedByUser.ID)

	exercise := fx.FunctionExercise(t, user, course)
	assert.Equal(t, course.Response.Course.ID, exercise.Response.Exercise.CourseID)

	assert.Equal(t, 1, fx.Cache().Len(), "one login per user")
}

func TestFunctionUsersAreDistinct(t *testing.T) {
	fx := fixtures.New(testutils.NewCourseAPIServer(t).HTTPConfig(nil))

	first := fx.FunctionUser(t)
	second := fx.FunctionUser(t)
	assert.NotEqual(t, first.Response.User.ID, second.Response.User.ID)
	assert.NotEqual(t, first.Email(), second.Email())

	fx.PrivateClient(t, first)
	fx.PrivateClient(t, second)
	assert.Equal(t, 2, fx.Cache().Len())
}
