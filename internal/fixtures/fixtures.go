package fixtures

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/client"
	"github.com/coursekit/course-api/internal/schema"
)

// ImagePNGFile is the path of the sample upload inside Fixtures.FS.
const ImagePNGFile = "/testdata/files/image.png"

// Fixtures builds entities against one API server.
type Fixtures struct {
	cfg   client.HTTPConfig
	cache *client.ClientCache
	fs    afero.Fs

	once   sync.Once
	public *client.APIClient
}

// New creates fixtures for the server described by cfg. Sample uploads are
// written to an in-memory filesystem.
func New(cfg client.HTTPConfig) *Fixtures {
	return &Fixtures{
		cfg:   cfg,
		cache: client.NewClientCache(cfg),
		fs:    afero.NewMemMapFs(),
	}
}

// FS is the filesystem FilesClient reads uploads from.
func (f *Fixtures) FS() afero.Fs {
	return f.fs
}

// Cache is the authenticated client cache shared by all fixtures.
func (f *Fixtures) Cache() *client.ClientCache {
	return f.cache
}

// PublicClient returns the unauthenticated client.
func (f *Fixtures) PublicClient(t testing.TB) *client.APIClient {
	t.Helper()
	var err error
	f.once.Do(func() {
		f.public, err = client.NewPublicHTTPClient(f.cfg)
	})
	require.NoError(t, err, "failed to build public client")
	require.NotNil(t, f.public, "public client is not available")
	return f.public
}

// PrivateClient returns the client authenticated as user.
func (f *Fixtures) PrivateClient(t testing.TB, user UserFixture) *client.APIClient {
	t.Helper()
	api, err := f.cache.PrivateHTTPClient(context.Background(), user.AuthenticationUser())
	require.NoError(t, err, "failed to authenticate %s", user.Email())
	return api
}

// AuthenticationClient returns a client for the /authentication endpoints.
func (f *Fixtures) AuthenticationClient(t testing.TB) *client.AuthenticationClient {
	t.Helper()
	return client.NewAuthenticationClient(f.PublicClient(t))
}

// PublicUsersClient returns a client for anonymous user endpoints.
func (f *Fixtures) PublicUsersClient(t testing.TB) *client.PublicUsersClient {
	t.Helper()
	return client.NewPublicUsersClient(f.PublicClient(t))
}

// PrivateUsersClient returns a users client authenticated as user.
func (f *Fixtures) PrivateUsersClient(t testing.TB, user UserFixture) *client.PrivateUsersClient {
	t.Helper()
	return client.NewPrivateUsersClient(f.PrivateClient(t, user))
}

// FilesClient returns a files client authenticated as user.
func (f *Fixtures) FilesClient(t testing.TB, user UserFixture) *client.FilesClient {
	t.Helper()
	return client.NewFilesClient(f.PrivateClient(t, user), f.fs)
}

// CoursesClient returns a courses client authenticated as user.
func (f *Fixtures) CoursesClient(t testing.TB, user UserFixture) *client.CoursesClient {
	t.Helper()
	return client.NewCoursesClient(f.PrivateClient(t, user))
}

// ExercisesClient returns an exercises client authenticated as user.
func (f *Fixtures) ExercisesClient(t testing.TB, user UserFixture) *client.ExercisesClient {
	t.Helper()
	return client.NewExercisesClient(f.PrivateClient(t, user))
}

// UserFixture is a registered user.
type UserFixture struct {
	Request  schema.CreateUserRequest
	Response schema.CreateUserResponse
}

// Email is the login email of the user.
func (u UserFixture) Email() string { return u.Request.Email }

// Password is the plain-text password of the user.
func (u UserFixture) Password() string { return u.Request.Password }

// AuthenticationUser is the ClientCache key of the user.
func (u UserFixture) AuthenticationUser() client.AuthenticationUser {
	return client.AuthenticationUser{Email: u.Email(), Password: u.Password()}
}

// FunctionUser registers a new random user.
func (f *Fixtures) FunctionUser(t testing.TB) UserFixture {
	t.Helper()
	req := schema.NewCreateUserRequest()
	resp, err := f.PublicUsersClient(t).CreateUser(context.Background(), req)
	require.NoError(t, err, "failed to create user")
	return UserFixture{Request: req, Response: *resp}
}

// FileFixture is an uploaded file.
type FileFixture struct {
	Request  schema.CreateFileRequest
	Response schema.CreateFileResponse
}

// FunctionFile uploads the sample PNG as user.
func (f *Fixtures) FunctionFile(t testing.TB, user UserFixture) FileFixture {
	t.Helper()
	req := schema.NewCreateFileRequest(f.SampleImage(t))
	resp, err := f.FilesClient(t, user).CreateFile(context.Background(), req)
	require.NoError(t, err, "failed to create file")
	return FileFixture{Request: req, Response: *resp}
}

// CourseFixture is a created course.
type CourseFixture struct {
	Request  schema.CreateCourseRequest
	Response schema.CreateCourseResponse
}

// FunctionCourse creates a course authored by user with file as preview.
func (f *Fixtures) FunctionCourse(t testing.TB, user UserFixture, file FileFixture) CourseFixture {
	t.Helper()
	req := schema.NewCreateCourseRequest()
	req.PreviewFileID = file.Response.File.ID
	req.CreatedByUserID = user.Response.User.ID
	resp, err := f.CoursesClient(t, user).CreateCourse(context.Background(), req)
	require.NoError(t, err, "failed to create course")
	return CourseFixture{Request: req, Response: *resp}
}

// ExerciseFixture is a created exercise.
type ExerciseFixture struct {
	Request  schema.CreateExerciseRequest
	Response schema.CreateExerciseResponse
}

// FunctionExercise creates an exercise in course as user.
func (f *Fixtures) FunctionExercise(t testing.TB, user UserFixture, course CourseFixture) ExerciseFixture {
	t.Helper()
	req := schema.NewCreateExerciseRequest()
	req.CourseID = course.Response.Course.ID
	resp, err := f.ExercisesClient(t, user).CreateExercise(context.Background(), req)
	require.NoError(t, err, "failed to create exercise")
	return ExerciseFixture{Request: req, Response: *resp}
}

// SampleImage writes a small PNG to ImagePNGFile and returns its path.
func (f *Fixtures) SampleImage(t testing.TB) string {
	t.Helper()
	if ok, _ := afero.Exists(f.fs, ImagePNGFile); ok {
		return ImagePNGFile
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img), "failed to encode sample image")
	require.NoError(t, afero.WriteFile(f.fs, ImagePNGFile, buf.Bytes(), 0o644), "failed to write sample image")
	return ImagePNGFile
}
