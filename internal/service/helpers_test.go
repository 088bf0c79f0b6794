package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/blob"
	"github.com/coursekit/course-api/internal/platform/memory"
	"github.com/coursekit/course-api/internal/service/auth"
)

type testEnv struct {
	db        *memory.DB
	fs        afero.Fs
	users     *UserServiceImpl
	files     *FileServiceImpl
	courses   *CourseServiceImpl
	exercises *ExerciseServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := memory.New()
	stores := db.Stores()
	fs := afero.NewMemMapFs()
	blobs := blob.New(fs, "/files", nil)

	return &testEnv{
		db:        db,
		fs:        fs,
		users:     NewUserService(stores.Users, db, auth.NewBcryptVerifier(bcrypt.MinCost), nil),
		files:     NewFileService(stores.Files, blobs, nil),
		courses:   NewCourseService(stores, db, nil),
		exercises: NewExerciseService(stores, db, nil),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user, err := e.users.CreateUser(context.Background(), CreateUserInput{
		Email:      email,
		Password:   "password123",
		LastName:   "Ivanov",
		FirstName:  "Ivan",
		MiddleName: "Ivanovich",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createFile(t *testing.T) *domain.File {
	t.Helper()
	file, err := e.files.CreateFile(context.Background(), "image.png", "courses", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	return file
}

func (e *testEnv) createCourse(t *testing.T, fileID, userID uuid.UUID) *CourseDetails {
	t.Helper()
	details, err := e.courses.CreateCourse(context.Background(), CreateCourseInput{
		Title:           "Playwright",
		MaxScore:        100,
		MinScore:        10,
		Description:     "Playwright course",
		EstimatedTime:   "2 weeks",
		PreviewFileID:   fileID,
		CreatedByUserID: userID,
	})
	require.NoError(t, err)
	return details
}

func ptr[T any](v T) *T {
	return &v
}
