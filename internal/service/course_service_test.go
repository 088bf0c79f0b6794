package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/store"
)

func TestCreateCourse(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)

	details := env.createCourse(t, file.ID, user.ID)
	assert.Equal(t, "Playwright", details.Course.Title)
	assert.Equal(t, file.ID, details.PreviewFile.ID)
	assert.Equal(t, user.ID, details.CreatedByUser.ID)
}

func TestCreateCourseMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)

	tests := []struct {
		name    string
		fileID  uuid.UUID
		userID  uuid.UUID
		wantErr error
	}{
		{name: "missing file", fileID: uuid.New(), userID: user.ID, wantErr: store.ErrFileNotFound},
		{name: "missing user", fileID: file.ID, userID: uuid.New(), wantErr: store.ErrUserNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.courses.CreateCourse(ctx, CreateCourseInput{
				Title: "t", MaxScore: 10, EstimatedTime: "1 week",
				PreviewFileID: tc.fileID, CreatedByUserID: tc.userID,
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	courses, err := env.courses.ListCourses(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCreateCourseValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.courses.CreateCourse(context.Background(), CreateCourseInput{
		Title: "", MaxScore: 10, MinScore: 20, EstimatedTime: "1 week",
		PreviewFileID: uuid.New(), CreatedByUserID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	other := env.createUser(t, "other@example.com")
	file := env.createFile(t)

	first := env.createCourse(t, file.ID, user.ID)
	second := env.createCourse(t, file.ID, user.ID)
	env.createCourse(t, file.ID, other.ID)

	courses, err := env.courses.ListCourses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, first.Course.ID, courses[0].Course.ID)
	assert.Equal(t, second.Course.ID, courses[1].Course.ID)
	assert.Equal(t, user.Email, courses[1].CreatedByUser.Email)
}

func TestUpdateCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)
	course := env.createCourse(t, file.ID, user.ID)

	updated, err := env.courses.UpdateCourse(ctx, course.Course.ID, domain.CoursePatch{
		Title:    ptr("Selenium"),
		MaxScore: ptr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "Selenium", updated.Course.Title)
	assert.Equal(t, 80, updated.Course.MaxScore)
	assert.Equal(t, "2 weeks", updated.Course.EstimatedTime)
	assert.Equal(t, file.ID, updated.PreviewFile.ID)

	_, err = env.courses.UpdateCourse(ctx, course.Course.ID, domain.CoursePatch{MinScore: ptr(500)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := env.courses.GetCourse(ctx, course.Course.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Course.MinScore)

	_, err = env.courses.UpdateCourse(ctx, uuid.New(), domain.CoursePatch{})
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
}

func TestDeleteCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)
	course := env.createCourse(t, file.ID, user.ID)

	exercise, err := env.exercises.CreateExercise(ctx, CreateExerciseInput{
		CourseID: course.Course.ID, Title: "Intro", MaxScore: 5, EstimatedTime: "1 hour",
	})
	require.NoError(t, err)

	require.NoError(t, env.courses.DeleteCourse(ctx, course.Course.ID))

	_, err = env.courses.GetCourse(ctx, course.Course.ID)
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
	_, err = env.exercises.GetExercise(ctx, exercise.ID)
	assert.ErrorIs(t, err, store.ErrExerciseNotFound)
}
