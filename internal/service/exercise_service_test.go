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

func TestExerciseLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)
	course := env.createCourse(t, file.ID, user.ID)

	create := func(title string, order int) *domain.Exercise {
		e, err := env.exercises.CreateExercise(ctx, CreateExerciseInput{
			CourseID: course.Course.ID, Title: title, MaxScore: 10, MinScore: 1,
			OrderIndex: order, Description: "d", EstimatedTime: "5 minutes",
		})
		require.NoError(t, err)
		return e
	}

	second := create("second", 1)
	first := create("first", 0)
	third := create("third", 1)

	list, err := env.exercises.ListExercises(ctx, course.Course.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
		[]uuid.UUID{list[0].ID, list[1].ID, list[2].ID})

	updated, err := env.exercises.UpdateExercise(ctx, third.ID, domain.ExercisePatch{
		Title:      ptr("renamed"),
		OrderIndex: ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, 5, updated.OrderIndex)

	got, err := env.exercises.GetExercise(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, env.exercises.DeleteExercise(ctx, first.ID))
	assert.ErrorIs(t, env.exercises.DeleteExercise(ctx, first.ID), store.ErrExerciseNotFound)
}

func TestCreateExerciseUnknownCourse(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exercises.CreateExercise(context.Background(), CreateExerciseInput{
		CourseID: uuid.New(), Title: "t", MaxScore: 1, EstimatedTime: "1 day",
	})
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
}

func TestUpdateExerciseValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "author@example.com")
	file := env.createFile(t)
	course := env.createCourse(t, file.ID, user.ID)

	e, err := env.exercises.CreateExercise(ctx, CreateExerciseInput{
		CourseID: course.Course.ID, Title: "t", MaxScore: 10, EstimatedTime: "1 day",
	})
	require.NoError(t, err)

	_, err = env.exercises.UpdateExercise(ctx, e.ID, domain.ExercisePatch{OrderIndex: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
