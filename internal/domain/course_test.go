package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	t.Parallel()

	fileID, userID := uuid.New(), uuid.New()
	c, err := NewCourse("Go basics", 100, 10, "Intro", "2 weeks", fileID, userID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, fileID, c.PreviewFileID)
	assert.Equal(t, userID, c.CreatedByUserID)
}

func TestCourseValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		course Course
		fields []string
	}{
		{
			name: "empty title and time",
			course: Course{
				PreviewFileID: uuid.New(), CreatedByUserID: uuid.New(), MaxScore: 10,
			},
			fields: []string{"title", "estimatedTime"},
		},
		{
			name: "min above max",
			course: Course{
				Title: "t", EstimatedTime: "1 week", MinScore: 50, MaxScore: 10,
				PreviewFileID: uuid.New(), CreatedByUserID: uuid.New(),
			},
			fields: []string{"minScore"},
		},
		{
			name: "scores beyond 32 bits",
			course: Course{
				Title: "t", EstimatedTime: "1 week", MinScore: 1, MaxScore: MaxIntValue + 1,
				PreviewFileID: uuid.New(), CreatedByUserID: uuid.New(),
			},
			fields: []string{"maxScore"},
		},
		{
			name: "missing references",
			course: Course{
				Title: "t", EstimatedTime: "1 week", MaxScore: 10,
			},
			fields: []string{"previewFileId", "createdByUserId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)

			var got []string
			for _, fe := range ve.Errors {
				got = append(got, fe.Field())
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestExerciseValidate(t *testing.T) {
	t.Parallel()

	_, err := NewExercise(uuid.Nil, "", 10, 20, -1, "", "")
	ve, ok := AsValidationError(err)
	require.True(t, ok)

	var got []string
	for _, fe := range ve.Errors {
		got = append(got, fe.Field())
	}
	assert.ElementsMatch(t, []string{"courseId", "title", "estimatedTime", "minScore", "orderIndex"}, got)

	_, err = NewExercise(uuid.New(), "t", 10, 1, MaxIntValue+1, "d", "1 week")
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, ErrTypeLessThanEqual, ve.Errors[0].Type)
	assert.Equal(t, "orderIndex", ve.Errors[0].Field())
}

func TestCoursePatchApply(t *testing.T) {
	t.Parallel()

	c := &Course{Title: "old", MaxScore: 10}
	title := "new"
	maxScore := 99
	CoursePatch{Title: &title, MaxScore: &maxScore}.Apply(c)

	assert.Equal(t, "new", c.Title)
	assert.Equal(t, 99, c.MaxScore)
}
