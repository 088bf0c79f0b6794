package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
)

// ExerciseStore defines the interface for exercise persistence.
type ExerciseStore interface {
	// Create saves a new exercise. Returns ErrReferenceNotFound when the
	// course does not exist.
	Create(ctx context.Context, exercise *domain.Exercise) error

	// GetByID returns ErrExerciseNotFound if the exercise does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)

	// ListByCourse returns the exercises of a course ordered by OrderIndex,
	// then by creation time.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Exercise, error)

	// Update replaces the editable fields of an existing exercise.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	Update(ctx context.Context, exercise *domain.Exercise) error

	// Delete returns ErrExerciseNotFound if the exercise does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
