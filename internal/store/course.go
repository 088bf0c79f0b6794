package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
)

// CourseStore defines the interface for course persistence.
type CourseStore interface {
	// Create saves a new course. Returns ErrReferenceNotFound when the
	// preview file or the author does not exist.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// ListByUser returns the courses created by userID, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Course, error)

	// Update replaces the editable fields of an existing course.
	// Returns ErrCourseNotFound if the course does not exist.
	Update(ctx context.Context, course *domain.Course) error

	// Delete removes a course and its exercises.
	// Returns ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
