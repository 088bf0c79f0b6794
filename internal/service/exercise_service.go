package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// CreateExerciseInput carries the fields of an exercise creation request.
type CreateExerciseInput struct {
	CourseID      uuid.UUID
	Title         string
	MaxScore      int
	MinScore      int
	OrderIndex    int
	Description   string
	EstimatedTime string
}

// ExerciseService provides exercise-related operations.
type ExerciseService interface {
	// ListExercises returns the exercises of a course ordered by orderIndex,
	// then by creation.
	ListExercises(ctx context.Context, courseID uuid.UUID) ([]*domain.Exercise, error)

	// CreateExercise adds an exercise to an existing course.
	CreateExercise(ctx context.Context, in CreateExerciseInput) (*domain.Exercise, error)

	// GetExercise retrieves an exercise by ID.
	GetExercise(ctx context.Context, exerciseID uuid.UUID) (*domain.Exercise, error)

	// UpdateExercise applies a partial update.
	UpdateExercise(ctx context.Context, exerciseID uuid.UUID, patch domain.ExercisePatch) (*domain.Exercise, error)

	// DeleteExercise removes an exercise.
	DeleteExercise(ctx context.Context, exerciseID uuid.UUID) error
}

// ExerciseServiceImpl implements ExerciseService.
type ExerciseServiceImpl struct {
	stores store.Stores
	tx     store.Transactor
	logger *slog.Logger
}

var _ ExerciseService = (*ExerciseServiceImpl)(nil)

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(stores store.Stores, tx store.Transactor, logger *slog.Logger) *ExerciseServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseServiceImpl{
		stores: stores,
		tx:     tx,
		logger: logger.With("component", "exercise_service"),
	}
}

// ListExercises implements ExerciseService.
func (s *ExerciseServiceImpl) ListExercises(ctx context.Context, courseID uuid.UUID) ([]*domain.Exercise, error) {
	exercises, err := s.stores.Exercises.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, NewServiceError("list_exercises", "failed to list exercises", err)
	}
	return exercises, nil
}

// CreateExercise implements ExerciseService. Returns store.ErrCourseNotFound
// when the course does not exist.
func (s *ExerciseServiceImpl) CreateExercise(ctx context.Context, in CreateExerciseInput) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(in.CourseID, in.Title, in.MaxScore, in.MinScore,
		in.OrderIndex, in.Description, in.EstimatedTime)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
		if _, err := tx.Courses.GetByID(ctx, exercise.CourseID); err != nil {
			return err
		}
		return tx.Exercises.Create(ctx, exercise)
	})
	if err != nil {
		if !isExpected(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to create exercise", "error", err)
		}
		return nil, NewServiceError("create_exercise", "failed to create exercise", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("exercise created",
		"exercise_id", exercise.ID, "course_id", exercise.CourseID)
	return exercise, nil
}

// GetExercise implements ExerciseService.
func (s *ExerciseServiceImpl) GetExercise(ctx context.Context, exerciseID uuid.UUID) (*domain.Exercise, error) {
	exercise, err := s.stores.Exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, NewServiceError("get_exercise", "failed to retrieve exercise", err)
	}
	return exercise, nil
}

// UpdateExercise implements ExerciseService.
func (s *ExerciseServiceImpl) UpdateExercise(
	ctx context.Context,
	exerciseID uuid.UUID,
	patch domain.ExercisePatch,
) (*domain.Exercise, error) {
	var updated *domain.Exercise
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
		exercise, err := tx.Exercises.GetByID(ctx, exerciseID)
		if err != nil {
			return err
		}
		patch.Apply(exercise)
		if err := exercise.Validate(); err != nil {
			return err
		}
		if err := tx.Exercises.Update(ctx, exercise); err != nil {
			return err
		}
		updated = exercise
		return nil
	})
	if err != nil {
		return nil, NewServiceError("update_exercise", "failed to update exercise", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("exercise updated", "exercise_id", exerciseID)
	return updated, nil
}

// DeleteExercise implements ExerciseService.
func (s *ExerciseServiceImpl) DeleteExercise(ctx context.Context, exerciseID uuid.UUID) error {
	if err := s.stores.Exercises.Delete(ctx, exerciseID); err != nil {
		return NewServiceError("delete_exercise", "failed to delete exercise", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("exercise deleted", "exercise_id", exerciseID)
	return nil
}
