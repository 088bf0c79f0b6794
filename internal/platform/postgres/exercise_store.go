package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// PostgresExerciseStore implements store.ExerciseStore using PostgreSQL.
type PostgresExerciseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExerciseStore creates an exercise store.
func NewPostgresExerciseStore(db store.DBTX, logger *slog.Logger) *PostgresExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresExerciseStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_store")),
	}
}

var _ store.ExerciseStore = (*PostgresExerciseStore)(nil)

const exerciseColumns = `id, course_id, title, max_score, min_score, order_index,
	description, estimated_time, created_at, updated_at`

// Create implements store.ExerciseStore.Create.
func (s *PostgresExerciseStore) Create(ctx context.Context, e *domain.Exercise) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercises (`+exerciseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.CourseID, e.Title, e.MaxScore, e.MinScore, e.OrderIndex,
		e.Description, e.EstimatedTime, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if !IsForeignKeyViolation(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to create exercise",
				slog.String("error", err.Error()),
				slog.String("exercise_id", e.ID.String()))
		}
		return MapError(err)
	}
	return nil
}

// GetByID implements store.ExerciseStore.GetByID.
func (s *PostgresExerciseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id)
	e, err := scanExercise(row)
	if err != nil {
		return nil, notFoundOr(err, store.ErrExerciseNotFound)
	}
	return e, nil
}

// ListByCourse implements store.ExerciseStore.ListByCourse.
func (s *PostgresExerciseStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises
		WHERE course_id = $1
		ORDER BY order_index, created_at, id`, courseID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	exercises := make([]*domain.Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return exercises, nil
}

// Update implements store.ExerciseStore.Update.
func (s *PostgresExerciseStore) Update(ctx context.Context, e *domain.Exercise) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE exercises
		SET title = $2, max_score = $3, min_score = $4, order_index = $5,
		    description = $6, estimated_time = $7, updated_at = $8
		WHERE id = $1`,
		e.ID, e.Title, e.MaxScore, e.MinScore, e.OrderIndex, e.Description, e.EstimatedTime, e.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrExerciseNotFound)
}

// Delete implements store.ExerciseStore.Delete.
func (s *PostgresExerciseStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrExerciseNotFound)
}

func scanExercise(row rowScanner) (*domain.Exercise, error) {
	var e domain.Exercise
	if err := row.Scan(&e.ID, &e.CourseID, &e.Title, &e.MaxScore, &e.MinScore, &e.OrderIndex,
		&e.Description, &e.EstimatedTime, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
