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

// PostgresCourseStore implements store.CourseStore using PostgreSQL.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCourseStore creates a course store.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

var _ store.CourseStore = (*PostgresCourseStore)(nil)

const courseColumns = `id, title, max_score, min_score, description, estimated_time,
	preview_file_id, created_by_user_id, created_at, updated_at`

// Create implements store.CourseStore.Create.
func (s *PostgresCourseStore) Create(ctx context.Context, c *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (`+courseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Title, c.MaxScore, c.MinScore, c.Description, c.EstimatedTime,
		c.PreviewFileID, c.CreatedByUserID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("course references missing file or user",
				slog.String("course_id", c.ID.String()),
				slog.String("preview_file_id", c.PreviewFileID.String()),
				slog.String("created_by_user_id", c.CreatedByUserID.String()))
		} else {
			log.Error("failed to create course",
				slog.String("error", err.Error()),
				slog.String("course_id", c.ID.String()))
		}
		return MapError(err)
	}

	log.Debug("course created", slog.String("course_id", c.ID.String()))
	return nil
}

// GetByID implements store.CourseStore.GetByID.
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	c, err := scanCourse(row)
	if err != nil {
		return nil, notFoundOr(err, store.ErrCourseNotFound)
	}
	return c, nil
}

// ListByUser implements store.CourseStore.ListByUser.
func (s *PostgresCourseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Course, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE created_by_user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return courses, nil
}

// Update implements store.CourseStore.Update.
func (s *PostgresCourseStore) Update(ctx context.Context, c *domain.Course) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE courses
		SET title = $2, max_score = $3, min_score = $4, description = $5,
		    estimated_time = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Title, c.MaxScore, c.MinScore, c.Description, c.EstimatedTime, c.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCourseNotFound)
}

// Delete implements store.CourseStore.Delete.
func (s *PostgresCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCourseNotFound)
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	if err := row.Scan(&c.ID, &c.Title, &c.MaxScore, &c.MinScore, &c.Description,
		&c.EstimatedTime, &c.PreviewFileID, &c.CreatedByUserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
