package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// PostgresFileStore implements store.FileStore using PostgreSQL.
type PostgresFileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFileStore creates a file metadata store.
func NewPostgresFileStore(db store.DBTX, logger *slog.Logger) *PostgresFileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresFileStore{
		db:     db,
		logger: logger.With(slog.String("component", "file_store")),
	}
}

var _ store.FileStore = (*PostgresFileStore)(nil)

// Create implements store.FileStore.Create.
func (s *PostgresFileStore) Create(ctx context.Context, file *domain.File) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, filename, directory, created_at)
		VALUES ($1, $2, $3, $4)`,
		file.ID, file.Filename, file.Directory, file.CreatedAt,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create file",
			slog.String("error", err.Error()),
			slog.String("file_id", file.ID.String()))
		return MapError(err)
	}
	return nil
}

// GetByID implements store.FileStore.GetByID.
func (s *PostgresFileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	var f domain.File
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, directory, created_at FROM files WHERE id = $1`, id,
	).Scan(&f.ID, &f.Filename, &f.Directory, &f.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, store.ErrFileNotFound)
	}
	return &f, nil
}

// Delete implements store.FileStore.Delete.
func (s *PostgresFileStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrFileNotFound)
}
