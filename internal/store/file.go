package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
)

// FileStore persists uploaded file metadata. File contents live in blob storage.
type FileStore interface {
	// Create saves the metadata of a new file.
	Create(ctx context.Context, file *domain.File) error

	// GetByID returns ErrFileNotFound if the file does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error)

	// Delete removes the metadata row and every course previewing the file.
	// Returns ErrFileNotFound if the file does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
