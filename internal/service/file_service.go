package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// FileService manages uploaded files: their metadata rows and contents.
type FileService interface {
	// CreateFile validates the name parts, stores content under
	// directory/filename and records the file.
	CreateFile(ctx context.Context, filename, directory string, content io.Reader) (*domain.File, error)

	// GetFile retrieves file metadata by ID.
	GetFile(ctx context.Context, fileID uuid.UUID) (*domain.File, error)

	// DeleteFile removes the metadata row and then the stored contents.
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
}

// FileServiceImpl implements FileService.
type FileServiceImpl struct {
	files  store.FileStore
	blobs  BlobStorage
	logger *slog.Logger
}

var _ FileService = (*FileServiceImpl)(nil)

// NewFileService creates a new FileService.
func NewFileService(files store.FileStore, blobs BlobStorage, logger *slog.Logger) *FileServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileServiceImpl{
		files:  files,
		blobs:  blobs,
		logger: logger.With("component", "file_service"),
	}
}

// CreateFile implements FileService.
func (s *FileServiceImpl) CreateFile(
	ctx context.Context,
	filename, directory string,
	content io.Reader,
) (*domain.File, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	file, err := domain.NewFile(filename, directory)
	if err != nil {
		return nil, err
	}

	size, err := s.blobs.Put(ctx, file.Key(), content)
	if err != nil {
		log.Error("failed to store file contents", "error", err, "key", file.Key())
		return nil, NewServiceError("create_file", "failed to store contents", err)
	}

	if err := s.files.Create(ctx, file); err != nil {
		log.Error("failed to save file", "error", err, "file_id", file.ID)
		if delErr := s.blobs.Delete(ctx, file.Key()); delErr != nil {
			log.Warn("failed to remove orphaned contents", "error", delErr, "key", file.Key())
		}
		return nil, NewServiceError("create_file", "failed to save file", err)
	}

	log.Info("file created", "file_id", file.ID, "key", file.Key(), "size", size)
	return file, nil
}

// GetFile implements FileService.
func (s *FileServiceImpl) GetFile(ctx context.Context, fileID uuid.UUID) (*domain.File, error) {
	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, NewServiceError("get_file", "failed to retrieve file", err)
	}
	return file, nil
}

// DeleteFile implements FileService. Contents left behind by a failed blob
// delete are logged and otherwise ignored; the file is already gone for
// clients.
func (s *FileServiceImpl) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return NewServiceError("delete_file", "failed to retrieve file", err)
	}
	if err := s.files.Delete(ctx, fileID); err != nil {
		return NewServiceError("delete_file", "failed to delete file", err)
	}
	if err := s.blobs.Delete(ctx, file.Key()); err != nil {
		log.Warn("failed to remove file contents", "error", err, "key", file.Key())
	}

	log.Info("file deleted", "file_id", fileID)
	return nil
}
