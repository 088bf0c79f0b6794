// Package blob stores uploaded file contents on an afero filesystem, either
// the real disk under files.root or an in-memory one.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/logger"
)

// ErrNotFound is returned when no blob exists under a key.
var ErrNotFound = errors.New("blob not found")

// Storage reads and writes blobs addressed by slash-separated keys.
type Storage struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New returns a Storage rooted at root on base.
func New(base afero.Fs, root string, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		fs:     afero.NewBasePathFs(base, root),
		logger: logger.With(slog.String("component", "blob_storage")),
	}
}

// NewFromConfig builds a Storage for the configured filesystem.
func NewFromConfig(cfg config.FilesConfig, logger *slog.Logger) (*Storage, error) {
	var base afero.Fs
	switch cfg.FS {
	case "memory":
		base = afero.NewMemMapFs()
	case "os":
		base = afero.NewOsFs()
		if err := base.MkdirAll(cfg.Root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create files root %s: %w", cfg.Root, err)
		}
	default:
		return nil, fmt.Errorf("unknown files fs %q", cfg.FS)
	}
	return New(base, cfg.Root, logger), nil
}

func clean(key string) string {
	return path.Clean("/" + key)
}

// Put writes r under key, replacing any previous content, and returns the
// number of bytes written.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	name := clean(key)
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to create blob %s: %w", key, err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return 0, fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("blob stored",
		slog.String("key", key),
		slog.Int64("size", n))
	return n, nil
}

// Open returns the content stored under key.
func (s *Storage) Open(_ context.Context, key string) (afero.File, error) {
	f, err := s.fs.Open(clean(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	return f, nil
}

// Delete removes the blob stored under key. A missing blob is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.fs.Remove(clean(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("blob deleted", slog.String("key", key))
	return nil
}

// HTTPFileSystem exposes the stored blobs for http.FileServer.
func (s *Storage) HTTPFileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}
