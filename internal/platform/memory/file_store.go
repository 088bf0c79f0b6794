package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/store"
)

// FileStore implements store.FileStore.
type FileStore struct {
	db *DB
}

var _ store.FileStore = (*FileStore)(nil)

// Create implements store.FileStore.Create.
func (s *FileStore) Create(_ context.Context, file *domain.File) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.files[file.ID]; ok {
		return store.ErrDuplicate
	}
	s.db.data.files[file.ID] = fileRecord{file: *file, seq: s.db.data.next()}
	return nil
}

// GetByID implements store.FileStore.GetByID.
func (s *FileStore) GetByID(_ context.Context, id uuid.UUID) (*domain.File, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rec, ok := s.db.data.files[id]
	if !ok {
		return nil, store.ErrFileNotFound
	}
	f := rec.file
	return &f, nil
}

// Delete implements store.FileStore.Delete.
func (s *FileStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.files[id]; !ok {
		return store.ErrFileNotFound
	}
	delete(s.db.data.files, id)
	for cid, rec := range s.db.data.courses {
		if rec.course.PreviewFileID == id {
			s.db.data.deleteCourse(cid)
		}
	}
	return nil
}
