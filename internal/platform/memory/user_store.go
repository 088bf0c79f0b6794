package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/store"
)

// UserStore implements store.UserStore.
type UserStore struct {
	db *DB
}

var _ store.UserStore = (*UserStore)(nil)

func (s *UserStore) emailTaken(email string, except uuid.UUID) bool {
	for id, rec := range s.db.data.users {
		if id != except && strings.EqualFold(rec.user.Email, email) {
			return true
		}
	}
	return false
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.emailTaken(user.Email, uuid.Nil) {
		return store.ErrEmailExists
	}
	if _, ok := s.db.data.users[user.ID]; ok {
		return store.ErrDuplicate
	}
	u := *user
	u.Password = ""
	s.db.data.users[user.ID] = userRecord{user: u, seq: s.db.data.next()}
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rec, ok := s.db.data.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := rec.user
	return &u, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, rec := range s.db.data.users {
		if strings.EqualFold(rec.user.Email, email) {
			u := rec.user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(_ context.Context, user *domain.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rec, ok := s.db.data.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	if s.emailTaken(user.Email, user.ID) {
		return store.ErrEmailExists
	}
	u := *user
	u.Password = ""
	u.CreatedAt = rec.user.CreatedAt
	rec.user = u
	s.db.data.users[user.ID] = rec
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.db.data.users, id)
	for cid, rec := range s.db.data.courses {
		if rec.course.CreatedByUserID == id {
			s.db.data.deleteCourse(cid)
		}
	}
	return nil
}
