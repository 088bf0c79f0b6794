package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/store"
)

// CourseStore implements store.CourseStore.
type CourseStore struct {
	db *DB
}

var _ store.CourseStore = (*CourseStore)(nil)

// Create implements store.CourseStore.Create.
func (s *CourseStore) Create(_ context.Context, course *domain.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.files[course.PreviewFileID]; !ok {
		return fmt.Errorf("%w: preview file %s", store.ErrReferenceNotFound, course.PreviewFileID)
	}
	if _, ok := s.db.data.users[course.CreatedByUserID]; !ok {
		return fmt.Errorf("%w: user %s", store.ErrReferenceNotFound, course.CreatedByUserID)
	}
	if _, ok := s.db.data.courses[course.ID]; ok {
		return store.ErrDuplicate
	}
	s.db.data.courses[course.ID] = courseRecord{course: *course, seq: s.db.data.next()}
	return nil
}

// GetByID implements store.CourseStore.GetByID.
func (s *CourseStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rec, ok := s.db.data.courses[id]
	if !ok {
		return nil, store.ErrCourseNotFound
	}
	c := rec.course
	return &c, nil
}

// ListByUser implements store.CourseStore.ListByUser.
func (s *CourseStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	recs := make([]courseRecord, 0)
	for _, rec := range s.db.data.courses {
		if rec.course.CreatedByUserID == userID {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b courseRecord) int { return cmp.Compare(a.seq, b.seq) })

	courses := make([]*domain.Course, 0, len(recs))
	for _, rec := range recs {
		c := rec.course
		courses = append(courses, &c)
	}
	return courses, nil
}

// Update implements store.CourseStore.Update.
func (s *CourseStore) Update(_ context.Context, course *domain.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rec, ok := s.db.data.courses[course.ID]
	if !ok {
		return store.ErrCourseNotFound
	}
	c := rec.course
	c.Title = course.Title
	c.MaxScore = course.MaxScore
	c.MinScore = course.MinScore
	c.Description = course.Description
	c.EstimatedTime = course.EstimatedTime
	c.UpdatedAt = course.UpdatedAt
	rec.course = c
	s.db.data.courses[course.ID] = rec
	return nil
}

// Delete implements store.CourseStore.Delete.
func (s *CourseStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.courses[id]; !ok {
		return store.ErrCourseNotFound
	}
	s.db.data.deleteCourse(id)
	return nil
}
