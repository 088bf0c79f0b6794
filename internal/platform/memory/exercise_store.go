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

// ExerciseStore implements store.ExerciseStore.
type ExerciseStore struct {
	db *DB
}

var _ store.ExerciseStore = (*ExerciseStore)(nil)

// Create implements store.ExerciseStore.Create.
func (s *ExerciseStore) Create(_ context.Context, exercise *domain.Exercise) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.courses[exercise.CourseID]; !ok {
		return fmt.Errorf("%w: course %s", store.ErrReferenceNotFound, exercise.CourseID)
	}
	if _, ok := s.db.data.exercises[exercise.ID]; ok {
		return store.ErrDuplicate
	}
	s.db.data.exercises[exercise.ID] = exerciseRecord{exercise: *exercise, seq: s.db.data.next()}
	return nil
}

// GetByID implements store.ExerciseStore.GetByID.
func (s *ExerciseStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Exercise, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rec, ok := s.db.data.exercises[id]
	if !ok {
		return nil, store.ErrExerciseNotFound
	}
	e := rec.exercise
	return &e, nil
}

// ListByCourse implements store.ExerciseStore.ListByCourse.
func (s *ExerciseStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]*domain.Exercise, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	recs := make([]exerciseRecord, 0)
	for _, rec := range s.db.data.exercises {
		if rec.exercise.CourseID == courseID {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b exerciseRecord) int {
		if c := cmp.Compare(a.exercise.OrderIndex, b.exercise.OrderIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	exercises := make([]*domain.Exercise, 0, len(recs))
	for _, rec := range recs {
		e := rec.exercise
		exercises = append(exercises, &e)
	}
	return exercises, nil
}

// Update implements store.ExerciseStore.Update.
func (s *ExerciseStore) Update(_ context.Context, exercise *domain.Exercise) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rec, ok := s.db.data.exercises[exercise.ID]
	if !ok {
		return store.ErrExerciseNotFound
	}
	e := rec.exercise
	e.Title = exercise.Title
	e.MaxScore = exercise.MaxScore
	e.MinScore = exercise.MinScore
	e.OrderIndex = exercise.OrderIndex
	e.Description = exercise.Description
	e.EstimatedTime = exercise.EstimatedTime
	e.UpdatedAt = exercise.UpdatedAt
	rec.exercise = e
	s.db.data.exercises[exercise.ID] = rec
	return nil
}

// Delete implements store.ExerciseStore.Delete.
func (s *ExerciseStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.data.exercises[id]; !ok {
		return store.ErrExerciseNotFound
	}
	delete(s.db.data.exercises, id)
	return nil
}
