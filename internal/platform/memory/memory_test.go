package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/memory"
	"github.com/coursekit/course-api/internal/store"
)

type seed struct {
	user   *domain.User
	file   *domain.File
	course *domain.Course
}

func seedCourse(t *testing.T, stores store.Stores) seed {
	t.Helper()
	ctx := context.Background()

	user, err := domain.NewUser("author@example.com", "secret", "Last", "First", "Middle")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	require.NoError(t, stores.Users.Create(ctx, user))

	file, err := domain.NewFile("preview.png", "courses")
	require.NoError(t, err)
	require.NoError(t, stores.Files.Create(ctx, file))

	course, err := domain.NewCourse("Go", 100, 10, "desc", "4 weeks", file.ID, user.ID)
	require.NoError(t, err)
	require.NoError(t, stores.Courses.Create(ctx, course))

	return seed{user: user, file: file, course: course}
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	stores := memory.New().Stores()
	s := seedCourse(t, stores)

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		got, err := stores.Users.GetByEmail(ctx, "AUTHOR@example.com")
		require.NoError(t, err)
		assert.Equal(t, s.user.ID, got.ID)
		assert.Empty(t, got.Password, "plaintext passwords are never stored")
	})

	t.Run("duplicate email", func(t *testing.T) {
		other, err := domain.NewUser("Author@Example.com", "secret", "L", "F", "M")
		require.NoError(t, err)
		assert.ErrorIs(t, stores.Users.Create(ctx, other), store.ErrEmailExists)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		got, err := stores.Users.GetByID(ctx, s.user.ID)
		require.NoError(t, err)
		got.FirstName = "Changed"

		again, err := stores.Users.GetByID(ctx, s.user.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", again.FirstName)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := stores.Users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.ErrorIs(t, stores.Users.Delete(ctx, uuid.New()), store.ErrUserNotFound)
	})
}

func TestCascadingDeletes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		delete func(stores store.Stores, s seed) error
	}{
		{
			name:   "deleting the author",
			delete: func(stores store.Stores, s seed) error { return stores.Users.Delete(ctx, s.user.ID) },
		},
		{
			name:   "deleting the preview file",
			delete: func(stores store.Stores, s seed) error { return stores.Files.Delete(ctx, s.file.ID) },
		},
		{
			name:   "deleting the course",
			delete: func(stores store.Stores, s seed) error { return stores.Courses.Delete(ctx, s.course.ID) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stores := memory.New().Stores()
			s := seedCourse(t, stores)

			ex, err := domain.NewExercise(s.course.ID, "Intro", 10, 1, 0, "d", "1 weeks")
			require.NoError(t, err)
			require.NoError(t, stores.Exercises.Create(ctx, ex))

			require.NoError(t, tc.delete(stores, s))

			_, err = stores.Courses.GetByID(ctx, s.course.ID)
			assert.ErrorIs(t, err, store.ErrCourseNotFound)
			_, err = stores.Exercises.GetByID(ctx, ex.ID)
			assert.ErrorIs(t, err, store.ErrExerciseNotFound)
		})
	}
}

func TestCourseReferences(t *testing.T) {
	ctx := context.Background()
	stores := memory.New().Stores()
	s := seedCourse(t, stores)

	missingFile, err := domain.NewCourse("Go", 100, 10, "d", "1 weeks", uuid.New(), s.user.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, stores.Courses.Create(ctx, missingFile), store.ErrReferenceNotFound)

	orphan, err := domain.NewExercise(uuid.New(), "Intro", 10, 1, 0, "d", "1 weeks")
	require.NoError(t, err)
	assert.ErrorIs(t, stores.Exercises.Create(ctx, orphan), store.ErrReferenceNotFound)
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	stores := memory.New().Stores()
	s := seedCourse(t, stores)

	second, err := domain.NewCourse("Second", 50, 5, "d", "2 weeks", s.file.ID, s.user.ID)
	require.NoError(t, err)
	require.NoError(t, stores.Courses.Create(ctx, second))

	courses, err := stores.Courses.ListByUser(ctx, s.user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, s.course.ID, courses[0].ID)
	assert.Equal(t, second.ID, courses[1].ID)

	var titles []string
	for i, order := range []int{2, 0, 1, 0} {
		ex, err := domain.NewExercise(s.course.ID, string(rune('a'+i)), 10, 1, order, "d", "1 weeks")
		require.NoError(t, err)
		require.NoError(t, stores.Exercises.Create(ctx, ex))
	}
	exercises, err := stores.Exercises.ListByCourse(ctx, s.course.ID)
	require.NoError(t, err)
	for _, ex := range exercises {
		titles = append(titles, ex.Title)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, titles)

	empty, err := stores.Courses.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	stores := db.Stores()
	s := seedCourse(t, stores)

	t.Run("rollback discards writes", func(t *testing.T) {
		failure := errors.New("abort")
		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			require.NoError(t, tx.Courses.Delete(ctx, s.course.ID))
			return failure
		})
		assert.ErrorIs(t, err, failure)

		_, err = stores.Courses.GetByID(ctx, s.course.ID)
		assert.NoError(t, err)
	})

	t.Run("commit keeps writes", func(t *testing.T) {
		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			return tx.Files.Delete(ctx, s.file.ID)
		})
		require.NoError(t, err)

		_, err = stores.Files.GetByID(ctx, s.file.ID)
		assert.ErrorIs(t, err, store.ErrFileNotFound)
	})
}

func TestRunInTxKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()

	newFile := func(t *testing.T) *domain.File {
		t.Helper()
		f, err := domain.NewFile("upload.png", "files")
		require.NoError(t, err)
		return f
	}

	t.Run("rollback", func(t *testing.T) {
		db := memory.New()
		stores := db.Stores()
		s := seedCourse(t, stores)
		outside := newFile(t)

		failure := errors.New("validation failed")
		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			require.NoError(t, stores.Files.Create(ctx, outside))
			require.NoError(t, tx.Courses.Delete(ctx, s.course.ID))
			return failure
		})
		assert.ErrorIs(t, err, failure)

		_, err = stores.Files.GetByID(ctx, outside.ID)
		assert.NoError(t, err)
		_, err = stores.Courses.GetByID(ctx, s.course.ID)
		assert.NoError(t, err)
	})

	t.Run("commit", func(t *testing.T) {
		db := memory.New()
		stores := db.Stores()
		s := seedCourse(t, stores)
		outside, inside := newFile(t), newFile(t)

		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			require.NoError(t, tx.Files.Create(ctx, inside))
			require.NoError(t, stores.Files.Create(ctx, outside))

			_, err := tx.Files.GetByID(ctx, outside.ID)
			assert.ErrorIs(t, err, store.ErrFileNotFound, "transaction reads its own copy")
			_, err = stores.Files.GetByID(ctx, inside.ID)
			assert.ErrorIs(t, err, store.ErrFileNotFound, "uncommitted writes stay private")

			c, err := tx.Courses.GetByID(ctx, s.course.ID)
			require.NoError(t, err)
			c.Title = "Renamed"
			return tx.Courses.Update(ctx, c)
		})
		require.NoError(t, err)

		for _, id := range []uuid.UUID{outside.ID, inside.ID, s.file.ID} {
			_, err := stores.Files.GetByID(ctx, id)
			assert.NoError(t, err)
		}
		c, err := stores.Courses.GetByID(ctx, s.course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", c.Title)
	})

	t.Run("commit conflicting with a concurrent write", func(t *testing.T) {
		db := memory.New()
		stores := db.Stores()

		newUser := func(t *testing.T) *domain.User {
			t.Helper()
			u, err := domain.NewUser("same@example.com", "secret", "L", "F", "M")
			require.NoError(t, err)
			u.HashedPassword = "hash"
			return u
		}
		inside, outside := newUser(t), newUser(t)

		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			require.NoError(t, tx.Users.Create(ctx, inside))
			return stores.Users.Create(ctx, outside)
		})
		assert.ErrorIs(t, err, store.ErrEmailExists)

		got, err := stores.Users.GetByEmail(ctx, "same@example.com")
		require.NoError(t, err)
		assert.Equal(t, outside.ID, got.ID)
	})

	t.Run("rows created in a transaction list after earlier rows", func(t *testing.T) {
		db := memory.New()
		stores := db.Stores()
		s := seedCourse(t, stores)

		var late *domain.Course
		err := db.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
			var err error
			late, err = domain.NewCourse("Late", 10, 1, "d", "1 weeks", s.file.ID, s.user.ID)
			require.NoError(t, err)
			require.NoError(t, tx.Courses.Create(ctx, late))

			early, err := domain.NewCourse("Early", 10, 1, "d", "1 weeks", s.file.ID, s.user.ID)
			require.NoError(t, err)
			return stores.Courses.Create(ctx, early)
		})
		require.NoError(t, err)

		courses, err := stores.Courses.ListByUser(ctx, s.user.ID)
		require.NoError(t, err)
		require.Len(t, courses, 3)
		assert.Equal(t, []string{"Go", "Early", "Late"},
			[]string{courses[0].Title, courses[1].Title, courses[2].Title})
	})
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	stores := memory.New().Stores()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := domain.NewFile("a.png", "dir")
			if err != nil {
				return
			}
			_ = stores.Files.Create(ctx, f)
			_, _ = stores.Files.GetByID(ctx, f.ID)
		}()
	}
	wg.Wait()
}
