package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/postgres"
	"github.com/coursekit/course-api/internal/store"
)

func newMock(t *testing.T) (store.Stores, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewStores(db, nil), mock
}

var userRowColumns = []string{
	"id", "email", "last_name", "first_name", "middle_name", "hashed_password", "created_at", "updated_at",
}

func testUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		LastName:       "Ivanov",
		FirstName:      "Ivan",
		MiddleName:     "Ivanovich",
		HashedPassword: "$2a$10$hash",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		stores, mock := newMock(t)
		user := testUser()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.LastName, user.FirstName, user.MiddleName,
				user.HashedPassword, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, stores.Users.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := stores.Users.Create(ctx, testUser())
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserStoreGet(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	t.Run("by id", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(user.ID).
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
				user.ID, user.Email, user.LastName, user.FirstName, user.MiddleName,
				user.HashedPassword, user.CreatedAt, user.UpdatedAt))

		got, err := stores.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, user.HashedPassword, got.HashedPassword)
	})

	t.Run("by email not found", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE lower\\(email\\)").
			WithArgs("missing@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := stores.Users.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserStoreUpdateDelete(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	t.Run("update missing user", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, stores.Users.Update(ctx, user), store.ErrUserNotFound)
	})

	t.Run("update to taken email", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectExec("UPDATE users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		assert.ErrorIs(t, stores.Users.Update(ctx, user), store.ErrEmailExists)
	})

	t.Run("delete", func(t *testing.T) {
		stores, mock := newMock(t)
		mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
			WithArgs(user.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, stores.Users.Delete(ctx, user.ID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
