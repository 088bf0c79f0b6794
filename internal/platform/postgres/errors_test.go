package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/coursekit/course-api/internal/store"
)

func newPgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "test_table",
		ColumnName:     "test_column",
		ConstraintName: constraint,
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "email unique", err: newPgError(uniqueViolationCode, usersEmailConstraint), wantIs: store.ErrEmailExists},
		{name: "other unique", err: newPgError(uniqueViolationCode, "files_pkey"), wantIs: store.ErrDuplicate},
		{name: "foreign key", err: newPgError(foreignKeyViolationCode, "courses_preview_file_id_fkey"), wantIs: store.ErrReferenceNotFound},
		{name: "check", err: newPgError(checkViolationCode, "courses_scores_check"), wantIs: store.ErrInvalidEntity},
		{name: "not null", err: newPgError(notNullViolationCode, ""), wantIs: store.ErrInvalidEntity},
		{name: "integer out of range", err: newPgError(numericOutOfRangeCode, ""), wantIs: store.ErrInvalidEntity},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", newPgError(uniqueViolationCode, usersEmailConstraint)), wantIs: store.ErrEmailExists},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}

	t.Run("unmapped error passes through", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Same(t, plain, MapError(plain))
	})

	t.Run("email unique is not reported as other entity", func(t *testing.T) {
		got := MapError(newPgError(uniqueViolationCode, "files_pkey"))
		assert.False(t, errors.Is(got, store.ErrEmailExists))
	})
}

func TestViolationPredicates(t *testing.T) {
	assert.True(t, IsUniqueViolation(newPgError(uniqueViolationCode, "")))
	assert.False(t, IsUniqueViolation(newPgError(foreignKeyViolationCode, "")))
	assert.True(t, IsForeignKeyViolation(newPgError(foreignKeyViolationCode, "")))
	assert.False(t, IsForeignKeyViolation(errors.New("generic")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		want    error
		wantErr bool
	}{
		{name: "one row", result: sqlmock.NewResult(0, 1)},
		{name: "no rows", result: sqlmock.NewResult(0, 0), want: store.ErrCourseNotFound, wantErr: true},
		{name: "result error", result: sqlmock.NewErrorResult(errors.New("boom")), wantErr: true},
		{name: "nil result", result: nil, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRowsAffected(tc.result, store.ErrCourseNotFound)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
