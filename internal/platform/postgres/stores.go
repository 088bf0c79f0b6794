package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/coursekit/course-api/internal/store"
)

// NewStores builds every postgres store over db, which may be a *sql.DB or a *sql.Tx.
func NewStores(db store.DBTX, logger *slog.Logger) store.Stores {
	return store.Stores{
		Users:     NewPostgresUserStore(db, logger),
		Files:     NewPostgresFileStore(db, logger),
		Courses:   NewPostgresCourseStore(db, logger),
		Exercises: NewPostgresExerciseStore(db, logger),
	}
}

// Transactor implements store.Transactor on top of store.RunInTransaction.
type Transactor struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTransactor returns a Transactor opening transactions on db.
func NewTransactor(db *sql.DB, logger *slog.Logger) *Transactor {
	return &Transactor{db: db, logger: logger}
}

var _ store.Transactor = (*Transactor)(nil)

// RunInTx implements store.Transactor.
func (t *Transactor) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.Stores) error) error {
	return store.RunInTransaction(ctx, t.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, NewStores(tx, t.logger))
	})
}
