package store

import "context"

// Stores groups the repositories of one backend. Inside a Transactor
// callback every member is bound to the same unit of work.
type Stores struct {
	Users     UserStore
	Files     FileStore
	Courses   CourseStore
	Exercises ExerciseStore
}

// Transactor runs a group of store operations atomically.
type Transactor interface {
	// RunInTx calls fn with stores bound to a new transaction, committing
	// when fn returns nil and rolling back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error
}
