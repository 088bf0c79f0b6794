// Package memory keeps users, files, courses and exercises in process
// memory. It backs the server when store.driver is "memory" and gives
// service and API tests a store without a database.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/store"
)

type userRecord struct {
	user domain.User
	seq  uint64
}

type fileRecord struct {
	file domain.File
	seq  uint64
}

type courseRecord struct {
	course domain.Course
	seq    uint64
}

type exerciseRecord struct {
	exercise domain.Exercise
	seq      uint64
}

// tables is the full data set; it is copied to snapshot a transaction.
type tables struct {
	users     map[uuid.UUID]userRecord
	files     map[uuid.UUID]fileRecord
	courses   map[uuid.UUID]courseRecord
	exercises map[uuid.UUID]exerciseRecord
	seq       uint64
}

func newTables() tables {
	return tables{
		users:     make(map[uuid.UUID]userRecord),
		files:     make(map[uuid.UUID]fileRecord),
		courses:   make(map[uuid.UUID]courseRecord),
		exercises: make(map[uuid.UUID]exerciseRecord),
	}
}

func (t *tables) clone() tables {
	c := tables{
		users:     make(map[uuid.UUID]userRecord, len(t.users)),
		files:     make(map[uuid.UUID]fileRecord, len(t.files)),
		courses:   make(map[uuid.UUID]courseRecord, len(t.courses)),
		exercises: make(map[uuid.UUID]exerciseRecord, len(t.exercises)),
		seq:       t.seq,
	}
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.files {
		c.files[k] = v
	}
	for k, v := range t.courses {
		c.courses[k] = v
	}
	for k, v := range t.exercises {
		c.exercises[k] = v
	}
	return c
}

func (t *tables) next() uint64 {
	t.seq++
	return t.seq
}

// deleteCourse removes a course and its exercises.
func (t *tables) deleteCourse(id uuid.UUID) {
	delete(t.courses, id)
	for eid, rec := range t.exercises {
		if rec.exercise.CourseID == id {
			delete(t.exercises, eid)
		}
	}
}

// sequence and withSeq let mergeTable renumber rows a transaction created.
func (r userRecord) sequence() uint64     { return r.seq }
func (r fileRecord) sequence() uint64     { return r.seq }
func (r courseRecord) sequence() uint64   { return r.seq }
func (r exerciseRecord) sequence() uint64 { return r.seq }

func (r userRecord) withSeq(seq uint64) userRecord         { r.seq = seq; return r }
func (r fileRecord) withSeq(seq uint64) fileRecord         { r.seq = seq; return r }
func (r courseRecord) withSeq(seq uint64) courseRecord     { r.seq = seq; return r }
func (r exerciseRecord) withSeq(seq uint64) exerciseRecord { r.seq = seq; return r }

type record[R any] interface {
	comparable
	sequence() uint64
	withSeq(seq uint64) R
}

// mergeTable applies to into the rows that differ between base and changed.
// Updates to rows deleted from into in the meantime are dropped. Rows new in
// changed are numbered after everything already in t.
func mergeTable[R record[R]](t *tables, into, base, changed map[uuid.UUID]R) {
	created := make([]uuid.UUID, 0)
	for id, rec := range changed {
		old, ok := base[id]
		switch {
		case !ok:
			created = append(created, id)
		case old != rec:
			if _, live := into[id]; live {
				into[id] = rec
			}
		}
	}
	for id := range base {
		if _, ok := changed[id]; !ok {
			delete(into, id)
		}
	}

	slices.SortFunc(created, func(a, b uuid.UUID) int {
		return cmp.Compare(changed[a].sequence(), changed[b].sequence())
	})
	for _, id := range created {
		into[id] = changed[id].withSeq(t.next())
	}
}

// merge applies the difference between base and changed to t.
func (t *tables) merge(base, changed *tables) {
	mergeTable(t, t.users, base.users, changed.users)
	mergeTable(t, t.files, base.files, changed.files)
	mergeTable(t, t.courses, base.courses, changed.courses)
	mergeTable(t, t.exercises, base.exercises, changed.exercises)
}

// check reports the first unique or reference constraint t violates.
func (t *tables) check() error {
	emails := make(map[string]struct{}, len(t.users))
	for _, rec := range t.users {
		key := strings.ToLower(rec.user.Email)
		if _, taken := emails[key]; taken {
			return store.ErrEmailExists
		}
		emails[key] = struct{}{}
	}
	for _, rec := range t.courses {
		if _, ok := t.files[rec.course.PreviewFileID]; !ok {
			return fmt.Errorf("%w: preview file %s", store.ErrReferenceNotFound, rec.course.PreviewFileID)
		}
		if _, ok := t.users[rec.course.CreatedByUserID]; !ok {
			return fmt.Errorf("%w: user %s", store.ErrReferenceNotFound, rec.course.CreatedByUserID)
		}
	}
	for _, rec := range t.exercises {
		if _, ok := t.courses[rec.exercise.CourseID]; !ok {
			return fmt.Errorf("%w: course %s", store.ErrReferenceNotFound, rec.exercise.CourseID)
		}
	}
	return nil
}

// DB is an in-memory database shared by the stores it hands out.
type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data tables
}

// New returns an empty database.
func New() *DB {
	return &DB{data: newTables()}
}

// Stores returns stores reading and writing db.
func (db *DB) Stores() store.Stores {
	return store.Stores{
		Users:     &UserStore{db: db},
		Files:     &FileStore{db: db},
		Courses:   &CourseStore{db: db},
		Exercises: &ExerciseStore{db: db},
	}
}

var _ store.Transactor = (*DB)(nil)

// RunInTx implements store.Transactor. fn works on a private copy of the
// tables; writes made through db meanwhile stay visible to other callers and
// are never undone. On success the rows fn changed are merged into db, and
// the commit fails without effect if the merged tables break a unique or
// reference constraint. Transactions are serialized with each other.
func (db *DB) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.Stores) error) error {
	db.txMu.Lock()
	defer db.txMu.Unlock()

	db.mu.RLock()
	base := db.data.clone()
	db.mu.RUnlock()

	tx := &DB{data: base.clone()}
	if err := fn(ctx, tx.Stores()); err != nil {
		return err
	}

	tx.mu.RLock()
	defer tx.mu.RUnlock()
	db.mu.Lock()
	defer db.mu.Unlock()

	merged := db.data.clone()
	merged.merge(&base, &tx.data)
	if err := merged.check(); err != nil {
		return err
	}
	db.data = merged
	return nil
}
