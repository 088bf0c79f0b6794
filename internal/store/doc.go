// Package store defines the persistence interfaces for users, files,
// courses and exercises, the errors every implementation reports, and the
// transaction helpers shared by the postgres and memory backends.
package store
