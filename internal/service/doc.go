// Package service contains the use cases of the course platform. Services
// validate input through the domain constructors, run multi-step writes
// inside a store.Transactor and return store sentinel errors (wrapped with
// context) so the API layer can map them to status codes.
//
// Services depend only on the interfaces in internal/store and on the
// BlobStorage abstraction, never on a concrete backend.
package service
