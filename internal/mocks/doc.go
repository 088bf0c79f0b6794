// Package mocks provides testify/mock implementations of the store and auth
// interfaces for unit tests that need to script failures.
package mocks
