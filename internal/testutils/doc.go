// Package testutils starts an in-process course API for tests of the
// client SDK, fixtures and assertions. The server runs the real router over
// the memory store and an in-memory file tree, so no database or network
// setup is needed.
package testutils
