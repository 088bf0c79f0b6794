// Package demo groups small protocol servers that sit next to the course
// API: a raw TCP message history, a WebSocket echo and a gRPC course
// lookup. Each lives in its own subpackage with a matching cmd/ binary.
package demo
