// Package api exposes the course services over HTTP. It decodes and
// validates requests, calls the services and renders the schema types.
// Errors are mapped to status codes in one place (HandleAPIError) so every
// handler reports not-found, conflict, validation and authentication
// failures the same way.
package api
