// Package client is the typed Go SDK of the course API.
//
// APIClient performs raw requests and returns *Response values. The typed
// clients (AuthenticationClient, PublicUsersClient, PrivateUsersClient,
// FilesClient, CoursesClient, ExercisesClient) expose one *API method per
// endpoint plus a decoding convenience method that fails with *StatusError
// on unexpected status codes.
//
// NewPublicHTTPClient builds an unauthenticated client. ClientCache builds
// authenticated clients: it logs in once per AuthenticationUser and reuses
// the resulting client for later calls with the same credentials.
//
// Every client sends its requests through a RoundTripper chain that logs a
// redacted curl rendering of each request and records endpoint coverage.
package client
