// Package fixtures creates API entities for tests through the client SDK.
//
// A Fixtures value is bound to one server. Each Function* method creates a
// fresh entity, failing the test on error, and returns the request it sent
// together with the decoded response.
package fixtures
