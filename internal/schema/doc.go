// Package schema defines the JSON bodies exchanged with the course API.
// The server renders them and the client SDK decodes them, so both sides
// agree on field names. `validate` tags describe which fields a response
// must carry; assertions.ValidateJSONSchema checks them.
//
// The New* constructors return requests filled with random data from
// internal/fakers.
package schema
