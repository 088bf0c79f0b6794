// Package assertions holds the field-by-field checks used by API tests.
//
// Every function takes a testing.TB, reports failures through testify and
// returns whether the check passed, so callers may stop early. Messages name
// the compared field the same way across all entities, e.g.
// `Incorrect value: "title". Expected value: a. Actual value: b`.
package assertions
