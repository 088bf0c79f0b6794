// Package testdb provides a PostgreSQL connection for integration tests.
//
// Tests call GetTestDBWithT to obtain a migrated database. When no database
// URL is configured (see ciutil.TestDatabaseURL) the test is skipped
// locally and fails in CI. WithTx runs test code in a transaction that is
// always rolled back, so tests can share one database.
package testdb
