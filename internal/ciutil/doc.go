// Package ciutil detects CI environments and resolves the settings that
// tests read from the environment, such as the test database URL.
package ciutil
