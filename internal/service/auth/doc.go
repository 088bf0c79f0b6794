// Package auth issues and validates JWT access and refresh tokens, hashes
// and verifies passwords with bcrypt, and implements login and token refresh.
package auth
