// Package config handles configuration loading, parsing, and validation
// from environment variables (prefix COURSE_), an optional .env file and an
// optional config.yaml. It is shared by the API server, the client CLI and
// the protocol demos.
package config
