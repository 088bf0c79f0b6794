// Package domain contains the entities of the course platform (users, files,
// courses, exercises) together with their validation rules. Validation
// failures are reported as *ValidationError so that the API layer can render
// them field by field.
package domain
