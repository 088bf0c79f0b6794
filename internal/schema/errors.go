package schema

// ValidationError describes one invalid input value.
type ValidationError struct {
	Type     string         `json:"type"  validate:"required"`
	Input    any            `json:"input"`
	Context  map[string]any `json:"ctx,omitempty"`
	Message  string         `json:"msg"   validate:"required"`
	Location []string       `json:"loc"   validate:"required"`
}

// ValidationErrorResponse is returned with status 422.
type ValidationErrorResponse struct {
	Details []ValidationError `json:"details" validate:"required,dive"`
}

// InternalErrorResponse carries a single message; it is used for 401, 404,
// 409 and 500 responses.
type InternalErrorResponse struct {
	Details string `json:"details" validate:"required"`
}
