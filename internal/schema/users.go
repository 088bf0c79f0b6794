package schema

import "github.com/coursekit/course-api/internal/fakers"

// User is the public view of a user.
type User struct {
	ID         string `json:"id"         validate:"required,uuid"`
	Email      string `json:"email"      validate:"required,email"`
	LastName   string `json:"lastName"   validate:"required"`
	FirstName  string `json:"firstName"  validate:"required"`
	MiddleName string `json:"middleName" validate:"required"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
}

// NewCreateUserRequest returns a request with every field randomized.
func NewCreateUserRequest() CreateUserRequest {
	f := fakers.Default
	return CreateUserRequest{
		Email:      f.Email(),
		Password:   f.Password(),
		LastName:   f.LastName(),
		FirstName:  f.FirstName(),
		MiddleName: f.MiddleName(),
	}
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user" validate:"required"`
}

// Response bodies of the user endpoints.
type (
	CreateUserResponse = UserResponse
	GetUserResponse    = UserResponse
	UpdateUserResponse = UserResponse
)

// UpdateUserRequest is the body of PATCH /users/{user_id}. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	FirstName  *string `json:"firstName,omitempty"`
	MiddleName *string `json:"middleName,omitempty"`
}

// NewUpdateUserRequest returns a request changing every field.
func NewUpdateUserRequest() UpdateUserRequest {
	f := fakers.Default
	return UpdateUserRequest{
		Email:      ptr(f.Email()),
		LastName:   ptr(f.LastName()),
		FirstName:  ptr(f.FirstName()),
		MiddleName: ptr(f.MiddleName()),
	}
}

func ptr[T any](v T) *T {
	return &v
}
