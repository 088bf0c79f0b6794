package assertions

import (
	"testing"

	"github.com/coursekit/course-api/internal/schema"
)

// CreateUserResponse checks that the created user echoes the request.
func CreateUserResponse(t testing.TB, request schema.CreateUserRequest, response schema.CreateUserResponse) bool {
	t.Helper()
	step("Check create user response")
	ok := Equal(t, response.User.Email, request.Email, "email")
	ok = Equal(t, response.User.LastName, request.LastName, "last_name") && ok
	ok = Equal(t, response.User.FirstName, request.FirstName, "first_name") && ok
	ok = Equal(t, response.User.MiddleName, request.MiddleName, "middle_name") && ok
	return ok
}

// User compares two users field by field.
func User(t testing.TB, actual, expected schema.User) bool {
	t.Helper()
	step("Check user")
	ok := Equal(t, actual.ID, expected.ID, "id")
	ok = Equal(t, actual.Email, expected.Email, "email") && ok
	ok = Equal(t, actual.LastName, expected.LastName, "last_name") && ok
	ok = Equal(t, actual.FirstName, expected.FirstName, "first_name") && ok
	ok = Equal(t, actual.MiddleName, expected.MiddleName, "middle_name") && ok
	return ok
}

// GetUserResponse checks a fetched user against the created one.
func GetUserResponse(t testing.TB, getResponse schema.GetUserResponse, createResponse schema.CreateUserResponse) bool {
	t.Helper()
	step("Check get user response")
	return User(t, getResponse.User, createResponse.User)
}

// UpdateUserResponse checks that the non-nil fields of request were applied.
func UpdateUserResponse(t testing.TB, request schema.UpdateUserRequest, response schema.UpdateUserResponse) bool {
	t.Helper()
	step("Check update user response")
	ok := true
	if request.Email != nil {
		ok = Equal(t, response.User.Email, *request.Email, "email") && ok
	}
	if request.LastName != nil {
		ok = Equal(t, response.User.LastName, *request.LastName, "last_name") && ok
	}
	if request.FirstName != nil {
		ok = Equal(t, response.User.FirstName, *request.FirstName, "first_name") && ok
	}
	if request.MiddleName != nil {
		ok = Equal(t, response.User.MiddleName, *request.MiddleName, "middle_name") && ok
	}
	return ok
}

// LoginResponse checks that a bearer token pair was issued.
func LoginResponse(t testing.TB, response schema.LoginResponse) bool {
	t.Helper()
	step("Check login response")
	ok := Equal(t, response.Token.TokenType, "bearer", "token_type")
	ok = IsTrue(t, response.Token.AccessToken != "", "access_token") && ok
	ok = IsTrue(t, response.Token.RefreshToken != "", "refresh_token") && ok
	return ok
}
