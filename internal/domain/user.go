package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Field limits for users.
const (
	MaxEmailLength    = 250
	MaxNameLength     = 50
	MaxPasswordLength = 72 // bytes
)

var emailValidator = validator.New()

// User represents a registered user of the course platform.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	LastName       string    `json:"lastName"`
	FirstName      string    `json:"firstName"`
	MiddleName     string    `json:"middleName"`
	Password       string    `json:"-"` // Plaintext, only held during create/update
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with a fresh ID and timestamps.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password, lastName, firstName, middleName string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:         uuid.New(),
		Email:      email,
		LastName:   lastName,
		FirstName:  firstName,
		MiddleName: middleName,
		Password:   password,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	ve := &ValidationError{}

	if u.ID == uuid.Nil {
		ve.Add(MissingField(u.ID.String(), "body", "id"))
	}

	CheckString(ve, u.Email, 1, MaxEmailLength, "body", "email")
	if u.Email != "" && !ValidEmail(u.Email) {
		ve.Add(ValueError(u.Email, "value is not a valid email address", "body", "email"))
	}

	if u.Password != "" {
		// bcrypt rejects input over 72 bytes, whatever the rune count.
		if len(u.Password) > MaxPasswordLength {
			ve.Add(StringTooLong(u.Password, MaxPasswordLength, "body", "password"))
		}
	} else if u.HashedPassword == "" {
		ve.Add(StringTooShort(u.Password, 1, "body", "password"))
	}

	CheckString(ve, u.LastName, 1, MaxNameLength, "body", "lastName")
	CheckString(ve, u.FirstName, 1, MaxNameLength, "body", "firstName")
	CheckString(ve, u.MiddleName, 1, MaxNameLength, "body", "middleName")

	return ve.OrNil()
}

// ValidEmail reports whether email is a syntactically valid address.
func ValidEmail(email string) bool {
	return emailValidator.Var(email, "email") == nil
}

// UserPatch holds optional changes to a user. Nil fields are left untouched.
type UserPatch struct {
	Email      *string
	LastName   *string
	FirstName  *string
	MiddleName *string
}

// Apply copies the non-nil fields of p onto u and bumps UpdatedAt.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.MiddleName != nil {
		u.MiddleName = *p.MiddleName
	}
	u.UpdatedAt = time.Now().UTC()
}
