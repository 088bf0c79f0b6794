package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/mocks"
	"github.com/coursekit/course-api/internal/service/auth"
	"github.com/coursekit/course-api/internal/store"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, "user@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Empty(t, user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password123")))

	stored, err := env.users.GetUserByEmail(ctx, "USER@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "dup@example.com")

	_, err := env.users.CreateUser(context.Background(), CreateUserInput{
		Email: "Dup@example.com", Password: "x", LastName: "a", FirstName: "b", MiddleName: "c",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.CreateUser(context.Background(), CreateUserInput{Email: "not-an-email"})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)

	var fields []string
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"email", "password", "lastName", "firstName", "middleName"}, fields)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "old@example.com")
	env.createUser(t, "taken@example.com")

	updated, err := env.users.UpdateUser(ctx, user.ID, domain.UserPatch{
		Email:     ptr("new@example.com"),
		FirstName: ptr("Petr"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Petr", updated.FirstName)
	assert.Equal(t, "Ivanov", updated.LastName)

	t.Run("email taken", func(t *testing.T) {
		_, err := env.users.UpdateUser(ctx, user.ID, domain.UserPatch{Email: ptr("taken@example.com")})
		assert.ErrorIs(t, err, store.ErrEmailExists)

		got, err := env.users.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := env.users.UpdateUser(ctx, user.ID, domain.UserPatch{LastName: ptr("")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.users.UpdateUser(ctx, uuid.New(), domain.UserPatch{})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "gone@example.com")
	file := env.createFile(t)
	course := env.createCourse(t, file.ID, user.ID)

	require.NoError(t, env.users.DeleteUser(ctx, user.ID))

	_, err := env.users.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = env.courses.GetCourse(ctx, course.Course.ID)
	assert.ErrorIs(t, err, store.ErrCourseNotFound)

	assert.ErrorIs(t, env.users.DeleteUser(ctx, user.ID), store.ErrUserNotFound)
}

func TestUserServiceWrapsUnexpectedErrors(t *testing.T) {
	users := &mocks.MockUserStore{}
	boom := errors.New("connection reset")
	users.On("GetByID", mock.Anything, mock.Anything).Return(nil, boom)

	svc := NewUserService(users, nil, auth.NewBcryptVerifier(bcrypt.MinCost), nil)
	_, err := svc.GetUser(context.Background(), uuid.New())

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get_user", se.Operation)
	assert.ErrorIs(t, err, boom)
	users.AssertExpectations(t)
}
