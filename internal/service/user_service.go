package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/service/auth"
	"github.com/coursekit/course-api/internal/store"
)

// CreateUserInput carries the fields of a registration request.
type CreateUserInput struct {
	Email      string
	Password   string
	LastName   string
	FirstName  string
	MiddleName string
}

// UserService provides user-related operations.
type UserService interface {
	// CreateUser registers a user, hashing the password. Returns
	// store.ErrEmailExists when the email is taken.
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetUserByEmail retrieves a user by email, ignoring case.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser applies a partial update and returns the stored user.
	UpdateUser(ctx context.Context, userID uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	// DeleteUser removes a user together with the courses they created.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	users  store.UserStore
	tx     store.Transactor
	hasher auth.PasswordHasher
	logger *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	users store.UserStore,
	tx store.Transactor,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		users:  users,
		tx:     tx,
		hasher: hasher,
		logger: logger.With("component", "user_service"),
	}
}

// CreateUser implements UserService. Validation failures come back as
// *domain.ValidationError; store errors are wrapped in a ServiceError.
func (s *UserServiceImpl) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Build and validate the user before touching the password
	user, err := domain.NewUser(in.Email, in.Password, in.LastName, in.FirstName, in.MiddleName)
	if err != nil {
		return nil, err
	}

	// Hash the password and drop the plaintext
	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, NewServiceError("create_user", "failed to hash password", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	// Save the user; a taken email is only logged at debug
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		} else {
			log.Error("failed to save user", "error", err)
		}
		return nil, NewServiceError("create_user", "failed to save user", err)
	}

	log.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUser implements UserService. A missing user surfaces as
// store.ErrUserNotFound wrapped in a ServiceError.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("get_user", "failed to retrieve user", err)
	}
	return user, nil
}

// GetUserByEmail implements UserService. The lookup ignores case.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewServiceError("get_user_by_email", "failed to retrieve user by email", err)
	}
	return user, nil
}

// UpdateUser implements UserService. The user is read and written inside one
// transaction so concurrent updates cannot interleave.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Stores) error {
		// Retrieve the complete user first
		user, err := tx.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		// Apply only the fields present in the patch, then revalidate
		patch.Apply(user)
		if err := user.Validate(); err != nil {
			return err
		}

		// Save the complete user back; the hashed password is kept as read
		if err := tx.Users.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		// Not-found, duplicate and validation errors go back to the caller unlogged
		if !isExpected(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update user",
				"error", err, "user_id", userID)
		}
		return nil, NewServiceError("update_user", "failed to update user", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user updated", "user_id", userID)
	return updated, nil
}

// DeleteUser implements UserService. The store removes the user's courses
// and their exercises with it.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return NewServiceError("delete_user", "failed to delete user", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("user deleted", "user_id", userID)
	return nil
}
