package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/store"
)

// UserLookup is the subset of store.UserStore the Authenticator needs.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator exchanges credentials or refresh tokens for token pairs.
type Authenticator struct {
	users    UserLookup
	tokens   JWTService
	verifier PasswordVerifier
	logger   *slog.Logger
}

// NewAuthenticator wires an Authenticator.
func NewAuthenticator(users UserLookup, tokens JWTService, verifier PasswordVerifier, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		users:    users,
		tokens:   tokens,
		verifier: verifier,
		logger:   logger.With("component", "authenticator"),
	}
}

// Login verifies email and password and issues a new token pair.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := a.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login attempt with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	log.Info("user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh validates a refresh token and issues a fresh pair for its user.
func (a *Authenticator) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := a.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return a.issue(ctx, claims.UserID)
}

func (a *Authenticator) issue(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, err := a.tokens.GenerateToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := a.tokens.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{
		TokenType:    BearerTokenType,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
