package api

import (
	"context"
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/service/auth"
)

// TokenIssuer exchanges credentials or refresh tokens for token pairs.
// *auth.Authenticator implements it.
type TokenIssuer interface {
	Login(ctx context.Context, email, password string) (*auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

type loginBody struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type refreshBody struct {
	RefreshToken *string `json:"refreshToken"`
}

// AuthHandler serves the /authentication endpoints.
type AuthHandler struct {
	issuer TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// Login handles POST /authentication/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Parse the request body
	var body loginBody
	if !decodeBody(w, r, &body) {
		return
	}

	// Both fields are required; report every missing one at once
	ve := &domain.ValidationError{}
	email := shared.RequireString(ve, body.Email, "body", "email")
	password := shared.RequireString(ve, body.Password, "body", "password")
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	// Wrong email and wrong password map to the same 401
	pair, err := h.issuer.Login(r.Context(), email, password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tokenView(pair))
}

// Refresh handles POST /authentication/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	// Parse the request body
	var body refreshBody
	if !decodeBody(w, r, &body) {
		return
	}

	ve := &domain.ValidationError{}
	token := shared.RequireString(ve, body.RefreshToken, "body", "refreshToken")
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	// Only a valid refresh token for an existing user yields a new pair
	pair, err := h.issuer.Refresh(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tokenView(pair))
}
