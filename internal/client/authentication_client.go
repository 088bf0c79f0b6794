package client

import (
	"context"

	"github.com/coursekit/course-api/internal/schema"
)

// AuthenticationClient calls the /authentication endpoints.
type AuthenticationClient struct {
	api *APIClient
}

// NewAuthenticationClient wraps a public client.
func NewAuthenticationClient(api *APIClient) *AuthenticationClient {
	return &AuthenticationClient{api: api}
}

// LoginAPI sends POST /authentication/login.
func (c *AuthenticationClient) LoginAPI(ctx context.Context, req schema.LoginRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.AuthenticationLogin)
	return c.api.Post(ctx, Routes.AuthenticationLogin, req)
}

// RefreshAPI sends POST /authentication/refresh.
func (c *AuthenticationClient) RefreshAPI(ctx context.Context, req schema.RefreshRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.AuthenticationRefresh)
	return c.api.Post(ctx, Routes.AuthenticationRefresh, req)
}

// Login authenticates and returns the issued token pair.
func (c *AuthenticationClient) Login(ctx context.Context, req schema.LoginRequest) (*schema.LoginResponse, error) {
	return decode[schema.LoginResponse](c.LoginAPI(ctx, req))
}

// Refresh exchanges a refresh token for a new token pair.
func (c *AuthenticationClient) Refresh(ctx context.Context, req schema.RefreshRequest) (*schema.RefreshResponse, error) {
	return decode[schema.RefreshResponse](c.RefreshAPI(ctx, req))
}
