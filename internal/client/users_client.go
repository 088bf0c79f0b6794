package client

import (
	"context"
	"net/url"

	"github.com/coursekit/course-api/internal/schema"
)

// PublicUsersClient calls the user endpoints open to anonymous clients.
type PublicUsersClient struct {
	api *APIClient
}

// NewPublicUsersClient wraps a public client.
func NewPublicUsersClient(api *APIClient) *PublicUsersClient {
	return &PublicUsersClient{api: api}
}

// CreateUserAPI sends POST /users.
func (c *PublicUsersClient) CreateUserAPI(ctx context.Context, req schema.CreateUserRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.Users)
	return c.api.Post(ctx, Routes.Users, req)
}

// CreateUser registers a user.
func (c *PublicUsersClient) CreateUser(ctx context.Context, req schema.CreateUserRequest) (*schema.CreateUserResponse, error) {
	return decode[schema.CreateUserResponse](c.CreateUserAPI(ctx, req))
}

// PrivateUsersClient calls the user endpoints that require authentication.
type PrivateUsersClient struct {
	api *APIClient
}

// NewPrivateUsersClient wraps an authenticated client.
func NewPrivateUsersClient(api *APIClient) *PrivateUsersClient {
	return &PrivateUsersClient{api: api}
}

// GetUserMeAPI sends GET /users/me.
func (c *PrivateUsersClient) GetUserMeAPI(ctx context.Context) (*Response, error) {
	ctx = withRoute(ctx, Routes.UsersMe)
	return c.api.Get(ctx, Routes.UsersMe, nil)
}

// GetUserAPI sends GET /users/{user_id}.
func (c *PrivateUsersClient) GetUserAPI(ctx context.Context, userID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.UserByID)
	return c.api.Get(ctx, entityPath(Routes.Users, userID), nil)
}

// UpdateUserAPI sends PATCH /users/{user_id}.
func (c *PrivateUsersClient) UpdateUserAPI(ctx context.Context, userID string, req schema.UpdateUserRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.UserByID)
	return c.api.Patch(ctx, entityPath(Routes.Users, userID), req)
}

// DeleteUserAPI sends DELETE /users/{user_id}.
func (c *PrivateUsersClient) DeleteUserAPI(ctx context.Context, userID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.UserByID)
	return c.api.Delete(ctx, entityPath(Routes.Users, userID))
}

// GetUserMe returns the authenticated user.
func (c *PrivateUsersClient) GetUserMe(ctx context.Context) (*schema.GetUserResponse, error) {
	return decode[schema.GetUserResponse](c.GetUserMeAPI(ctx))
}

// GetUser returns the user with the given ID.
func (c *PrivateUsersClient) GetUser(ctx context.Context, userID string) (*schema.GetUserResponse, error) {
	return decode[schema.GetUserResponse](c.GetUserAPI(ctx, userID))
}

// UpdateUser changes the non-nil fields of req.
func (c *PrivateUsersClient) UpdateUser(ctx context.Context, userID string, req schema.UpdateUserRequest) (*schema.UpdateUserResponse, error) {
	return decode[schema.UpdateUserResponse](c.UpdateUserAPI(ctx, userID, req))
}

// entityPath appends an escaped ID segment to a collection route.
func entityPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
