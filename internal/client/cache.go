package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/schema"
)

// AuthenticationUser identifies the credentials an authenticated client
// logs in with. It is the key of ClientCache.
type AuthenticationUser struct {
	Email    string
	Password string
}

func (u AuthenticationUser) key() string {
	return u.Email + "\x00" + u.Password
}

// ClientCache memoizes one authenticated APIClient per AuthenticationUser.
// The first request for a user logs in; concurrent first requests share a
// single login. Failed logins are not cached, and neither are logins that
// were still running when their user was invalidated.
type ClientCache struct {
	cfg   HTTPConfig
	group singleflight.Group

	mu      sync.RWMutex
	clients map[AuthenticationUser]*APIClient
	// epoch counts Reset calls and gens counts Invalidate calls per user.
	epoch uint64
	gens  map[AuthenticationUser]uint64
}

// NewClientCache creates an empty cache building clients from cfg.
func NewClientCache(cfg HTTPConfig) *ClientCache {
	return &ClientCache{
		cfg:     cfg,
		clients: make(map[AuthenticationUser]*APIClient),
		gens:    make(map[AuthenticationUser]uint64),
	}
}

// PrivateHTTPClient returns the client authenticated as user, logging in
// on first use. Cancelling ctx stops this caller waiting; a login shared
// with other callers carries on.
func (c *ClientCache) PrivateHTTPClient(ctx context.Context, user AuthenticationUser) (*APIClient, error) {
	if cl, ok := c.lookup(user); ok {
		return cl, nil
	}

	loginCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(user.key(), func() (any, error) {
		c.mu.RLock()
		cl, ok := c.clients[user]
		gen := c.generation(user)
		c.mu.RUnlock()
		if ok {
			return cl, nil
		}

		cl, err := c.login(loginCtx, user)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation(user) == gen {
			c.clients[user] = cl
		}
		c.mu.Unlock()
		return cl, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*APIClient), nil
	}
}

// Invalidate drops the client of user so the next call logs in again.
func (c *ClientCache) Invalidate(user AuthenticationUser) {
	c.mu.Lock()
	c.gens[user]++
	delete(c.clients, user)
	c.mu.Unlock()
	c.group.Forget(user.key())
}

// Reset drops every cached client.
func (c *ClientCache) Reset() {
	c.mu.Lock()
	c.epoch++
	for user := range c.clients {
		c.group.Forget(user.key())
	}
	c.clients = make(map[AuthenticationUser]*APIClient)
	c.mu.Unlock()
}

// generation changes whenever user's entry is invalidated. Callers hold mu.
func (c *ClientCache) generation(user AuthenticationUser) uint64 {
	return c.epoch + c.gens[user]
}

// Len returns the number of cached clients.
func (c *ClientCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clients)
}

func (c *ClientCache) lookup(user AuthenticationUser) (*APIClient, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cl, ok := c.clients[user]
	return cl, ok
}

func (c *ClientCache) login(ctx context.Context, user AuthenticationUser) (*APIClient, error) {
	public, err := NewPublicHTTPClient(c.cfg)
	if err != nil {
		return nil, err
	}

	resp, err := NewAuthenticationClient(public).Login(ctx, schema.LoginRequest{
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	logger.FromContextOrDefault(ctx, c.cfg.Logger).Debug("authenticated API client created",
		slog.String("base_url", c.cfg.BaseURL))
	return newHTTPClient(c.cfg, BearerAuth(resp.Token.AccessToken))
}
