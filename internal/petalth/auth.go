package petalth

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an authenticated identity. Bad credentials
// come back as an *APIError unwrapping to models.ErrUnauthenticated.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new owner account. The API treats a successful
// registration as a login and returns the same payload.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
