package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// Login exchanges credentials for an access token and user record.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "auth/login", "", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and returns the issued token.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "auth/register", "", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
