package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// Addresses returns the authenticated user's saved address book.
func (c *Client) Addresses(ctx context.Context, token string) ([]models.SavedAddress, error) {
	var out []models.SavedAddress
	if err := c.do(ctx, http.MethodGet, "users/addresses", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveAddress stores a new address book entry.
func (c *Client) SaveAddress(ctx context.Context, token string, addr models.SavedAddress) (*models.SavedAddress, error) {
	var out models.SavedAddress
	if err := c.do(ctx, http.MethodPost, "users/addresses", token, nil, addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
