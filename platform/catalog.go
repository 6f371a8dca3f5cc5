package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// Services lists the full service catalog.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "services", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceCategories lists catalog categories.
func (c *Client) ServiceCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "services/categories", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceByID fetches one catalog entry.
func (c *Client) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodGet, "services/"+id, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Providers lists approved provider profiles.
func (c *Client) Providers(ctx context.Context) ([]models.ProviderProfile, error) {
	var out []models.ProviderProfile
	if err := c.do(ctx, http.MethodGet, "providers", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
