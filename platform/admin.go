package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// AdminProviders lists all providers regardless of moderation state.
func (c *Client) AdminProviders(ctx context.Context, token string) ([]models.ProviderProfile, error) {
	var out []models.ProviderProfile
	if err := c.do(ctx, http.MethodGet, "admin/providers", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProviderStatus approves, rejects or deactivates a provider.
func (c *Client) UpdateProviderStatus(ctx context.Context, token, providerID string, status models.ProviderStatus) (*models.ProviderProfile, error) {
	body := map[string]models.ProviderStatus{"status": status}
	var out models.ProviderProfile
	if err := c.do(ctx, http.MethodPatch, "admin/providers/"+providerID+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Applications lists pending provider onboarding applications.
func (c *Client) Applications(ctx context.Context, token string) ([]models.ProviderApplication, error) {
	var out []models.ProviderApplication
	if err := c.do(ctx, http.MethodGet, "admin/applications", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplication resolves an onboarding application.
func (c *Client) UpdateApplication(ctx context.Context, token, applicationID string, status models.ProviderStatus) (*models.ProviderApplication, error) {
	body := map[string]models.ProviderStatus{"status": status}
	var out models.ProviderApplication
	if err := c.do(ctx, http.MethodPatch, "admin/applications/"+applicationID, token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard returns aggregate counters for the admin landing page.
func (c *Client) Dashboard(ctx context.Context, token string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "admin/dashboard", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminBookings lists every booking on the platform.
func (c *Client) AdminBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "admin/bookings", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
