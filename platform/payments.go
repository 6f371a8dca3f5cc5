package platform

import (
	"context"
	"fmt"
	"net/http"

	"fixify/models"
)

// CreatePaymentIntent asks the backend for a payment handle covering
// the wizard total. Returns the processor client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, amount float64) (string, error) {
	req := models.PaymentIntentRequest{Amount: amount}
	var out models.PaymentIntentResponse
	if err := c.do(ctx, http.MethodPost, "payments/create-intent", token, nil, req, &out); err != nil {
		return "", err
	}
	if out.ClientSecret == "" {
		return "", fmt.Errorf("payment intent response missing clientSecret")
	}
	return out.ClientSecret, nil
}
