package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// ChatHistory fetches the stored message history for a booking's room.
func (c *Client) ChatHistory(ctx context.Context, token, bookingID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := c.do(ctx, http.MethodGet, "chat/"+bookingID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
