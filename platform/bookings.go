package platform

import (
	"context"
	"net/http"

	"fixify/models"
)

// CreateBooking posts the finalized booking. The payment intent id is
// sent as the Idempotency-Key header so a retry after a captured charge
// cannot create a duplicate booking.
func (c *Client) CreateBooking(ctx context.Context, token string, sub models.BookingSubmission, idempotencyKey string) (*models.Booking, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "bookings", token, headers, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerBookings lists bookings made by a customer.
func (c *Client) CustomerBookings(ctx context.Context, token, customerID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "bookings/customer/"+customerID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProviderBookings lists jobs assigned to a provider.
func (c *Client) ProviderBookings(ctx context.Context, token, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "bookings/provider/"+providerID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus moves a booking through its lifecycle.
func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	body := map[string]models.BookingStatus{"status": status}
	var out models.Booking
	if err := c.do(ctx, http.MethodPatch, "bookings/"+bookingID+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
