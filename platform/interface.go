package platform

import (
	"context"

	"fixify/models"
)

// API is the full surface of the backend consumed by the gateway.
// Handlers and services depend on this interface so tests can swap in
// fakes without a live backend.
type API interface {
	// Auth.
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)

	// Catalog.
	Services(ctx context.Context) ([]models.Service, error)
	ServiceCategories(ctx context.Context) ([]models.Category, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	Providers(ctx context.Context) ([]models.ProviderProfile, error)

	// Bookings.
	CreateBooking(ctx context.Context, token string, sub models.BookingSubmission, idempotencyKey string) (*models.Booking, error)
	CustomerBookings(ctx context.Context, token, customerID string) ([]models.Booking, error)
	ProviderBookings(ctx context.Context, token, providerID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, token, bookingID string, status models.BookingStatus) (*models.Booking, error)

	// Payments.
	CreatePaymentIntent(ctx context.Context, token string, amount float64) (string, error)

	// Address book.
	Addresses(ctx context.Context, token string) ([]models.SavedAddress, error)
	SaveAddress(ctx context.Context, token string, addr models.SavedAddress) (*models.SavedAddress, error)

	// Chat history.
	ChatHistory(ctx context.Context, token, bookingID string) ([]models.ChatMessage, error)

	// Admin surfaces.
	AdminProviders(ctx context.Context, token string) ([]models.ProviderProfile, error)
	UpdateProviderStatus(ctx context.Context, token, providerID string, status models.ProviderStatus) (*models.ProviderProfile, error)
	Applications(ctx context.Context, token string) ([]models.ProviderApplication, error)
	UpdateApplication(ctx context.Context, token, applicationID string, status models.ProviderStatus) (*models.ProviderApplication, error)
	Dashboard(ctx context.Context, token string) (map[string]interface{}, error)
	AdminBookings(ctx context.Context, token string) ([]models.Booking, error)
}

var _ API = (*Client)(nil)
