package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "Pending"
	BookingAccepted   BookingStatus = "Accepted"
	BookingRejected   BookingStatus = "Rejected"
	BookingInProgress BookingStatus = "InProgress"
	BookingCompleted  BookingStatus = "Completed"
	BookingCancelled  BookingStatus = "Cancelled"
)

// Booking represents a confirmed booking record owned by the backend.
type Booking struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	ProviderID string           `json:"providerId"`
	ServiceID  string           `json:"serviceId"`
	Date       string           `json:"date"`
	Address    string           `json:"address"`
	Notes      string           `json:"notes,omitempty"`
	Status     BookingStatus    `json:"status"`
	CreatedAt  *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time       `json:"updatedAt,omitempty"`
	Service    *Service         `json:"service,omitempty"`
	Provider   *ProviderProfile `json:"provider,omitempty"`
	Customer   *User            `json:"customer,omitempty"`
}

// BookingSubmission is the payload posted to the backend once payment
// has been confirmed. Date carries the combined date and slot time as
// an ISO-8601 timestamp in the local timezone.
type BookingSubmission struct {
	ProviderID    string `json:"providerId"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
}
