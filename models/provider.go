package models

import "time"

// ProviderStatus tracks moderation state of a provider profile.
type ProviderStatus string

const (
	ProviderPendingApproval ProviderStatus = "PENDING_APPROVAL"
	ProviderApproved        ProviderStatus = "APPROVED"
	ProviderRejected        ProviderStatus = "REJECTED"
	ProviderInactive        ProviderStatus = "INACTIVE"
)

// ProviderProfile is a service-performing business bookable by customers.
type ProviderProfile struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	BusinessName string         `json:"businessName"`
	Bio          string         `json:"bio,omitempty"`
	Rating       string         `json:"rating,omitempty"`
	Experience   int            `json:"experience,omitempty"`
	Address      string         `json:"address,omitempty"`
	Status       ProviderStatus `json:"status,omitempty"`
}

// ProviderApplication is a pending onboarding request reviewed by admins.
type ProviderApplication struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	BusinessName string         `json:"businessName"`
	Address      string         `json:"address"`
	Experience   int            `json:"experience"`
	Services     []string       `json:"services"`
	Status       ProviderStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	User         *User          `json:"user,omitempty"`
}
