package models

import "time"

// Wizard step numbers. The draft step is never set outside this range.
const (
	StepSchedule = 1
	StepDetails  = 2
	StepConfirm  = 3
)

// CustomerDetails is the set of fields collected on the Details step.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// BookingDraft holds wizard progress between steps. It is mutated only
// through the wizard service and stored per session, never globally.
type BookingDraft struct {
	SessionID  string  `json:"sessionId"`
	UserID     string  `json:"userId"`
	ServiceID  string  `json:"serviceId"`
	ProviderID string  `json:"providerId"`
	Amount     float64 `json:"amount"`

	Step             int              `json:"step"`
	SelectedDate     string           `json:"selectedDate,omitempty"` // "2006-01-02"
	SelectedTimeSlot string           `json:"selectedTimeSlot,omitempty"`
	CustomerDetails  *CustomerDetails `json:"customerDetails,omitempty"`

	// Payment session. ClientSecret is requested at most once per wizard
	// session; its presence is the idempotency guard.
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	ClientSecret    string `json:"clientSecret,omitempty"`
	PaymentStatus   string `json:"paymentStatus,omitempty"`

	IsSuccess bool      `json:"isSuccess"`
	BookingID string    `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
