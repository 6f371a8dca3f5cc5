package booking

import (
	"context"

	"fixify/models"
	"fixify/platform"

	"go.uber.org/zap"
)

// Selection seeds a wizard session: the service and provider chosen on
// the hosting page, plus the charge total. Both ids are immutable for
// the life of the session.
type Selection struct {
	ServiceID  string  `json:"serviceId"`
	ProviderID string  `json:"providerId"`
	Amount     float64 `json:"amount"`
}

// WizardService drives the multi-step booking flow. Steps are strictly
// sequential: a step never advances unless its local validation passed,
// and a completed draft is read-only.
type WizardService interface {
	Start(ctx context.Context, userID string, sel Selection) (*models.BookingDraft, error)
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	SetSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingDraft, error)
	SetDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingDraft, error)
	GoToStep(ctx context.Context, sessionID string, step int) (*models.BookingDraft, error)
	PreparePayment(ctx context.Context, sessionID, token string) (*models.BookingDraft, error)
	Pay(ctx context.Context, sessionID, token, paymentMethodID string) (*models.BookingDraft, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Drafts   DraftStore
	Backend  platform.API
	Payments PaymentProcessor
	Logger   *zap.Logger
}
