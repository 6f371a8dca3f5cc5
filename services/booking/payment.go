package booking

import (
	"context"
	"fmt"
	"strings"

	"fixify/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor confirms a charge against a previously created
// payment intent. Implementations map processor failures to
// PaymentError so the wizard can surface the message verbatim.
type PaymentProcessor interface {
	Confirm(ctx context.Context, intentID, paymentMethodID string) (*models.PaymentResult, error)
}

// StripeProcessor confirms payment intents through the Stripe API.
type StripeProcessor struct {
	Logger *zap.Logger
}

// NewStripeProcessor creates the Stripe-backed processor. The API key
// is set globally on the stripe package at startup.
func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{Logger: logger}
}

// Confirm attempts to capture the intent. A declined card comes back
// as a PaymentError carrying Stripe's own message; any status other
// than succeeded is reported as still processing.
func (p *StripeProcessor) Confirm(ctx context.Context, intentID, paymentMethodID string) (*models.PaymentResult, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx
	if paymentMethodID != "" {
		params.PaymentMethod = stripe.String(paymentMethodID)
	}

	intent, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			p.Logger.Warn("payment confirmation declined",
				zap.String("intentID", intentID),
				zap.String("code", string(stripeErr.Code)))
			return nil, &PaymentError{Code: string(stripeErr.Code), Message: stripeErr.Msg}
		}
		return nil, fmt.Errorf("payment confirmation failed: %w", err)
	}

	result := &models.PaymentResult{IntentID: intent.ID}
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		result.Status = models.PaymentSucceeded
	} else {
		result.Status = models.PaymentProcessing
	}

	p.Logger.Info("payment confirmation result",
		zap.String("intentID", intent.ID),
		zap.String("status", string(intent.Status)))
	return result, nil
}

// IntentIDFromClientSecret derives the intent id from its client
// secret ("pi_xxx_secret_yyy" carries the id as prefix).
func IntentIDFromClientSecret(secret string) string {
	if i := strings.Index(secret, "_secret"); i > 0 {
		return secret[:i]
	}
	return ""
}
