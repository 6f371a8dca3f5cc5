package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/models"
	"fixify/platform"

	"go.uber.org/zap"
)

// PreparePayment makes sure the session holds a payment handle before
// the Confirm step renders its form. The backend is asked for an
// intent at most once per wizard session: a held clientSecret is the
// guard, so re-entering Confirm never re-requests.
func (s *DefaultWizardService) PreparePayment(ctx context.Context, sessionID, token string) (*models.BookingDraft, error) {
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepConfirm {
		return nil, fmt.Errorf("details step is not complete")
	}
	if draft.ClientSecret != "" {
		return draft, nil
	}

	secret, err := s.Backend.CreatePaymentIntent(ctx, token, draft.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	draft.ClientSecret = secret
	draft.PaymentIntentID = IntentIDFromClientSecret(secret)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.Logger.Info("payment intent prepared",
		zap.String("sessionID", sessionID),
		zap.String("intentID", draft.PaymentIntentID))
	return draft, nil
}

// Pay runs the confirm-then-submit orchestration:
//
//	ready_for_input -> submitting_payment -> payment_failed (retry)
//	                                      -> processing (no advance)
//	                                      -> payment_succeeded -> submitting_booking
//	submitting_booking -> booking_failed (retry without re-charging)
//	                   -> done
//
// A draft whose payment already succeeded skips the processor on
// retry, so a backend rejection never leads to a second charge.
func (s *DefaultWizardService) Pay(ctx context.Context, sessionID, token, paymentMethodID string) (*models.BookingDraft, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.IsSuccess {
		return draft, nil
	}
	if draft.Step != models.StepConfirm {
		return nil, fmt.Errorf("details step is not complete")
	}
	if draft.ClientSecret == "" {
		return nil, fmt.Errorf("payment intent has not been prepared")
	}

	if draft.PaymentStatus != models.PaymentSucceeded {
		result, err := s.Payments.Confirm(ctx, draft.PaymentIntentID, paymentMethodID)
		if err != nil {
			// Hard processor failure: stay on Confirm, allow retry.
			return draft, err
		}
		if result.Status != models.PaymentSucceeded {
			draft.PaymentStatus = models.PaymentProcessing
			if err := s.Drafts.Save(ctx, draft); err != nil {
				return nil, err
			}
			return draft, nil
		}
		draft.PaymentStatus = models.PaymentSucceeded
	}

	return s.submitBooking(ctx, token, draft)
}

func (s *DefaultWizardService) submitBooking(ctx context.Context, token string, draft *models.BookingDraft) (*models.BookingDraft, error) {
	sub, err := buildSubmission(draft)
	if err != nil {
		return nil, err
	}

	booking, err := s.Backend.CreateBooking(ctx, token, sub, draft.PaymentIntentID)
	if err != nil {
		// Payment is captured at this point. Persist that fact so a
		// retry goes straight back to submission.
		if saveErr := s.Drafts.Save(ctx, draft); saveErr != nil {
			s.Logger.Error("failed to persist draft after submission failure", zap.Error(saveErr))
		}
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			return draft, &SubmissionError{Message: apiErr.Message}
		}
		return draft, &SubmissionError{Message: err.Error()}
	}

	draft.IsSuccess = true
	draft.BookingID = booking.ID
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.Logger.Info("booking confirmed",
		zap.String("sessionID", draft.SessionID),
		zap.String("bookingID", booking.ID))
	return draft, nil
}

// buildSubmission assembles the backend payload, combining the chosen
// date and slot label into one local-timezone ISO-8601 timestamp.
func buildSubmission(draft *models.BookingDraft) (models.BookingSubmission, error) {
	if draft.CustomerDetails == nil {
		return models.BookingSubmission{}, fmt.Errorf("customer details are missing")
	}
	when, err := CombineDateSlot(draft.SelectedDate, draft.SelectedTimeSlot)
	if err != nil {
		return models.BookingSubmission{}, err
	}
	return models.BookingSubmission{
		ProviderID:    draft.ProviderID,
		ServiceID:     draft.ServiceID,
		Date:          when.Format(time.RFC3339),
		CustomerName:  draft.CustomerDetails.Name,
		CustomerEmail: draft.CustomerDetails.Email,
		CustomerPhone: draft.CustomerDetails.Phone,
		Address:       draft.CustomerDetails.Address,
	}, nil
}
