package booking

import (
	"context"
	"fmt"
	"time"

	"fixify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session seeded with the page's selection
// and stores the initial draft.
func (s *DefaultWizardService) Start(ctx context.Context, userID string, sel Selection) (*models.BookingDraft, error) {
	if sel.ServiceID == "" {
		return nil, fmt.Errorf("serviceId is required")
	}
	if sel.ProviderID == "" {
		return nil, fmt.Errorf("providerId is required")
	}
	if sel.Amount <= 0 {
		return nil, fmt.Errorf("amount must be a positive value")
	}

	draft := &models.BookingDraft{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		ServiceID:  sel.ServiceID,
		ProviderID: sel.ProviderID,
		Amount:     sel.Amount,
		Step:       models.StepSchedule,
		CreatedAt:  time.Now(),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.Logger.Info("wizard session started",
		zap.String("sessionID", draft.SessionID),
		zap.String("serviceID", sel.ServiceID),
		zap.String("providerID", sel.ProviderID))
	return draft, nil
}

// Get returns the current draft for a session.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.load(ctx, sessionID)
}

// SetSchedule records the chosen date and time slot and advances to
// Details. The advance is gated on the Schedule step's validation.
func (s *DefaultWizardService) SetSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingDraft, error) {
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if verr := validateSchedule(date, slot, time.Now()); verr != nil {
		return nil, verr
	}

	draft.SelectedDate = date
	draft.SelectedTimeSlot = slot
	draft.Step = models.StepDetails
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetDetails validates and commits the customer details and advances
// to Confirm. Field-level failures leave the draft untouched.
func (s *DefaultWizardService) SetDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingDraft, error) {
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if draft.SelectedDate == "" || draft.SelectedTimeSlot == "" {
		return nil, fmt.Errorf("schedule step is not complete")
	}
	if verr := validateDetails(details.Name, details.Email, details.Phone, details.Address); verr != nil {
		return nil, verr
	}

	draft.CustomerDetails = &details
	draft.Step = models.StepConfirm
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GoToStep navigates backwards. Forward movement only happens through
// SetSchedule and SetDetails so a step cannot be entered before its
// predecessor validated.
func (s *DefaultWizardService) GoToStep(ctx context.Context, sessionID string, step int) (*models.BookingDraft, error) {
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if step < models.StepSchedule || step > models.StepConfirm {
		return nil, fmt.Errorf("step %d is out of range", step)
	}
	if step > draft.Step {
		return nil, fmt.Errorf("cannot skip ahead to step %d", step)
	}

	draft.Step = step
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Reset restores the draft to its initial values: step 1, all
// selections cleared, success flag down. The selection context and the
// session itself survive.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	draft.Step = models.StepSchedule
	draft.SelectedDate = ""
	draft.SelectedTimeSlot = ""
	draft.CustomerDetails = nil
	draft.PaymentIntentID = ""
	draft.ClientSecret = ""
	draft.PaymentStatus = ""
	draft.IsSuccess = false
	draft.BookingID = ""
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Cancel discards the session entirely. Called when the wizard is
// dismissed so no stale state leaks into a later booking flow.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Drafts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	s.Logger.Info("wizard session cancelled", zap.String("sessionID", sessionID))
	return nil
}

func (s *DefaultWizardService) load(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	if sessionID == "" {
		return nil, ErrDraftNotFound
	}
	return s.Drafts.Get(ctx, sessionID)
}

// loadMutable rejects mutation of a completed draft.
func (s *DefaultWizardService) loadMutable(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.IsSuccess {
		return nil, ErrDraftComplete
	}
	return draft, nil
}
