package booking

import (
	"context"
	"testing"
	"time"

	"fixify/models"
	"fixify/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend stubs the two backend calls the payment flow makes.
// Embedding the interface keeps the rest of the surface unimplemented.
type fakeBackend struct {
	platform.API

	intentCalls  int
	clientSecret string
	intentErr    error
	bookingCalls int
	bookingKeys  []string
	submissions  []models.BookingSubmission
	booking      *models.Booking
	bookingErr   error
}

func (f *fakeBackend) CreatePaymentIntent(_ context.Context, _ string, _ float64) (string, error) {
	f.intentCalls++
	if f.intentErr != nil {
		return "", f.intentErr
	}
	return f.clientSecret, nil
}

func (f *fakeBackend) CreateBooking(_ context.Context, _ string, sub models.BookingSubmission, idempotencyKey string) (*models.Booking, error) {
	f.bookingCalls++
	f.bookingKeys = append(f.bookingKeys, idempotencyKey)
	f.submissions = append(f.submissions, sub)
	if f.bookingErr != nil {
		return nil, f.bookingErr
	}
	return f.booking, nil
}

// fakeProcessor scripts confirm outcomes in order.
type fakeProcessor struct {
	calls   int
	results []*models.PaymentResult
	errs    []error
}

func (f *fakeProcessor) Confirm(_ context.Context, intentID, _ string) (*models.PaymentResult, error) {
	i := f.calls
	f.calls++
	if f.errs != nil && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	res := f.results[i]
	if res.IntentID == "" {
		res.IntentID = intentID
	}
	return res, nil
}

func newPaymentWizard(backend *fakeBackend, proc *fakeProcessor) (*DefaultWizardService, *MemoryDraftStore) {
	store := NewMemoryDraftStore()
	svc := &DefaultWizardService{
		Drafts:   store,
		Backend:  backend,
		Payments: proc,
		Logger:   zap.NewNop(),
	}
	return svc, store
}

func confirmReadyDraft(t *testing.T, svc *DefaultWizardService) *models.BookingDraft {
	t.Helper()
	ctx := context.Background()
	draft := startedDraft(t, svc)
	_, err := svc.SetSchedule(ctx, draft.SessionID, tomorrow(), "10:00 AM")
	require.NoError(t, err)
	updated, err := svc.SetDetails(ctx, draft.SessionID, models.CustomerDetails{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "0712345678", Address: "14 Rose Lane, Westlands",
	})
	require.NoError(t, err)
	return updated
}

func TestPreparePaymentRequestsIntentAtMostOnce(t *testing.T) {
	backend := &fakeBackend{clientSecret: "pi_123_secret_abc"}
	svc, _ := newPaymentWizard(backend, &fakeProcessor{})
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)

	first, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", first.ClientSecret)
	assert.Equal(t, "pi_123", first.PaymentIntentID)

	// Re-entering Confirm keeps the held secret.
	second, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)
	assert.Equal(t, first.ClientSecret, second.ClientSecret)

	// Going back to Details and forward again does not re-request either.
	_, err = svc.GoToStep(ctx, draft.SessionID, models.StepDetails)
	require.NoError(t, err)
	_, err = svc.SetDetails(ctx, draft.SessionID, models.CustomerDetails{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "0712345678", Address: "14 Rose Lane, Westlands",
	})
	require.NoError(t, err)
	third, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)
	assert.Equal(t, first.ClientSecret, third.ClientSecret)
	assert.Equal(t, 1, backend.intentCalls)
}

func TestPreparePaymentRequiresConfirmStep(t *testing.T) {
	backend := &fakeBackend{clientSecret: "pi_123_secret_abc"}
	svc, _ := newPaymentWizard(backend, &fakeProcessor{})
	ctx := context.Background()

	draft := startedDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	assert.Error(t, err)
	assert.Zero(t, backend.intentCalls)
}

func TestPayDeclineKeepsConfirmAndSurfacesProcessorMessage(t *testing.T) {
	backend := &fakeBackend{clientSecret: "pi_123_secret_abc"}
	proc := &fakeProcessor{
		results: []*models.PaymentResult{nil},
		errs:    []error{&PaymentError{Code: "card_declined", Message: "Your card was declined."}},
	}
	svc, _ := newPaymentWizard(backend, proc)
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)

	_, err = svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	var perr *PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Your card was declined.", perr.Message)

	current, err := svc.Get(ctx, draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, current.Step)
	assert.False(t, current.IsSuccess)
	assert.Zero(t, backend.bookingCalls)
}

func TestPaySuccessSubmitsBookingWithIntentKey(t *testing.T) {
	backend := &fakeBackend{
		clientSecret: "pi_123_secret_abc",
		booking:      &models.Booking{ID: "bk-77"},
	}
	proc := &fakeProcessor{results: []*models.PaymentResult{{Status: models.PaymentSucceeded}}}
	svc, _ := newPaymentWizard(backend, proc)
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)

	final, err := svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	require.NoError(t, err)
	assert.True(t, final.IsSuccess)
	assert.Equal(t, "bk-77", final.BookingID)
	require.Len(t, backend.bookingKeys, 1)
	assert.Equal(t, "pi_123", backend.bookingKeys[0])

	sub := backend.submissions[0]
	assert.Equal(t, "prov-1", sub.ProviderID)
	assert.Equal(t, "svc-1", sub.ServiceID)
	assert.Equal(t, "Jane Doe", sub.CustomerName)
	assert.Contains(t, sub.Date, "T10:00:00")
}

func TestPayProcessingDoesNotSubmit(t *testing.T) {
	backend := &fakeBackend{clientSecret: "pi_123_secret_abc"}
	proc := &fakeProcessor{results: []*models.PaymentResult{{Status: models.PaymentProcessing}}}
	svc, _ := newPaymentWizard(backend, proc)
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)

	pending, err := svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	require.NoError(t, err)
	assert.False(t, pending.IsSuccess)
	assert.Equal(t, models.PaymentProcessing, pending.PaymentStatus)
	assert.Zero(t, backend.bookingCalls)
}

func TestPayRetriesSubmissionWithoutRecharging(t *testing.T) {
	backend := &fakeBackend{
		clientSecret: "pi_123_secret_abc",
		bookingErr:   &platform.APIError{Status: 503, Message: "backend down"},
	}
	proc := &fakeProcessor{results: []*models.PaymentResult{{Status: models.PaymentSucceeded}}}
	svc, _ := newPaymentWizard(backend, proc)
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)

	_, err = svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "backend down", serr.Message)

	// Charge landed; retry must reach the backend again without a
	// second processor call, under the same idempotency key.
	backend.bookingErr = nil
	backend.booking = &models.Booking{ID: "bk-77"}
	final, err := svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	require.NoError(t, err)
	assert.True(t, final.IsSuccess)
	assert.Equal(t, 1, proc.calls)
	assert.Equal(t, 2, backend.bookingCalls)
	assert.Equal(t, []string{"pi_123", "pi_123"}, backend.bookingKeys)
}

func TestPayOnCompletedDraftIsIdempotent(t *testing.T) {
	backend := &fakeBackend{
		clientSecret: "pi_123_secret_abc",
		booking:      &models.Booking{ID: "bk-77"},
	}
	proc := &fakeProcessor{results: []*models.PaymentResult{{Status: models.PaymentSucceeded}}}
	svc, _ := newPaymentWizard(backend, proc)
	ctx := context.Background()
	draft := confirmReadyDraft(t, svc)
	_, err := svc.PreparePayment(ctx, draft.SessionID, "tok")
	require.NoError(t, err)
	_, err = svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	require.NoError(t, err)

	again, err := svc.Pay(ctx, draft.SessionID, "tok", "pm_card")
	require.NoError(t, err)
	assert.True(t, again.IsSuccess)
	assert.Equal(t, "bk-77", again.BookingID)
	assert.Equal(t, 1, proc.calls)
	assert.Equal(t, 1, backend.bookingCalls)
}

func TestBuildSubmissionCombinesDateAndSlot(t *testing.T) {
	draft := &models.BookingDraft{
		ServiceID:        "svc-1",
		ProviderID:       "prov-1",
		SelectedDate:     "2024-06-01",
		SelectedTimeSlot: "10:00 AM",
		CustomerDetails: &models.CustomerDetails{
			Name:    "Jane Doe",
			Phone:   "9876543210",
			Email:   "jane@x.com",
			Address: "221B Baker Street, London",
		},
	}

	sub, err := buildSubmission(draft)
	require.NoError(t, err)

	want := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.Local).Format(time.RFC3339)
	assert.Equal(t, want, sub.Date)
	assert.Equal(t, "svc-1", sub.ServiceID)
	assert.Equal(t, "prov-1", sub.ProviderID)
	assert.Equal(t, "Jane Doe", sub.CustomerName)
	assert.Equal(t, "jane@x.com", sub.CustomerEmail)
	assert.Equal(t, "9876543210", sub.CustomerPhone)
	assert.Equal(t, "221B Baker Street, London", sub.Address)

	draft.CustomerDetails = nil
	_, err = buildSubmission(draft)
	assert.Error(t, err)
}

func TestIntentIDFromClientSecret(t *testing.T) {
	assert.Equal(t, "pi_3abc", IntentIDFromClientSecret("pi_3abc_secret_xyz"))
	assert.Empty(t, IntentIDFromClientSecret("garbage"))
	assert.Empty(t, IntentIDFromClientSecret(""))
}
