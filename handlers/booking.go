package handlers

import (
	"errors"
	"net/http"

	"fixify/models"
	"fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	Svc    booking.WizardService
	Logger *zap.Logger
}

// NewWizardHandler creates the wizard handler.
func NewWizardHandler(svc booking.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// StartWizard opens a new wizard session for the selected service and
// provider.
func (h *WizardHandler) StartWizard(c *gin.Context) {
	var sel booking.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.Start(c.Request.Context(), c.GetString("userID"), sel)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetWizard returns the current draft.
func (h *WizardHandler) GetWizard(c *gin.Context) {
	draft, ok := h.ownedDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetSchedule records date and time slot and advances to Details.
func (h *WizardHandler) SetSchedule(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	var input struct {
		Date     string `json:"date"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.SetSchedule(c.Request.Context(), c.Param("sessionID"), input.Date, input.TimeSlot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetDetails validates and commits customer details, advancing to
// Confirm.
func (h *WizardHandler) SetDetails(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	var details models.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.SetDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetStep navigates back to an earlier step.
func (h *WizardHandler) SetStep(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	var input struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.GoToStep(c.Request.Context(), c.Param("sessionID"), input.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// PreparePayment makes sure the session holds a payment handle and
// returns it for the payment form.
func (h *WizardHandler) PreparePayment(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	draft, err := h.Svc.PreparePayment(c.Request.Context(), c.Param("sessionID"), c.GetString("token"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientSecret": draft.ClientSecret,
		"draft":        draft,
	})
}

// Pay confirms the payment and, on success, submits the booking.
func (h *WizardHandler) Pay(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	var input struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.Pay(c.Request.Context(), c.Param("sessionID"), c.GetString("token"), input.PaymentMethodID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !draft.IsSuccess && draft.PaymentStatus == models.PaymentProcessing {
		c.JSON(http.StatusAccepted, gin.H{"draft": draft, "message": "Payment processing..."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ResetWizard restores the draft to its initial values.
func (h *WizardHandler) ResetWizard(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	draft, err := h.Svc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// CancelWizard discards the session.
func (h *WizardHandler) CancelWizard(c *gin.Context) {
	if _, ok := h.ownedDraft(c); !ok {
		return
	}
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListTimeSlots returns the fixed slot set offered on the Schedule step.
func (h *WizardHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": booking.TimeSlots})
}

// ownedDraft loads the session draft and rejects access by anyone but
// the user who started it.
func (h *WizardHandler) ownedDraft(c *gin.Context) (*models.BookingDraft, bool) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "sessionID is required", "")
		return nil, false
	}
	draft, err := h.Svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	if draft.UserID != c.GetString("userID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking draft not found or expired"})
		return nil, false
	}
	return draft, true
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}
	var perr *booking.PaymentError
	if errors.As(err, &perr) {
		// The processor's message goes to the user verbatim.
		c.JSON(http.StatusPaymentRequired, gin.H{"error": perr.Message, "code": perr.Code})
		return
	}
	var serr *booking.SubmissionError
	if errors.As(err, &serr) {
		c.JSON(http.StatusConflict, gin.H{"error": serr.Message})
		return
	}
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrDraftComplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
