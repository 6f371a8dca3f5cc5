package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/platform"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated user's address book and booking
// lists.
type UserHandler struct {
	Backend platform.API
}

// NewUserHandler creates the user handler.
func NewUserHandler(backend platform.API) *UserHandler {
	return &UserHandler{Backend: backend}
}

// ListAddresses returns the user's saved addresses for the Details
// step pre-fill.
func (h *UserHandler) ListAddresses(c *gin.Context) {
	addrs, err := h.Backend.Addresses(c.Request.Context(), c.GetString("token"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, addrs)
}

// SaveAddress stores a new address book entry.
func (h *UserHandler) SaveAddress(c *gin.Context) {
	var addr models.SavedAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Backend.SaveAddress(c.Request.Context(), c.GetString("token"), addr)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// MyBookings lists the authenticated customer's bookings.
func (h *UserHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Backend.CustomerBookings(c.Request.Context(), c.GetString("token"), c.GetString("userID"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProviderBookings lists jobs assigned to a provider.
func (h *UserHandler) ProviderBookings(c *gin.Context) {
	bookings, err := h.Backend.ProviderBookings(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus moves a booking through its lifecycle (accept,
// reject, complete and so on).
func (h *UserHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Backend.UpdateBookingStatus(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
