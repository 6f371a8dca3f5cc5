package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/platform"

	"github.com/gin-gonic/gin"
)

// AdminHandler proxies moderation surfaces. The screens themselves
// live in the web client; the gateway only relays.
type AdminHandler struct {
	Backend platform.API
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(backend platform.API) *AdminHandler {
	return &AdminHandler{Backend: backend}
}

// ListProviders lists all providers regardless of moderation state.
func (h *AdminHandler) ListProviders(c *gin.Context) {
	providers, err := h.Backend.AdminProviders(c.Request.Context(), c.GetString("token"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// UpdateProviderStatus approves, rejects or deactivates a provider.
func (h *AdminHandler) UpdateProviderStatus(c *gin.Context) {
	var input struct {
		Status models.ProviderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	provider, err := h.Backend.UpdateProviderStatus(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// ListApplications lists pending provider applications.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.Backend.Applications(c.Request.Context(), c.GetString("token"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplication resolves a provider application.
func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	var input struct {
		Status models.ProviderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	app, err := h.Backend.UpdateApplication(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Dashboard returns aggregate counters for the admin landing page.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Backend.Dashboard(c.Request.Context(), c.GetString("token"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListBookings lists every booking on the platform.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Backend.AdminBookings(c.Request.Context(), c.GetString("token"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
