package handlers

import (
	"errors"
	"net/http"

	"fixify/platform"

	"github.com/gin-gonic/gin"
)

// CatalogHandler proxies catalog reads so the web client talks to a
// single origin.
type CatalogHandler struct {
	Backend platform.API
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(backend platform.API) *CatalogHandler {
	return &CatalogHandler{Backend: backend}
}

// ListServices returns the full service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Backend.Services(c.Request.Context())
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListCategories returns catalog categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Backend.ServiceCategories(c.Request.Context())
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetService returns one catalog entry.
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.Backend.ServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// ListProviders returns approved provider profiles.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	providers, err := h.Backend.Providers(c.Request.Context())
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// respondBackendError maps a platform error onto the response,
// preserving the backend's status and message where known.
func respondBackendError(c *gin.Context, err error) {
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "platform backend unavailable"})
}
