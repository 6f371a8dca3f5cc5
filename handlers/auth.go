package handlers

import (
	"context"
	"net/http"

	"fixify/models"
	"fixify/platform"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler relays login and registration to the backend and primes
// the gateway auth cache with the issued token.
type AuthHandler struct {
	Backend platform.API
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(backend platform.API) *AuthHandler {
	return &AuthHandler{Backend: backend}
}

// Login exchanges credentials for {access_token, user}.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Backend.Login(c.Request.Context(), creds)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	primeAuthCache(resp)
	c.JSON(http.StatusOK, resp)
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Backend.Register(c.Request.Context(), reg)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	primeAuthCache(resp)
	c.JSON(http.StatusCreated, resp)
}

func primeAuthCache(resp *models.AuthResponse) {
	if resp.AccessToken == "" || resp.User.ID == "" {
		return
	}
	key := utils.AuthCachePrefix + resp.User.ID
	hash := utils.HashToken(resp.AccessToken)
	_ = utils.GetAuthCacheClient().Set(context.Background(), key, hash, utils.AuthCacheTTL).Err()
}
