package routes

import (
	"fixify/handlers"
	"fixify/middleware"
	"fixify/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and registration proxies.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/register", hb.Auth.Register)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/categories", hb.Catalog.ListCategories)
		api.GET("/services/:id", hb.Catalog.GetService)
		api.GET("/providers", hb.Catalog.ListProviders)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard engine.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthUserMiddleware())
		wizardGroup.GET("/timeslots", hb.Wizard.ListTimeSlots)
		wizardGroup.POST("/session", hb.Wizard.StartWizard)
		wizardGroup.GET("/session/:sessionID", hb.Wizard.GetWizard)
		wizardGroup.PUT("/session/:sessionID/schedule", hb.Wizard.SetSchedule)
		wizardGroup.PUT("/session/:sessionID/details", hb.Wizard.SetDetails)
		wizardGroup.PUT("/session/:sessionID/step", hb.Wizard.SetStep)
		wizardGroup.POST("/session/:sessionID/payment-intent", hb.Wizard.PreparePayment)
		wizardGroup.POST("/session/:sessionID/pay", hb.Wizard.Pay)
		wizardGroup.POST("/session/:sessionID/reset", hb.Wizard.ResetWizard)
		wizardGroup.DELETE("/session/:sessionID", hb.Wizard.CancelWizard)
	}
}

// RegisterUserRoutes registers the authenticated account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/addresses", hb.User.ListAddresses)
		api.POST("/addresses", hb.User.SaveAddress)
		api.GET("/bookings", hb.User.MyBookings)
		api.GET("/provider-bookings", hb.User.ProviderBookings)
		api.PATCH("/bookings/:id/status", hb.User.UpdateBookingStatus)
	}
}

// RegisterChatRoutes registers the booking chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	chatGroup := r.Group("/api/chat")
	{
		chatGroup.Use(middleware.JWTAuthUserMiddleware())
		chatGroup.POST("/connect", hb.Chat.Connect)
		chatGroup.POST("/disconnect", hb.Chat.Disconnect)
		chatGroup.POST("/rooms/:bookingID/open", hb.Chat.Open)
		chatGroup.POST("/rooms/:bookingID/messages", hb.Chat.Send)
		chatGroup.GET("/rooms/:bookingID/messages", hb.Chat.Messages)
		chatGroup.POST("/rooms/close", hb.Chat.Close)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware())
		adminGroup.GET("/providers", hb.Admin.ListProviders)
		adminGroup.PATCH("/providers/:id/status", hb.Admin.UpdateProviderStatus)
		adminGroup.GET("/applications", hb.Admin.ListApplications)
		adminGroup.PATCH("/applications/:id", hb.Admin.UpdateApplication)
		adminGroup.GET("/dashboard", hb.Admin.Dashboard)
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
