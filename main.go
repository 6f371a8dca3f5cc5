// File: fixify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/handlers"
	"fixify/middleware"
	"fixify/platform"
	"fixify/routes"
	"fixify/services/booking"
	"fixify/services/chat"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Platform backend client.
	backend := platform.NewClient(config.AppConfig.PlatformAPIURL, logger)

	// services.
	draftStore := booking.NewRedisDraftStore(utils.GetSessionCacheClient())
	wizardService := &booking.DefaultWizardService{
		Drafts:   draftStore,
		Backend:  backend,
		Payments: booking.NewStripeProcessor(logger),
		Logger:   logger,
	}

	chatManager := chat.NewManager(backend, config.AppConfig.SocketURL, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(backend),
		Catalog: handlers.NewCatalogHandler(backend),
		Wizard:  handlers.NewWizardHandler(wizardService, logger),
		User:    handlers.NewUserHandler(backend),
		Chat:    handlers.NewChatHandler(chatManager, logger),
		Admin:   handlers.NewAdminHandler(backend),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetAuthCacheClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	chatManager.Shutdown()

	logger.Sugar().Info("main: server stopped gracefully")
}
