package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventbook/config"
	"eventbook/internal/adapters/auth"
	"eventbook/internal/adapters/email"
	httpdelivery "eventbook/internal/delivery/http"
	"eventbook/internal/delivery/http/controllers"
	"eventbook/internal/delivery/http/middleware"
	"eventbook/internal/repository/mongodb"
	"eventbook/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Eventbook API
// @version 1.0
// @description Event listing and booking backend: events with tag-based similar-event lookup, and spot bookings by email.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	client, err := mongodb.NewClient(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Error("failed to create mongodb client", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureEventIndexes(ctx, client); err != nil {
		logger.Error("failed to ensure event indexes", "err", err)
		cancel()
		os.Exit(1)
	}
	if err := mongodb.EnsureBookingIndexes(ctx, client); err != nil {
		logger.Error("failed to ensure booking indexes", "err", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	eventRepo := mongodb.NewEventRepository(client)
	bookingRepo := mongodb.NewBookingRepository(client)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, tokens, cfg.TokenExpiry)
	eventService := services.NewEventService(eventRepo, logger, serviceTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	bookingController := controllers.NewBookingController(logger, bookingService)
	authController := controllers.NewAuthController(logger, authService)

	mux := httpdelivery.NewRouter(eventController, bookingController, authController, tokens)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongodb disconnect failed", "err", err)
	}
}
