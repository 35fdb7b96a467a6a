package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "booking-admin-console/internal/api/http"
	"booking-admin-console/internal/config"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/notification"
	"booking-admin-console/internal/repository/postgres"
	"booking-admin-console/internal/security"
	"booking-admin-console/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	validateMobile := flag.Bool("validate-mobile", false, "Reject SMS recipients that are not valid Indian mobile numbers")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Booking Admin Console...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Notification configuration", "sms_provider", cfg.Notification.SMS.Provider, "email_provider", cfg.Notification.Email.Provider)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Notification Dispatcher (provider fixed for the process lifetime)
	var opts []notification.Option
	if *validateMobile {
		opts = append(opts, notification.WithMobileValidation())
	}
	dispatcher, err := notification.NewDispatcherFromConfig(cfg, opts...)
	if err != nil {
		logger.Error("Failed to initialize notification providers", "error", err)
		log.Fatalf("Failed to initialize notification providers: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Services
	services := httpapi.Services{
		AdminCodes: service.NewAdminCodeService(
			store.AdminCodeRequestRepository,
			store.AdminCodeRepository,
			dispatcher,
			cfg.App.SystemName,
		),
		Users:    service.NewUserService(store.UserRepository),
		Bookings: service.NewBookingService(store.BookingRepository, store.UserRepository),
	}

	router := httpapi.NewRouter(services, tokenManager, db.PingContext)
	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
