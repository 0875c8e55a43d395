package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/subplane/subplane-api/internal/config"
	"github.com/subplane/subplane-api/internal/payment"
	"github.com/subplane/subplane-api/internal/platform/postgres"
	"github.com/subplane/subplane-api/internal/platform/razorpay"
	"github.com/subplane/subplane-api/internal/service"
	"github.com/subplane/subplane-api/internal/service/auth"
	"github.com/subplane/subplane-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore

	// Payment provider
	provisioner          payment.CustomerProvisioner
	subscriptionProvider payment.SubscriptionProvider

	// Service interfaces
	jwtService          auth.JWTService
	identityService     service.IdentityService
	subscriptionService service.SubscriptionService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password hashing
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewUserStore(db)

	// Initialize the payment provider client
	providerClient, err := razorpay.NewClient(razorpay.Config{
		KeyID:          cfg.Payment.KeyID,
		KeySecret:      cfg.Payment.KeySecret,
		PlanID:         cfg.Payment.PlanID,
		TotalCount:     cfg.Payment.TotalCount,
		StartDelay:     time.Duration(cfg.Payment.StartDelaySeconds) * time.Second,
		RequestTimeout: time.Duration(cfg.Payment.RequestTimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider client: %w", err)
	}
	app.provisioner = providerClient
	app.subscriptionProvider = providerClient
	logger.Info("payment provider client initialized", "plan_id", cfg.Payment.PlanID)

	// Initialize services
	app.identityService = service.NewIdentityService(
		app.userStore,
		app.provisioner,
		hasher,
		verifier,
		app.jwtService,
		logger,
	)
	app.subscriptionService = service.NewSubscriptionService(app.subscriptionProvider, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
