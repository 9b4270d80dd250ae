// cmd/smartfitter-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/michaelddmanuel/SmartFitter-sub000/internal/api/rest/v1"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/bootstrap"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/scheduler"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.store.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	store     *bootstrap.Store
	services  *bootstrap.Services
	verifier  auth.TokenVerifier
	scheduler *scheduler.Scheduler
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	store, err := bootstrap.NewStore(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	services, err := bootstrap.NewServices(context.Background(), cfg, store, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	verifier, err := auth.NewAuth0Verifier(&cfg.Auth, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	jobs := scheduler.NewScheduler(log)
	completion := scheduler.BookingCompletionJob(services.Bookings, log, time.Now)
	if err := jobs.Add(scheduler.BookingCompletionJobName, cfg.Jobs.BookingCompletionSpec, 0, completion); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &appDependencies{
		store:     store,
		services:  services,
		verifier:  verifier,
		scheduler: jobs,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS for the member SPA
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.verifier,
		deps.services.Profiles,
		deps.services.Documents,
		deps.services.Availability,
		deps.services.Bookings,
		log,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	deps.scheduler.Start()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	var runErr error
	select {
	case runErr = <-serverErrors:
	case sig := <-quit:
		log.Info("Initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := deps.scheduler.Stop(ctx); err != nil {
		log.Warn("Scheduler did not stop cleanly", "error", err)
	}
	if runErr != nil {
		return runErr
	}

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
