package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/catalog"
	"pulse-meals/internal/config"
	"pulse-meals/internal/database"
	"pulse-meals/internal/handler"
	"pulse-meals/internal/notify"
	"pulse-meals/internal/repository"
	"pulse-meals/internal/router"
	"pulse-meals/internal/service"
	"pulse-meals/internal/subscription"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting pulse-meals API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize catalogue (static built-in, local file, or S3)
	cat := loadCatalog(ctx, cfg.Catalog, logger)

	// Initialize order-created notification publisher
	var publisher notify.Publisher
	if cfg.Broker.URL != "" {
		publisher, err = notify.NewRabbitPublisher(cfg.Broker.URL, cfg.Broker.Queue, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect notification broker, order notifications disabled")
			publisher = notify.NewNopPublisher()
		}
	} else {
		publisher = notify.NewNopPublisher()
		logger.Info().Msg("no broker configured, order notifications disabled")
	}
	defer publisher.Close()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize domain components
	carts := cart.NewStore(logger)
	configurator := subscription.NewConfigurator(cat, logger)
	orderService := service.NewOrderService(orderRepo, publisher, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(cat, logger)
	cartHandler := handler.NewCartHandler(carts, cat, logger)
	subscriptionHandler := handler.NewSubscriptionHandler(configurator, carts, logger)
	orderHandler := handler.NewOrderHandler(orderService, carts, logger)
	adminHandler := handler.NewAdminHandler(orderService, logger)

	// Initialize router
	mux := router.New(menuHandler, cartHandler, subscriptionHandler, orderHandler, adminHandler, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog resolves the configured catalogue source, falling back to
// the built-in tables when an external source cannot be loaded.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) catalog.Catalog {
	switch cfg.Source {
	case config.CatalogSourceFile:
		loader := catalog.NewFileLoader(logger)
		cat, err := loader.Load(ctx, cfg.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to load catalogue file, using built-in catalogue")
			return catalog.NewStatic()
		}
		return cat

	case config.CatalogSourceS3:
		loader, err := catalog.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 catalogue loader, using built-in catalogue")
			return catalog.NewStatic()
		}
		cat, err := loader.Load(ctx, cfg.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to load catalogue from S3, using built-in catalogue")
			return catalog.NewStatic()
		}
		return cat

	default:
		logger.Info().Msg("using built-in catalogue")
		return catalog.NewStatic()
	}
}
