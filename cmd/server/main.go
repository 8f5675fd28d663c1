package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"emissions-platform/internal/catalog"
	"emissions-platform/internal/config"
	"emissions-platform/internal/handlers"
	"emissions-platform/internal/repository"
	"emissions-platform/internal/services"
	"emissions-platform/pkg/database"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := logging.InfoLevel
	if cfg.Logging.Level == "debug" {
		logLevel = logging.DebugLevel
	}

	logger := logging.NewStructuredLogger("emissions-api", "1.0.0", logLevel)

	ctx := context.Background()
	logger.Info(ctx, "[STARTUP] Starting emissions platform API server", logging.Fields{
		"version":        "1.0.0",
		"server_host":    cfg.Server.Host,
		"server_port":    cfg.Server.Port,
		"catalog_source": cfg.Catalog.Source,
	})

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector("emissions_platform")

	// Build the industry catalog. The embedded reference table is the
	// default; a Postgres-backed table can be selected for deployments that
	// manage reference data centrally.
	industryCatalog, closeDB, err := buildCatalog(ctx, cfg, logger, metricsCollector)
	if err != nil {
		logger.Fatal(ctx, "[STARTUP_ERROR] Failed to build industry catalog", logging.Fields{
			"catalog_source": cfg.Catalog.Source,
		}, err)
	}
	defer closeDB()

	// Initialize services
	catalogService := services.NewCatalogService(industryCatalog, logger, metricsCollector)
	scenarioService := services.NewScenarioService(catalogService, logger, metricsCollector)

	// Initialize handlers
	scenarioHandler := handlers.NewScenarioHandler(catalogService, scenarioService, logger, metricsCollector)

	// Setup router
	router := mux.NewRouter()

	// Register routes
	scenarioHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info(ctx, "[SERVER_START] HTTP server listening", logging.Fields{
			"address":    server.Addr,
			"industries": industryCatalog.Len(),
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "[SERVER_ERROR] Server failed", logging.Fields{}, err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "[SHUTDOWN] Shutting down server...", logging.Fields{})

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "[SHUTDOWN_ERROR] Server forced to shutdown", logging.Fields{}, err)
	}

	logger.Info(ctx, "[SHUTDOWN_COMPLETE] Server stopped", logging.Fields{})
}

// buildCatalog constructs the industry catalog from the configured source.
// The returned cleanup closes the database connection when one was opened.
func buildCatalog(ctx context.Context, cfg *config.Config, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) (*catalog.Catalog, func(), error) {
	if cfg.Catalog.Source == config.CatalogSourceEmbedded {
		return catalog.New(), func() {}, nil
	}

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}

	db, err := database.NewPostgresDB(dbConfig, logger, metricsCollector)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to reference database: %w", err)
	}

	profileRepo := repository.NewProfileRepository(db, logger, metricsCollector)
	profiles, err := profileRepo.ListProfiles(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load reference profiles: %w", err)
	}
	if len(profiles) == 0 {
		db.Close()
		return nil, nil, fmt.Errorf("reference table is empty; run cmd/migrate to seed it")
	}

	c, err := catalog.NewFromProfiles(profiles)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("reference table holds invalid profiles: %w", err)
	}

	return c, func() { db.Close() }, nil
}
