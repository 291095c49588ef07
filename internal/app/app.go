package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"session-analytics/internal/aggregators"
	"session-analytics/internal/analyses"
	internalhttp "session-analytics/internal/http"
	"session-analytics/internal/ingestors"
	"session-analytics/internal/sessionizers"
	"session-analytics/internal/shared/configs"
	"session-analytics/internal/shared/filestorages"
	"session-analytics/internal/shared/geoips"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/stores"
)

const shutdownTimeout = 10 * time.Second

// Services holds the wired analysis pipeline shared by the HTTP server and the CLI.
type Services struct {
	AnalysisService analyses.AnalysisService
	geoLookup       *geoips.GeoLookup
}

// NewServices wires ingestion, sessionization and aggregation behind one AnalysisService.
func NewServices(config *configs.Config) (*Services, error) {
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	geoLookup, err := geoips.Open(config.GeoIP.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}

	ingestionService := ingestors.NewELBIngestionService()

	sessionBuilder := sessionizers.NewParallelSessionBuilder(config.Session.Workers)
	sessionAggregator := aggregators.NewSessionAggregator()
	aggregationService := aggregators.NewAggregationService(sessionBuilder, sessionAggregator, geoLookup)

	logUploadStore := stores.NewLogUploadStore(fileStorage)
	analysisService := analyses.NewAnalysisService(ingestionService, aggregationService, logUploadStore)

	return &Services{
		AnalysisService: analysisService,
		geoLookup:       geoLookup,
	}, nil
}

// Close releases resources held by the services.
func (s *Services) Close() error {
	return s.geoLookup.Close()
}

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	services  *Services
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "session-analytics").
		Logger()

	services, err := NewServices(config)
	if err != nil {
		return nil, err
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(services.AnalysisService, internalhttp.AnalysisDefaults{
		SessionPeriodSeconds: float64(config.Session.PeriodSeconds),
		ExcludeBots:          config.Session.ExcludeBots,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		services:  services,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting session-analytics service on port %d (log_level=%s, session_period=%ds, workers=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Session.PeriodSeconds,
			app.config.Session.Workers)

	return app.server.ListenAndServe()
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Start()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		_ = app.services.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	if err := app.services.Close(); err != nil {
		return fmt.Errorf("closing services failed: %w", err)
	}
	return nil
}
