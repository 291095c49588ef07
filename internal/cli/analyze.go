package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"session-analytics/internal/analyses"
	"session-analytics/internal/app"
	"session-analytics/internal/shared/loggers"
)

// Execute implements the go-flags Commander interface for AnalyzeCommand.
func (c *AnalyzeCommand) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.execute(ctx)
}

func (c *AnalyzeCommand) execute(ctx context.Context) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	if c.Workers >= 0 {
		cfg.Session.Workers = c.Workers
	}
	if c.GeoIPDatabase != "" {
		cfg.GeoIP.DatabasePath = c.GeoIPDatabase
	}

	// logs go to stderr so stdout carries only the report
	logger, err := loggers.NewWithWriter(cfg.Log.Level, writerOr(c.stderr, os.Stderr))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx = logger.With().
		Str(loggers.FieldApp, "sessionize").
		Logger().WithContext(ctx)

	services, err := app.NewServices(cfg)
	if err != nil {
		return err
	}
	defer services.Close()

	opts := analyses.AnalysisOptions{
		SessionPeriodSeconds: float64(cfg.Session.PeriodSeconds),
		ExcludeBots:          cfg.Session.ExcludeBots || c.ExcludeBots,
	}
	if c.SessionPeriod != 0 {
		opts.SessionPeriodSeconds = c.SessionPeriod
	}

	report, err := services.AnalysisService.AnalyzeFile(ctx, c.File, opts)
	if err != nil {
		return err
	}

	return writeReport(writerOr(c.stdout, os.Stdout), report, c.Format)
}
