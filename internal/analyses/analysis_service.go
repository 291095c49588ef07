package analyses

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"session-analytics/internal/aggregators"
	"session-analytics/internal/ingestors"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"
	"session-analytics/internal/shared/svcerrors"
	"session-analytics/internal/shared/ulid"
	"session-analytics/internal/shared/validators"
	"session-analytics/internal/stores"
)

const (
	sourceFile   = "file"
	sourceUpload = "upload"
)

// AnalysisOptions configures one analysis run.
type AnalysisOptions struct {
	SessionPeriodSeconds float64 `validate:"gt=0"`
	ExcludeBots          bool
}

type uploadRequest struct {
	IdempotencyKey string `validate:"omitempty,max=128,printascii,excludesall=/\\"`
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// AnalyzeFile reads a plain or gzipped access log from disk and reports its session statistics.
	AnalyzeFile(ctx context.Context, path string, opts AnalysisOptions) (*models.SessionReport, error)
	// AnalyzeUpload stages r under idempotencyKey (a ULID when empty) and analyzes it. A key can only be
	// analyzed once; a failed run releases its key.
	AnalyzeUpload(ctx context.Context, idempotencyKey string, r io.Reader, opts AnalysisOptions) (*models.SessionReport, error)
}

type analysisService struct {
	ingestionService   ingestors.IngestionService
	aggregationService aggregators.AggregationService
	logUploadStore     stores.LogUploadStore
	validate           *validators.Validate
	now                func() time.Time
}

func NewAnalysisService(ingestionService ingestors.IngestionService, aggregationService aggregators.AggregationService, logUploadStore stores.LogUploadStore) AnalysisService {
	return &analysisService{
		ingestionService:   ingestionService,
		aggregationService: aggregationService,
		logUploadStore:     logUploadStore,
		validate:           validators.New(),
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (s *analysisService) AnalyzeFile(ctx context.Context, path string, opts AnalysisOptions) (*models.SessionReport, error) {
	run := s.startRun(ctx, sourceFile)
	ctx = run.ctx

	period, err := s.validateOptions(opts)
	if err != nil {
		return nil, run.finish(nil, err)
	}

	loggers.Ctx(ctx).Debug().Str("path", path).Msg("started analyzing log file")
	ingested, err := s.ingestionService.IngestFile(ctx, path)
	if err != nil {
		return nil, run.finish(nil, err)
	}

	report, err := s.aggregate(ctx, ingested, period, opts)
	return report, run.finish(report, err)
}

func (s *analysisService) AnalyzeUpload(ctx context.Context, idempotencyKey string, r io.Reader, opts AnalysisOptions) (*models.SessionReport, error) {
	run := s.startRun(ctx, sourceUpload)
	ctx = run.ctx

	period, err := s.validateOptions(opts)
	if err != nil {
		return nil, run.finish(nil, err)
	}
	key := strings.TrimSpace(idempotencyKey)
	if err := s.validate.Struct(uploadRequest{IdempotencyKey: key}); err != nil {
		return nil, run.finish(nil, errInvalidConfiguration(validationMessage(err), err))
	}
	if key == "" {
		key = run.id
	}
	if r == nil {
		return nil, run.finish(nil, errEmptyUpload())
	}

	upload, err := s.logUploadStore.Put(ctx, key, r)
	if err != nil {
		if errors.Is(err, stores.ErrLogUploadAlreadyExist) {
			return nil, run.finish(nil, errUploadAlreadyAnalyzed(err))
		}
		return nil, run.finish(nil, errInternalLogUploadStoreFailed(err))
	}
	loggers.Ctx(ctx).Debug().
		Str("upload_key", upload.Key).
		Int64("size", upload.Size).
		Msg("log upload staged")

	report, err := s.analyzeUpload(ctx, upload, period, opts)
	if err != nil {
		s.releaseUpload(ctx, upload.Key)
	}
	return report, run.finish(report, err)
}

func (s *analysisService) analyzeUpload(ctx context.Context, upload *stores.LogUpload, period models.SessionPeriod, opts AnalysisOptions) (*models.SessionReport, error) {
	if upload.Size == 0 {
		return nil, errEmptyUpload()
	}

	rc, err := s.logUploadStore.Get(ctx, upload.Key)
	if err != nil {
		return nil, errInternalLogUploadStoreFailed(err)
	}
	defer rc.Close()

	ingested, err := s.ingestionService.Ingest(ctx, rc)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, ingested, period, opts)
}

func (s *analysisService) aggregate(ctx context.Context, ingested *ingestors.IngestResult, period models.SessionPeriod, opts AnalysisOptions) (*models.SessionReport, error) {
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldRecordCount, len(ingested.Records)).
		Int("recovered_lines", ingested.RecoveredLines).
		Msg("log ingested")

	return s.aggregationService.Aggregate(ctx, ingested.Records, aggregators.AggregationOptions{
		Period:      period,
		ExcludeBots: opts.ExcludeBots,
	})
}

// releaseUpload frees the idempotency key of a failed run so the client may retry.
func (s *analysisService) releaseUpload(ctx context.Context, key string) {
	if err := s.logUploadStore.Delete(ctx, key); err != nil && !errors.Is(err, stores.ErrLogUploadNotFound) {
		loggers.Ctx(ctx).Warn().Err(err).Str("upload_key", key).Msg("failed to release log upload")
	}
}

func (s *analysisService) validateOptions(opts AnalysisOptions) (models.SessionPeriod, error) {
	if err := s.validate.Struct(opts); err != nil {
		return 0, errInvalidConfiguration(validationMessage(err), errors.Join(models.ErrInvalidConfiguration, err))
	}
	period, err := models.NewSessionPeriod(opts.SessionPeriodSeconds)
	if err != nil {
		return 0, errInvalidConfiguration("session period must be a positive number of seconds", err)
	}
	return period, nil
}

// analysisRun carries the identity, scoped logger and timing of one run.
type analysisRun struct {
	ctx       context.Context
	id        string
	source    string
	startedAt time.Time
}

func (s *analysisService) startRun(ctx context.Context, source string) *analysisRun {
	startedAt := s.now()
	id := ulid.NewULIDAt(startedAt)
	ctx = loggers.Ctx(ctx).With().
		Str(loggers.FieldComponent, "analysis").
		Str(loggers.FieldAnalysisID, id).
		Logger().WithContext(ctx)
	return &analysisRun{ctx: ctx, id: id, source: source, startedAt: startedAt}
}

// finish stamps the report, records metrics and normalizes err to a ServiceError where possible.
func (r *analysisRun) finish(report *models.SessionReport, err error) error {
	logger := loggers.Ctx(r.ctx)
	elapsed := time.Since(r.startedAt)
	metricAnalysisDurationSeconds.WithLabelValues(r.source).Observe(elapsed.Seconds())

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			metricAnalysesCompletedTotal.WithLabelValues(r.source, "canceled").Inc()
			logger.Info().Err(err).Msg("analysis canceled")
			return err
		}
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricAnalysesCompletedTotal.WithLabelValues(r.source, svcErr.Code).Inc()
		logger.Info().
			Str(loggers.FieldErrorCode, svcErr.Code).
			Dur(loggers.FieldDuration, elapsed).
			Msg("analysis failed")
		return svcErr
	}

	report.AnalysisID = r.id
	report.StartedAt = r.startedAt
	metricAnalysesCompletedTotal.WithLabelValues(r.source, metrics.ValueNoError).Inc()
	logger.Info().
		Int(loggers.FieldRecordCount, report.RecordCount).
		Int(loggers.FieldSessionCount, report.SessionCount).
		Float64(loggers.FieldSessionPeriod, report.SessionPeriodSeconds).
		Dur(loggers.FieldDuration, elapsed).
		Msg("analysis completed")
	return nil
}

func validationMessage(err error) string {
	messages := validators.Messages(err, validators.FieldError.Field)
	if messages == nil {
		return err.Error()
	}
	return "validation failed: " + strings.Join(messages, ", ")
}
