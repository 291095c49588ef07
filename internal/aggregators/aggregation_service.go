package aggregators

import (
	"context"
	"errors"

	"session-analytics/internal/models"
	"session-analytics/internal/sessionizers"
	"session-analytics/internal/shared/geoips"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"

	"github.com/mileusna/useragent"
)

// AggregationOptions tunes one aggregation run.
type AggregationOptions struct {
	Period      models.SessionPeriod
	ExcludeBots bool
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate sessionizes records and fills a report with the four session statistics.
	// A query without qualifying sessions is listed in SessionReport.Unavailable; the call only fails
	// with AGG_2000 when every query is unavailable.
	Aggregate(ctx context.Context, records []*models.LogRecord, opts AggregationOptions) (*models.SessionReport, error)
}

type aggregationService struct {
	sessionBuilder    sessionizers.SessionBuilder
	sessionAggregator SessionAggregator
	geoLookup         *geoips.GeoLookup
}

// NewAggregationService wires the builder and queries. geoLookup may be nil.
func NewAggregationService(sessionBuilder sessionizers.SessionBuilder, sessionAggregator SessionAggregator, geoLookup *geoips.GeoLookup) AggregationService {
	return &aggregationService{
		sessionBuilder:    sessionBuilder,
		sessionAggregator: sessionAggregator,
		geoLookup:         geoLookup,
	}
}

func (s *aggregationService) Aggregate(ctx context.Context, records []*models.LogRecord, opts AggregationOptions) (*models.SessionReport, error) {
	logger := loggers.Ctx(ctx)
	if err := opts.Period.Validate(); err != nil {
		return nil, errInvalidConfiguration(err)
	}

	report := &models.SessionReport{
		SessionPeriodSeconds: opts.Period.Seconds(),
		RecordCount:          len(records),
		Unavailable:          map[string]string{},
	}
	if opts.ExcludeBots {
		records = excludeBots(records)
		report.ExcludedBotRecords = report.RecordCount - len(records)
		metricBotRecordsExcludedTotal.WithLabelValues().Add(float64(report.ExcludedBotRecords))
	}

	raw, err := s.sessionBuilder.Build(ctx, records, opts.Period, models.SessionModeRaw)
	if err != nil {
		return nil, s.buildError(err)
	}
	distinct, err := s.sessionBuilder.Build(ctx, records, opts.Period, models.SessionModeDistinct)
	if err != nil {
		return nil, s.buildError(err)
	}
	report.ClientCount = raw.ClientCount()
	report.SessionCount = raw.SessionCount()

	logger.Debug().
		Int(loggers.FieldRecordCount, len(records)).
		Int(loggers.FieldSessionCount, report.SessionCount).
		Msg("session timelines built")

	queries := []struct {
		name string
		run  func() error
	}{
		{models.QueryAverageHitsPerSession, func() error {
			v, err := s.sessionAggregator.AverageHitsPerSession(raw)
			report.AverageHitsPerSession = valueOrNil(v, err)
			return err
		}},
		{models.QueryAverageSessionDuration, func() error {
			v, err := s.sessionAggregator.AverageSessionDuration(raw)
			report.AverageSessionDurationSeconds = valueOrNil(v, err)
			return err
		}},
		{models.QueryAverageDistinctPerSession, func() error {
			v, err := s.sessionAggregator.AverageDistinctPerSession(distinct)
			report.AverageDistinctPerSession = valueOrNil(v, err)
			return err
		}},
		{models.QueryMostEngagedClients, func() error {
			engaged, err := s.sessionAggregator.MostEngagedClients(raw)
			if err == nil {
				report.MostEngagedClients = s.enrich(engaged, records)
			}
			return err
		}},
	}

	var lastNoData error
	for _, query := range queries {
		err := query.run()
		switch {
		case err == nil:
			metricQueriesTotal.WithLabelValues(query.name, metrics.ValueNoError).Inc()
		case errors.Is(err, ErrNoData):
			lastNoData = err
			report.Unavailable[query.name] = codeNoData
			metricQueriesTotal.WithLabelValues(query.name, codeNoData).Inc()
		default:
			svcErr := errInternalTimelineModeInvalid(err)
			metricQueriesTotal.WithLabelValues(query.name, svcErr.Code).Inc()
			return nil, svcErr
		}
	}

	if len(report.Unavailable) == len(queries) {
		return nil, errNoData(lastNoData)
	}
	if len(report.Unavailable) == 0 {
		report.Unavailable = nil
	}
	return report, nil
}

func (s *aggregationService) buildError(err error) error {
	if errors.Is(err, models.ErrInvalidConfiguration) {
		return errInvalidConfiguration(err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errInternalSessionBuildFailed(err)
}

// enrich adds the user agent family of each client's first record and its GeoIP country.
func (s *aggregationService) enrich(engaged *models.EngagedClients, records []*models.LogRecord) *models.EngagedClients {
	pending := make(map[string]struct{}, len(engaged.Clients))
	for _, client := range engaged.Clients {
		pending[client.ClientKey] = struct{}{}
	}
	families := make(map[string]string, len(engaged.Clients))
	for _, record := range records {
		if len(pending) == 0 {
			break
		}
		if _, ok := pending[record.ClientKey]; ok {
			families[record.ClientKey] = normalizeUserAgent(record.UserAgent())
			delete(pending, record.ClientKey)
		}
	}

	for i := range engaged.Clients {
		client := &engaged.Clients[i]
		client.UserAgentFamily = families[client.ClientKey]
		client.Country = s.geoLookup.Country(client.ClientKey)
	}
	return engaged
}

func excludeBots(records []*models.LogRecord) []*models.LogRecord {
	kept := make([]*models.LogRecord, 0, len(records))
	for _, record := range records {
		if useragent.Parse(record.UserAgent()).Bot {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func valueOrNil(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	return &v
}
