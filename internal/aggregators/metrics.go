package aggregators

import (
	"session-analytics/internal/shared/metrics"
)

// metricQueriesTotal counts session queries by outcome.
//
// error_code is empty on success and AGG_2000 when the query had no qualifying session.
var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "queries_total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)

	metricBotRecordsExcludedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "bot_records_excluded_total",
		},
		[]string{},
	)
)
