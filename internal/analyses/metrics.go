package analyses

import (
	"session-analytics/internal/shared/metrics"
)

var (
	metricAnalysesCompletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "completed_total",
		},
		[]string{"source", metrics.FieldErrorCode},
	)

	metricAnalysisDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "duration_seconds",
			Buckets:   metrics.AnalysisBuckets,
		},
		[]string{"source"},
	)
)
