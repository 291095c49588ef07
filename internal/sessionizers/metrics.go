package sessionizers

import (
	"session-analytics/internal/shared/metrics"
)

var (
	metricSessionsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSessionizer,
			Name:      "sessions_built_total",
		},
		[]string{"builder", "mode"},
	)
)
