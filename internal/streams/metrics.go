package streams

import (
	"session-analytics/internal/shared/metrics"
)

var (
	metricMessagesProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "messages_published_total",
		},
		[]string{"stream_id"},
	)

	metricMessagesConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "messages_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
