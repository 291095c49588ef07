package ingestors

import (
	"session-analytics/internal/shared/metrics"
)

var (
	// metricLinesDecodedTotal counts decoded lines by the tokenizer path that split them.
	// Failed lines carry path="none" and the error code.
	metricLinesDecodedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_decoded_total",
		},
		[]string{"path", metrics.FieldErrorCode},
	)
)
