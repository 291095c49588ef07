package sessionizers

import (
	"context"
	"fmt"
	"maps"

	"session-analytics/internal/models"
	"session-analytics/internal/streams"
)

const (
	streamClientRecords   = "client_records"
	defaultPartitionQueue = 256
)

type parallelSessionBuilder struct {
	workers int
}

// NewParallelSessionBuilder spreads clients over workers partitions. Every client is handled by exactly one
// partition worker and each worker writes only to its own map, so the result equals the sequential builder's.
// workers below 2 yields the sequential builder.
func NewParallelSessionBuilder(workers int) SessionBuilder {
	if workers < 2 {
		return NewSessionBuilder()
	}
	return &parallelSessionBuilder{workers: workers}
}

func (b *parallelSessionBuilder) Build(ctx context.Context, records []*models.LogRecord, period models.SessionPeriod, mode models.SessionMode) (*models.ClientSessionTimeline, error) {
	if err := validateBuildOptions(period, mode); err != nil {
		return nil, err
	}

	// Grouping completes before any worker starts and the groups are never mutated afterwards.
	groups := groupByClient(records)

	queue, err := streams.NewPartitionedQueue[clientRecords](b.workers, defaultPartitionQueue)
	if err != nil {
		return nil, fmt.Errorf("create partitioned queue: %w", err)
	}

	partials := make([]map[string][]*models.Session, queue.PartitionCount())
	for i := range partials {
		partials[i] = make(map[string][]*models.Session)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	consumer := streams.NewPartitionConsumer(streamClientRecords, queue,
		func(_ context.Context, partition int, group clientRecords) error {
			partials[partition][group.clientKey] = sessionizeClient(group.records, period, mode)
			return nil
		})
	producer := streams.NewPartitionProducer(streamClientRecords, queue,
		func(group clientRecords) string { return group.clientKey })

	consumer.Start(ctx)
	produceErr := producer.Produce(ctx, groups...)
	queue.Close()
	if err := consumer.Wait(); err != nil {
		return nil, err
	}
	if produceErr != nil {
		return nil, produceErr
	}

	timeline := models.NewClientSessionTimeline(mode, period)
	for _, partial := range partials {
		maps.Copy(timeline.Sessions, partial)
	}

	observeTimeline(ctx, builderParallel, timeline)
	return timeline, nil
}
