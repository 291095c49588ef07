package streams

import (
	"context"
)

// PartitionProducer publishes messages to a partitioned queue keyed by partitionKey.
//
// All messages that share a key are routed to the same partition. Since the consumer runs a single
// worker per partition, messages for one key are handled sequentially and in publish order while
// distinct keys are spread over all workers.
type PartitionProducer[T any] struct {
	streamID     string
	queue        *PartitionedQueue[T]
	partitionKey func(T) string
}

func NewPartitionProducer[T any](streamID string, queue *PartitionedQueue[T], partitionKey func(T) string) *PartitionProducer[T] {
	return &PartitionProducer[T]{
		streamID:     streamID,
		queue:        queue,
		partitionKey: partitionKey,
	}
}

// Produce publishes msgs in order. It stops at the first message that cannot be published.
func (producer *PartitionProducer[T]) Produce(ctx context.Context, msgs ...T) error {
	for _, msg := range msgs {
		if err := producer.queue.Publish(ctx, producer.partitionKey(msg), msg); err != nil {
			return err
		}
		metricMessagesProducedTotal.WithLabelValues(producer.streamID).Inc()
	}
	return nil
}
