package streams

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// PartitionedQueue routes messages to a fixed set of buffered channels by partition key.
// Messages with the same key always land on the same partition.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

func NewPartitionedQueue[T any](numPartitions, buffer int) (*PartitionedQueue[T], error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("partition count must be at least 1, got %d", numPartitions)
	}
	if buffer < 0 {
		return nil, fmt.Errorf("partition buffer must not be negative, got %d", buffer)
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}, nil
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition returns the receive side of partition i.
func (queue *PartitionedQueue[T]) Partition(i int) <-chan T {
	return queue.partitions[i]
}

// Publish blocks until msg is accepted by its partition or ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes every partition. Consumers drain what is buffered and then stop.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
