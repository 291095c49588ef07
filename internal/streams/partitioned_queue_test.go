package streams

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartitionedQueue_InvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := NewPartitionedQueue[int](0, 1)
	assert.Error(t, err)

	_, err = NewPartitionedQueue[int](1, -1)
	assert.Error(t, err)
}

func TestNewPartitionedQueue_Capacity(t *testing.T) {
	t.Parallel()

	queue, err := NewPartitionedQueue[string](3, 16)
	require.NoError(t, err)
	assert.Equal(t, 3, queue.PartitionCount())
	assert.Equal(t, 16, cap(queue.partitions[0]))
}

func TestPartitionIndex_StableAndInRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("10.0.0.%d:443", i)
		idx := partitionIndex(key, 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
		assert.Equal(t, idx, partitionIndex(key, 7))
	}
}

func TestPartitionedQueue_Publish_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue, err := NewPartitionedQueue[int](4, 16)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "client-a", i))
	}
	queue.Close()

	idx := partitionIndex("client-a", 4)
	var got []int
	for msg := range queue.Partition(idx) {
		got = append(got, msg)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestPartitionedQueue_Publish_CancelledWhenFull(t *testing.T) {
	t.Parallel()

	queue, err := NewPartitionedQueue[int](1, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = queue.Publish(ctx, "k", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
