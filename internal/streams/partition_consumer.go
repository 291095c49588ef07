package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"
	"session-analytics/internal/shared/svcerrors"
)

// PartitionHandler processes one message taken from the given partition.
type PartitionHandler[T any] func(ctx context.Context, partition int, msg T) error

// PartitionConsumer runs one worker goroutine per partition of a queue.
// Each partition is a single-writer lane, so a handler may keep per-partition state without locking.
type PartitionConsumer[T any] struct {
	streamID string
	queue    *PartitionedQueue[T]
	handler  PartitionHandler[T]

	wg sync.WaitGroup

	errOnce sync.Once
	err     error
}

func NewPartitionConsumer[T any](streamID string, queue *PartitionedQueue[T], handler PartitionHandler[T]) *PartitionConsumer[T] {
	return &PartitionConsumer[T]{
		streamID: streamID,
		queue:    queue,
		handler:  handler,
	}
}

// Start spawns 1 worker goroutine per partition.
// Workers drain their partition until it is closed or ctx is done.
func (consumer *PartitionConsumer[T]) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Wait blocks until every worker has stopped and returns the first handler error, if any.
// A panicking handler is reported as an internal ServiceError.
func (consumer *PartitionConsumer[T]) Wait() error {
	consumer.wg.Wait()
	return consumer.err
}

func (consumer *PartitionConsumer[T]) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan T) {
	ctx = loggers.Ctx(ctx).With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger().WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			consumer.fail(ctx.Err())
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := consumer.handle(ctx, partitionIndex, msg); err != nil {
				consumer.fail(err)
			}
		}
	}
}

func (consumer *PartitionConsumer[T]) handle(ctx context.Context, partitionIndex int, msg T) (err error) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if e, ok := r.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricMessagesConsumedTotal.WithLabelValues(consumer.streamID, svcErr.Code).Inc()
			err = svcErr
		}
	}()

	if err := consumer.handler(ctx, partitionIndex, msg); err != nil {
		code := svcerrors.NewInternalErrorUndefined(err).Code
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			code = svcErr.Code
		}
		metricMessagesConsumedTotal.WithLabelValues(consumer.streamID, code).Inc()
		return err
	}
	metricMessagesConsumedTotal.WithLabelValues(consumer.streamID, metrics.ValueNoError).Inc()
	return nil
}

func (consumer *PartitionConsumer[T]) fail(err error) {
	consumer.errOnce.Do(func() { consumer.err = err })
}
