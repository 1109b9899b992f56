package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsJobs(t *testing.T) {
	var calls int32
	done := make(chan string, 1)
	q := NewQueue("test", func(_ context.Context, job Job) error {
		atomic.AddInt32(&calls, 1)
		done <- job.ID
		return nil
	}, QueueConfig{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "j1", Type: "write"}))

	select {
	case id := <-done:
		assert.Equal(t, "j1", id)
	case <-time.After(time.Second):
		t.Fatal("job not processed")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestQueueZeroRetriesRunsOnce(t *testing.T) {
	var calls int32
	q := NewQueue("test", func(context.Context, Job) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("store down")
	}, QueueConfig{Workers: 1, MaxRetries: 0, RetryDelay: time.Millisecond})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "j1"}))
	time.Sleep(50 * time.Millisecond)
	q.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "j1"}))
}

func TestQueueEnqueueFullBuffer(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	q := NewQueue("test", func(context.Context, Job) error {
		started <- struct{}{}
		<-release
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "busy"}))
	<-started
	require.NoError(t, q.Enqueue(Job{ID: "buffered"}))

	err := q.Enqueue(Job{ID: "overflow"})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	q.Stop()
}
