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

func TestExecutor_RunsSubmittedWork(t *testing.T) {
	t.Parallel()

	e := NewExecutor("test", 4)

	var ran atomic.Int64
	for i := 0; i < 10; i++ {
		e.Submit(context.Background(), "", func(_ context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	e.Wait()
	assert.Equal(t, int64(10), ran.Load())
	assert.Equal(t, int64(0), e.Count(), "count drains to zero after completion")
}

func TestExecutor_CountsFromSubmission(t *testing.T) {
	t.Parallel()

	e := NewExecutor("test", 1)

	release := make(chan struct{})
	started := make(chan struct{})

	e.Submit(context.Background(), "blocker", func(_ context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	// The second unit queues behind the single semaphore slot yet still
	// counts as outstanding.
	e.Submit(context.Background(), "queued", func(_ context.Context) error {
		return nil
	})

	require.Eventually(t, func() bool {
		return e.Count() == 2
	}, time.Second, time.Millisecond)

	close(release)
	e.Wait()
	assert.Equal(t, int64(0), e.Count())
}

func TestExecutor_RecoversPanics(t *testing.T) {
	t.Parallel()

	e := NewExecutor("test", 2)

	e.Submit(context.Background(), "panicking", func(_ context.Context) error {
		panic("boom")
	})

	var ran atomic.Bool
	e.Submit(context.Background(), "after", func(_ context.Context) error {
		ran.Store(true)
		return nil
	})

	e.Wait()
	assert.True(t, ran.Load(), "a panicking unit must not take the executor down")
	assert.Equal(t, int64(0), e.Count())
}

func TestExecutor_SwallowsUnitErrors(t *testing.T) {
	t.Parallel()

	e := NewExecutor("test", 2)

	e.Submit(context.Background(), "failing", func(_ context.Context) error {
		return errors.New("remote job failed")
	})

	e.Wait()
	assert.Equal(t, int64(0), e.Count())
}

func TestExecutor_DropsQueuedWorkOnCancel(t *testing.T) {
	t.Parallel()

	e := NewExecutor("test", 1)

	release := make(chan struct{})
	started := make(chan struct{})
	e.Submit(context.Background(), "blocker", func(_ context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	e.Submit(ctx, "doomed", func(_ context.Context) error {
		ran.Store(true)
		return nil
	})
	cancel()

	// The queued unit is dropped before the slot frees up.
	require.Eventually(t, func() bool {
		return e.Count() == 1
	}, time.Second, time.Millisecond)

	close(release)
	e.Wait()
	assert.False(t, ran.Load(), "a unit cancelled while queued must never run")
	assert.Equal(t, int64(0), e.Count())
}
