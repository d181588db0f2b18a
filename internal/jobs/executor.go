// Package jobs provides the asynchronous executors the pipeline runs its
// fan-out work on. Two instances exist in practice: one for remote-facing
// jobs and one for local tasks. The only contract the rest of the system
// relies on is Submit plus the current outstanding count, which the
// backpressure gate samples.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Executor runs submitted work on its own goroutines, bounded by a weighted
// semaphore. Work is counted as outstanding from submission until it
// returns, so a saturated executor reports a non-zero count even while
// units queue for a semaphore slot.
type Executor struct {
	name string
	sem  *semaphore.Weighted

	outstanding atomic.Int64
	wg          sync.WaitGroup
}

// NewExecutor creates an executor running at most capacity units at once.
func NewExecutor(name string, capacity int64) *Executor {
	return &Executor{
		name: name,
		sem:  semaphore.NewWeighted(capacity),
	}
}

// Submit schedules fn to run asynchronously. The tag identifies the unit in
// logs; an empty tag gets a generated one. Errors returned by fn are logged
// here, the executor's crash/retry policy boundary: a failing unit never
// propagates into the submitting flow. Panics are recovered and logged the
// same way.
func (e *Executor) Submit(ctx context.Context, tag string, fn func(ctx context.Context) error) {
	if tag == "" {
		tag = uuid.NewString()
	}

	e.outstanding.Add(1)
	e.wg.Add(1)

	go func() {
		defer e.wg.Done()
		defer e.outstanding.Add(-1)

		if err := e.sem.Acquire(ctx, 1); err != nil {
			slog.Debug("Executor unit dropped before start",
				"executor", e.name,
				"tag", tag,
				"error", err)
			return
		}
		defer e.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				slog.Error("Executor unit panicked",
					"executor", e.name,
					"tag", tag,
					"panic", r)
			}
		}()

		if err := fn(ctx); err != nil {
			slog.Error("Executor unit failed",
				"executor", e.name,
				"tag", tag,
				"error", err)
		}
	}()
}

// Count returns the number of outstanding units.
func (e *Executor) Count() int64 {
	return e.outstanding.Load()
}

// Wait blocks until all submitted units have finished. Used by shutdown and
// by tests that need the fan-out flows drained.
func (e *Executor) Wait() {
	e.wg.Wait()
}
