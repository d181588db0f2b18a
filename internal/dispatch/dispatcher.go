// Package dispatch splits large identifier lists into bounded chunks and
// submits one token acquisition job per chunk, throttled by the
// backpressure gate. Token and product info requests are rate-limited
// upstream and the executor queues must not grow unbounded; without the
// throttle a full resynchronization would enqueue hundreds of thousands of
// identifiers at once.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// gatePollInterval is how long the dispatcher sleeps between saturation
// checks while waiting for downstream to drain. Bounded polling rather than
// a wakeup signal: job drain is not latency-critical.
const gatePollInterval = 100 * time.Millisecond

// Kind tags a chunk as apps or packages.
type Kind int

// Chunk kinds.
const (
	Apps Kind = iota
	Packages
)

func (k Kind) String() string {
	if k == Apps {
		return "apps"
	}
	return "packages"
}

// LoadSignal reports downstream saturation. The backpressure gate
// satisfies it.
type LoadSignal interface {
	IsBusy() bool
}

// Submitter accepts a unit of asynchronous work plus an opaque tag. The
// jobs executor satisfies it.
type Submitter interface {
	Submit(ctx context.Context, tag string, fn func(ctx context.Context) error)
}

// TokenFetcher performs the token acquisition for one chunk. One of the two
// identifier slices is always empty.
type TokenFetcher interface {
	FetchTokens(ctx context.Context, appIDs, packageIDs []uint32)
}

// Dispatcher submits chunked token acquisition jobs.
type Dispatcher struct {
	gate    LoadSignal
	jobs    Submitter
	fetcher TokenFetcher

	// pollInterval is overridable for tests.
	pollInterval time.Duration
}

// New creates a dispatcher submitting to jobs and throttled by gate.
func New(gate LoadSignal, jobs Submitter, fetcher TokenFetcher) *Dispatcher {
	return &Dispatcher{
		gate:         gate,
		jobs:         jobs,
		fetcher:      fetcher,
		pollInterval: gatePollInterval,
	}
}

// Dispatch splits identifiers into ordered chunks of at most chunkSize and
// submits one token acquisition job per chunk. After each submission it
// waits for the gate to report idle before submitting the next chunk.
// Returns early with the context's error if cancelled mid-wait.
func (d *Dispatcher) Dispatch(ctx context.Context, identifiers []uint32, kind Kind, chunkSize int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	total := len(identifiers)
	chunks := 0

	for len(identifiers) > 0 {
		n := min(chunkSize, len(identifiers))
		chunk := identifiers[:n]
		identifiers = identifiers[n:]
		chunks++

		tag := fmt.Sprintf("tokens-%s-%d", kind, chunks)
		d.jobs.Submit(ctx, tag, func(ctx context.Context) error {
			if kind == Apps {
				d.fetcher.FetchTokens(ctx, chunk, nil)
			} else {
				d.fetcher.FetchTokens(ctx, nil, chunk)
			}
			return nil
		})

		if err := d.waitForDrain(ctx); err != nil {
			return err
		}
	}

	if chunks > 1 {
		slog.Info("Dispatched identifier batch",
			"kind", kind.String(),
			"identifiers", total,
			"chunks", chunks)
	}
	return nil
}

func (d *Dispatcher) waitForDrain(ctx context.Context) error {
	for d.gate.IsBusy() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.pollInterval):
		}
	}
	return nil
}
