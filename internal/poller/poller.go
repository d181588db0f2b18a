// Package poller drives the change feed: a long-running loop that asks the
// remote for everything after the last processed change number and fans each
// response out into token acquisition, persistence, refresh enqueueing, and
// announcements. The fan-out flows are fire-and-forget; the poller itself
// only ever waits on the remote call and its own cadence sleep.
package poller

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/PawVamp/SteamDatabaseBackend/internal/announce"
	"github.com/PawVamp/SteamDatabaseBackend/internal/dispatch"
	"github.com/PawVamp/SteamDatabaseBackend/internal/steam"
	"github.com/PawVamp/SteamDatabaseBackend/internal/store"
	"github.com/PawVamp/SteamDatabaseBackend/internal/telemetry"
	"github.com/PawVamp/SteamDatabaseBackend/internal/tracker"
)

const (
	// defaultPollInterval is the sleep between polls when store querying
	// is enabled.
	defaultPollInterval = 10 * time.Second

	// pollTimeout bounds the remote changes request. This is the only
	// timeout in the pipeline; fan-out flows run unbounded under the
	// executors' supervision.
	pollTimeout = time.Minute

	// pollMaxTries bounds retries of a failed changes request within one
	// tick. Remote job failures are not retried at all; the loop just
	// comes back at its normal cadence.
	pollMaxTries = 3

	// responseChunkSize bounds one token acquisition job submitted from a
	// feed response.
	responseChunkSize = 50
)

// Poller runs the change feed loop.
type Poller struct {
	client    steam.Client
	track     *tracker.Tracker
	db        store.Store
	jobs      dispatch.Submitter
	tasks     dispatch.Submitter
	fetcher   dispatch.TokenFetcher
	announcer *announce.Announcer
	metrics   *telemetry.PollMetrics

	// queryStoreEnabled selects the normal 10 s cadence. Deployments with
	// no rate-limited downstream disable it and run a tight loop instead.
	queryStoreEnabled bool
	interval          time.Duration

	// generation invalidates older loops: each StartTick bumps it, and an
	// iteration whose captured generation no longer matches exits
	// silently. In-flight remote calls cannot be interrupted, so this is
	// the cancellation mechanism.
	generation atomic.Uint64
}

// Option configures a poller.
type Option func(*Poller)

// WithMetrics sets the poll metrics.
func WithMetrics(m *telemetry.PollMetrics) Option {
	return func(p *Poller) {
		p.metrics = m
	}
}

// WithInterval overrides the poll cadence. Tests only.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// New creates a poller with injected dependencies.
func New(
	client steam.Client,
	track *tracker.Tracker,
	db store.Store,
	jobsExec, tasksExec dispatch.Submitter,
	fetcher dispatch.TokenFetcher,
	announcer *announce.Announcer,
	queryStoreEnabled bool,
	opts ...Option,
) *Poller {
	p := &Poller{
		client:            client,
		track:             track,
		db:                db,
		jobs:              jobsExec,
		tasks:             tasksExec,
		fetcher:           fetcher,
		announcer:         announcer,
		queryStoreEnabled: queryStoreEnabled,
		interval:          defaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StartTick starts a new polling loop, invalidating any previous one.
func (p *Poller) StartTick(ctx context.Context) {
	gen := p.generation.Add(1)
	slog.Info("Starting change feed polling",
		"generation", gen,
		"change_number", p.track.Current())
	go p.run(ctx, gen)
}

// StopTick stops the current polling loop. The running iteration finishes
// its in-flight work and exits at the next generation check.
func (p *Poller) StopTick() {
	p.generation.Add(1)
	slog.Info("Stopping change feed polling")
}

func (p *Poller) run(ctx context.Context, gen uint64) {
	for {
		if p.generation.Load() != gen || ctx.Err() != nil {
			return
		}

		p.tick(ctx)

		if !p.queryStoreEnabled {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// tick issues one changes request and processes the response. All failures
// are logged and swallowed; the feed request is never fatal to the loop.
func (p *Poller) tick(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()

	since := p.track.Current()
	start := time.Now()

	resp, err := backoff.Retry(reqCtx, func() (*steam.ChangesResponse, error) {
		r, err := p.client.GetChangesSince(reqCtx, since, true, true)
		if err != nil && steam.IsTransient(err) {
			return nil, backoff.Permanent(err)
		}
		return r, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(pollMaxTries))

	p.metrics.RecordPoll(ctx, time.Since(start), err == nil)

	if err != nil {
		slog.Warn("Changes request failed", "since", since, "error", err)
		return
	}

	p.process(ctx, resp)
}
