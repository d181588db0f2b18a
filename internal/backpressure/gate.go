// Package backpressure decides whether the system is currently too loaded to
// accept more batch work. The gate is a pure sampling predicate over counters
// owned elsewhere: the job and task executors, the product info processor,
// and the depot lock tracker. It never blocks; callers poll it.
package backpressure

import "sync/atomic"

const (
	// maxInFlightProductInfo is the number of product info items that may
	// be mid-processing before the gate reports busy.
	maxInFlightProductInfo = 50

	// maxHeldDepotLocks is the number of depot locks that may be held
	// before the gate reports busy.
	maxHeldDepotLocks = 4
)

// Counter exposes an outstanding work count. Both executors satisfy it.
type Counter interface {
	Count() int64
}

// Gauge is a concurrency-safe up/down counter for a saturation signal.
type Gauge struct {
	n atomic.Int64
}

// Inc increments the gauge.
func (g *Gauge) Inc() { g.n.Add(1) }

// Dec decrements the gauge.
func (g *Gauge) Dec() { g.n.Add(-1) }

// Add adds delta to the gauge.
func (g *Gauge) Add(delta int64) { g.n.Add(delta) }

// Value returns the current gauge value.
func (g *Gauge) Value() int64 { return g.n.Load() }

// Gate samples the four saturation signals.
type Gate struct {
	tasks       Counter
	jobs        Counter
	productInfo *Gauge
	depotLocks  *Gauge
}

// NewGate creates a gate over the given signals.
func NewGate(tasks, jobs Counter, productInfo, depotLocks *Gauge) *Gate {
	return &Gate{
		tasks:       tasks,
		jobs:        jobs,
		productInfo: productInfo,
		depotLocks:  depotLocks,
	}
}

// IsBusy reports whether any downstream is saturated: outstanding tasks or
// jobs, too many product info items mid-processing, or too many depot locks
// held.
func (g *Gate) IsBusy() bool {
	return g.tasks.Count() > 0 ||
		g.jobs.Count() > 0 ||
		g.productInfo.Value() > maxInFlightProductInfo ||
		g.depotLocks.Value() > maxHeldDepotLocks
}
