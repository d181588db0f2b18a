// Package tracker owns the last-processed change number: the single source
// of truth for the feed position. The in-memory value always equals the last
// durably recorded one, and it only moves forward.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// SeedSource provides the fallback feed position when no local state exists.
// The store satisfies it.
type SeedSource interface {
	MaxChangeNumber(ctx context.Context) (uint32, error)
}

// persistedState is the on-disk shape of the tracker's scalar.
type persistedState struct {
	ChangeNumber uint32 `yaml:"changeNumber"`
}

// Tracker holds the current change number. Readers go through Current and
// always see either the previous or the new value; writers serialize through
// Advance, which persists before publishing.
type Tracker struct {
	statePath string
	seed      SeedSource

	mu    sync.Mutex // serializes persist-then-publish
	value atomic.Uint32
}

// New creates a tracker persisting its state at statePath, seeding from seed
// when no state file exists.
func New(statePath string, seed SeedSource) *Tracker {
	return &Tracker{
		statePath: statePath,
		seed:      seed,
	}
}

// Load recovers the feed position: the local state file if present,
// otherwise the highest change number already in the store. When neither
// yields a value the tracker starts at zero and a full resynchronization
// should be triggered by an operator.
func (t *Tracker) Load(ctx context.Context) error {
	if n, err := t.readState(); err == nil {
		t.value.Store(n)
		slog.Info("Recovered change number from local state", "change_number", n)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read tracker state: %w", err)
	}

	n, err := t.seed.MaxChangeNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed change number from store: %w", err)
	}

	t.value.Store(n)
	if n == 0 {
		slog.Warn("No previous change number found, starting from zero; a full resynchronization is advised")
	} else {
		slog.Info("Seeded change number from store", "change_number", n)
	}
	return nil
}

// Current returns the last-processed change number.
func (t *Tracker) Current() uint32 {
	return t.value.Load()
}

// Advance moves the tracker to newChangeNumber. A value equal to the current
// one is a no-op. The new value is persisted before it becomes visible to
// readers.
func (t *Tracker) Advance(_ context.Context, newChangeNumber uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if newChangeNumber == t.value.Load() {
		return nil
	}

	if err := t.writeState(newChangeNumber); err != nil {
		return fmt.Errorf("failed to persist change number: %w", err)
	}
	t.value.Store(newChangeNumber)
	return nil
}

// Reset drops the tracker back to zero. Administrative use only; the next
// poll will replay the feed from the beginning.
func (t *Tracker) Reset(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.writeState(0); err != nil {
		return fmt.Errorf("failed to persist change number reset: %w", err)
	}
	t.value.Store(0)
	slog.Warn("Change number tracker reset to zero")
	return nil
}

func (t *Tracker) readState() (uint32, error) {
	data, err := os.ReadFile(t.statePath)
	if err != nil {
		return 0, err
	}

	var state persistedState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return 0, fmt.Errorf("failed to parse tracker state: %w", err)
	}
	return state.ChangeNumber, nil
}

// writeState persists via rename so a crash mid-write never truncates the
// previous value.
func (t *Tracker) writeState(n uint32) error {
	data, err := yaml.Marshal(&persistedState{ChangeNumber: n})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(t.statePath), 0o750); err != nil {
		return err
	}

	tmp := t.statePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, t.statePath)
}
