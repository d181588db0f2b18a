package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSeed struct {
	n   uint32
	err error
}

func (s stubSeed) MaxChangeNumber(_ context.Context) (uint32, error) {
	return s.n, s.err
}

func TestTracker_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		stateContents string
		seed          stubSeed
		expected      uint32
		expectError   bool
	}{
		{
			name:          "recovers from state file",
			stateContents: "changeNumber: 4530981\n",
			seed:          stubSeed{n: 99}, // must not be consulted
			expected:      4530981,
		},
		{
			name:     "seeds from store when no state file",
			seed:     stubSeed{n: 1234},
			expected: 1234,
		},
		{
			name:     "starts at zero when store is empty",
			seed:     stubSeed{n: 0},
			expected: 0,
		},
		{
			name:        "propagates seed error",
			seed:        stubSeed{err: errors.New("connection refused")},
			expectError: true,
		},
		{
			name:          "rejects malformed state file",
			stateContents: "{not yaml",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			statePath := filepath.Join(t.TempDir(), "tracker.yaml")
			if tt.stateContents != "" {
				require.NoError(t, os.WriteFile(statePath, []byte(tt.stateContents), 0o600))
			}

			tr := New(statePath, tt.seed)
			err := tr.Load(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tr.Current())
		})
	}
}

func TestTracker_Advance(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "tracker.yaml")
	tr := New(statePath, stubSeed{})
	require.NoError(t, tr.Load(context.Background()))

	ctx := context.Background()

	require.NoError(t, tr.Advance(ctx, 100))
	assert.Equal(t, uint32(100), tr.Current())

	// The new value must survive a restart.
	reloaded := New(statePath, stubSeed{})
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, uint32(100), reloaded.Current())
}

func TestTracker_AdvanceEqualValueIsNoOp(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "tracker.yaml")
	tr := New(statePath, stubSeed{})
	require.NoError(t, tr.Load(context.Background()))

	ctx := context.Background()
	require.NoError(t, tr.Advance(ctx, 42))

	// Advancing to the current value must not rewrite the state file. Plant
	// recognizably stale bytes and verify they survive the no-op.
	require.NoError(t, os.WriteFile(statePath, []byte("changeNumber: 42 # untouched\n"), 0o600))
	require.NoError(t, tr.Advance(ctx, 42))

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, "changeNumber: 42 # untouched\n", string(data))
	assert.Equal(t, uint32(42), tr.Current())
}

func TestTracker_AdvanceKeepsValueOnPersistFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tr := New(filepath.Join(dir, "tracker.yaml"), stubSeed{n: 7})
	require.NoError(t, tr.Load(context.Background()))
	require.Equal(t, uint32(7), tr.Current())

	// A regular file where the state directory should be makes every
	// persist attempt fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	tr.statePath = filepath.Join(blocker, "tracker.yaml")

	err := tr.Advance(context.Background(), 8)
	assert.Error(t, err)
	assert.Equal(t, uint32(7), tr.Current(), "in-memory value must not move past the persisted one")
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "tracker.yaml")
	tr := New(statePath, stubSeed{})
	require.NoError(t, tr.Load(context.Background()))

	ctx := context.Background()
	require.NoError(t, tr.Advance(ctx, 555))
	require.NoError(t, tr.Reset(ctx))

	assert.Equal(t, uint32(0), tr.Current())

	reloaded := New(statePath, stubSeed{n: 555})
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, uint32(0), reloaded.Current(), "reset must persist, not fall back to the store seed")
}
