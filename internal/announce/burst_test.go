package announce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBurstWindow_ThresholdWithinWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	w := newBurstWindow(func() time.Time { return now })

	for i := 0; i < burstThreshold; i++ {
		assert.Falsef(t, w.observe(), "changelist %d is still under the threshold", i+1)
	}
	assert.True(t, w.observe(), "the changelist past the threshold is compact")
	assert.True(t, w.observe(), "and the window stays saturated")
}

func TestBurstWindow_ResetsAfterWindowExpires(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	w := newBurstWindow(func() time.Time { return now })

	for i := 0; i <= burstThreshold; i++ {
		w.observe()
	}
	assert.True(t, w.observe())

	now = now.Add(burstWindowLength + time.Second)
	assert.False(t, w.observe(), "a fresh window starts counting from zero")
}

func TestBurstWindow_WindowBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	w := newBurstWindow(func() time.Time { return now })

	for i := 0; i <= burstThreshold; i++ {
		w.observe()
	}

	// Exactly at the window length the window has not rolled yet.
	now = now.Add(burstWindowLength)
	assert.True(t, w.observe())
}
