package announce

import (
	"sync"
	"time"
)

const (
	// burstWindowLength is the rolling window over which announced
	// changelists are counted.
	burstWindowLength = 5 * time.Minute

	// burstThreshold is the number of changelists allowed in one window
	// before announcements degrade to compact form.
	burstThreshold = 50
)

// burstWindow counts changelists processed within a rolling window. Every
// processed group is counted, whether it ends up rendered in detail or
// compact form.
type burstWindow struct {
	mu    sync.Mutex
	start time.Time
	count int

	now func() time.Time
}

func newBurstWindow(now func() time.Time) *burstWindow {
	if now == nil {
		now = time.Now
	}
	return &burstWindow{now: now}
}

// observe counts one processed changelist and reports whether the window's
// threshold has been exceeded, i.e. whether this changelist should be
// announced in compact form.
func (w *burstWindow) observe() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if w.start.IsZero() || now.Sub(w.start) > burstWindowLength {
		w.start = now
		w.count = 0
	}

	w.count++
	return w.count > burstThreshold
}
