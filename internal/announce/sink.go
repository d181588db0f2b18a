// Package announce renders feed responses as human-readable changelist
// announcements, throttled by a rolling burst window so a flood of
// changelists degrades to compact summaries instead of drowning the channel.
package announce

import "log/slog"

// Inline color markers understood by the notification transport. The codes
// follow the mIRC convention of 0x03 plus a two-digit color index.
const (
	ColorNormal = "\x0f"
	ColorRed    = "\x0304"
	ColorGreen  = "\x0303"
	ColorBlue   = "\x0310"
	ColorOlive  = "\x0307"
	ColorDark   = "\x0314"
)

// Sink is the outbound notification channel. Announce is the low-volume
// target for important events; Main is the high-volume target carrying
// every changelist. Both take one pre-formatted line per call.
//
//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks github.com/PawVamp/SteamDatabaseBackend/internal/announce Sink
type Sink interface {
	Announce(message string)
	Main(message string)
}

// logSink writes announcements to the structured log. It is the default
// sink when no chat transport is configured, keeping the announcement paths
// exercised in every deployment.
type logSink struct{}

// NewLogSink creates a sink backed by slog.
func NewLogSink() Sink {
	return logSink{}
}

func (logSink) Announce(message string) {
	slog.Info("Announcement", "channel", "announce", "message", message)
}

func (logSink) Main(message string) {
	slog.Info("Announcement", "channel", "main", "message", message)
}
