package announce

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/PawVamp/SteamDatabaseBackend/internal/steam"
)

// compactChangeThreshold is the per-changelist size above which a group is
// always announced in compact form, regardless of burst state.
const compactChangeThreshold = 300

// bigChangelistThreshold is the combined change count above which a group
// gets a dedicated headline on the main channel.
const bigChangelistThreshold = 50

// NameResolver looks up last-known product names in batches. The store
// satisfies it.
type NameResolver interface {
	AppNames(ctx context.Context, ids []uint32) (map[uint32]string, error)
	PackageNames(ctx context.Context, ids []uint32) (map[uint32]string, error)
}

// group collects the products sharing one change number within a response.
type group struct {
	apps []uint32
	subs []uint32
}

func (g *group) combined() int {
	return len(g.apps) + len(g.subs)
}

// Announcer renders feed responses into changelist announcements.
type Announcer struct {
	sink   Sink
	names  NameResolver
	window *burstWindow

	importantApps map[uint32]struct{}
	importantSubs map[uint32]struct{}

	// chat, when set, receives a copy of each important announcement for
	// the external chat transport.
	chat func(message string)
}

// Option configures an announcer.
type Option func(*Announcer)

// WithImportant sets the app and package identifiers that trigger
// high-visibility announcements.
func WithImportant(appIDs, packageIDs []uint32) Option {
	return func(a *Announcer) {
		for _, id := range appIDs {
			a.importantApps[id] = struct{}{}
		}
		for _, id := range packageIDs {
			a.importantSubs[id] = struct{}{}
		}
	}
}

// WithChatNotifier forwards important announcements to an external chat
// transport.
func WithChatNotifier(fn func(message string)) Option {
	return func(a *Announcer) {
		a.chat = fn
	}
}

// WithNow overrides the burst window clock. Tests only.
func WithNow(now func() time.Time) Option {
	return func(a *Announcer) {
		a.window = newBurstWindow(now)
	}
}

// New creates an announcer writing to sink and resolving names through
// names.
func New(sink Sink, names NameResolver, opts ...Option) *Announcer {
	a := &Announcer{
		sink:          sink,
		names:         names,
		window:        newBurstWindow(nil),
		importantApps: make(map[uint32]struct{}),
		importantSubs: make(map[uint32]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnnounceEmpty reports a changelist that carried no product changes.
func (a *Announcer) AnnounceEmpty(changeNumber uint32) {
	a.sink.Main(fmt.Sprintf("Changelist %s%d%s (empty)", ColorBlue, changeNumber, ColorNormal))
}

// Announce groups the response by change number and announces each group in
// ascending change number order. Groups beyond the burst threshold, or
// larger than the compact threshold, collapse to a single identifier-list
// line.
func (a *Announcer) Announce(ctx context.Context, resp *steam.ChangesResponse) {
	groups := groupByChangeNumber(resp)

	numbers := make([]uint32, 0, len(groups))
	for n := range groups {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	for _, n := range numbers {
		a.announceGroup(ctx, n, groups[n])
	}
}

func (a *Announcer) announceGroup(ctx context.Context, changeNumber uint32, g *group) {
	combined := g.combined()

	if combined >= bigChangelistThreshold {
		a.sink.Main(fmt.Sprintf("Changelist %s%d%s is a big one: %s%d changes%s",
			ColorBlue, changeNumber, ColorNormal, ColorOlive, combined, ColorNormal))
	}

	burst := a.window.observe()
	if burst || combined > compactChangeThreshold {
		a.sink.Main(fmt.Sprintf("Changelist %s%d%s: apps [%s] packages [%s]",
			ColorBlue, changeNumber, ColorNormal, joinIDs(g.apps), joinIDs(g.subs)))
		return
	}

	a.sink.Main(fmt.Sprintf("Changelist %s%d%s (%d apps, %d packages)",
		ColorBlue, changeNumber, ColorNormal, len(g.apps), len(g.subs)))

	appNames, err := a.names.AppNames(ctx, g.apps)
	if err != nil {
		slog.Warn("App name lookup failed", "change_number", changeNumber, "error", err)
	}
	for _, id := range g.apps {
		a.sink.Main(fmt.Sprintf("  App %s%d%s - %s", ColorBlue, id, ColorNormal, displayName(appNames, id, "App")))
	}

	subNames, err := a.names.PackageNames(ctx, g.subs)
	if err != nil {
		slog.Warn("Package name lookup failed", "change_number", changeNumber, "error", err)
	}
	for _, id := range g.subs {
		a.sink.Main(fmt.Sprintf("  Package %s%d%s - %s", ColorBlue, id, ColorNormal, displayName(subNames, id, "Package")))
	}
}

// AnnounceImportant emits a dedicated high-visibility announcement for each
// changed product on the configured allow-lists.
func (a *Announcer) AnnounceImportant(ctx context.Context, resp *steam.ChangesResponse) {
	var appIDs, subIDs []uint32
	for id := range resp.AppChanges {
		if _, ok := a.importantApps[id]; ok {
			appIDs = append(appIDs, id)
		}
	}
	for id := range resp.PackageChanges {
		if _, ok := a.importantSubs[id]; ok {
			subIDs = append(subIDs, id)
		}
	}
	if len(appIDs) == 0 && len(subIDs) == 0 {
		return
	}
	slices.Sort(appIDs)
	slices.Sort(subIDs)

	appNames, err := a.names.AppNames(ctx, appIDs)
	if err != nil {
		slog.Warn("Important app name lookup failed", "error", err)
	}
	for _, id := range appIDs {
		a.emitImportant(fmt.Sprintf("Important app update: %s%s%s (%d)",
			ColorGreen, displayName(appNames, id, "App"), ColorNormal, id))
	}

	subNames, err := a.names.PackageNames(ctx, subIDs)
	if err != nil {
		slog.Warn("Important package name lookup failed", "error", err)
	}
	for _, id := range subIDs {
		a.emitImportant(fmt.Sprintf("Important package update: %s%s%s (%d)",
			ColorGreen, displayName(subNames, id, "Package"), ColorNormal, id))
	}
}

func (a *Announcer) emitImportant(message string) {
	a.sink.Announce(message)
	if a.chat != nil {
		a.chat(message)
	}
}

func groupByChangeNumber(resp *steam.ChangesResponse) map[uint32]*group {
	groups := make(map[uint32]*group)
	get := func(n uint32) *group {
		g, ok := groups[n]
		if !ok {
			g = &group{}
			groups[n] = g
		}
		return g
	}

	for _, change := range resp.AppChanges {
		g := get(change.ChangeNumber)
		g.apps = append(g.apps, change.ID)
	}
	for _, change := range resp.PackageChanges {
		g := get(change.ChangeNumber)
		g.subs = append(g.subs, change.ID)
	}

	for _, g := range groups {
		slices.Sort(g.apps)
		slices.Sort(g.subs)
	}
	return groups
}

func displayName(names map[uint32]string, id uint32, kind string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("%sUnknown %s %d%s", ColorDark, kind, id, ColorNormal)
}

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
