// Package resync produces the identifier lists for a full
// resynchronization and feeds them to the batch dispatcher under one of
// several enumeration strategies.
package resync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/PawVamp/SteamDatabaseBackend/internal/dispatch"
)

// Mode selects the enumeration strategy for a full run.
type Mode string

// Enumeration strategies.
const (
	// ModeFull replays everything the store knows about.
	ModeFull Mode = "full"

	// ModeEnumerate brute-forces descending identifier ranges, padded
	// past the highest known identifier to catch ones allocated since.
	ModeEnumerate Mode = "enumerate"

	// ModeTokensOnly replays only the products already holding an access
	// token.
	ModeTokensOnly Mode = "tokens-only"

	// ModePackagesNormal skips apps and re-enumerates the full package
	// table.
	ModePackagesNormal Mode = "packages-normal"

	// ModeWithForcedDepots replays all known apps and skips the package
	// pass entirely.
	ModeWithForcedDepots Mode = "forced-depots"
)

// ParseMode validates a configured mode string. Empty selects ModeFull.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeFull, nil
	case ModeFull, ModeEnumerate, ModeTokensOnly, ModePackagesNormal, ModeWithForcedDepots:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown full run mode %q", s)
	}
}

const (
	// appChunkSize and packageChunkSize bound one token acquisition job.
	appChunkSize     = 200
	packageChunkSize = 1000

	// appIDPadding and packageIDPadding extend brute-force ranges past
	// the highest known identifier.
	appIDPadding     = 50000
	packageIDPadding = 10000
)

// Store is the subset of the persistent store the enumerator reads.
type Store interface {
	AllAppIDs(ctx context.Context) ([]uint32, error)
	AllPackageIDs(ctx context.Context) ([]uint32, error)
	AllOwnedAppIDs(ctx context.Context) ([]uint32, error)
	MaxAppID(ctx context.Context) (uint32, error)
	MaxPackageID(ctx context.Context) (uint32, error)
}

// TokenSource lists the products already holding an access token. The token
// cache satisfies it.
type TokenSource interface {
	AppsWithTokens() []uint32
	PackagesWithTokens() []uint32
}

// Dispatcher submits chunked identifier batches.
type Dispatcher interface {
	Dispatch(ctx context.Context, identifiers []uint32, kind dispatch.Kind, chunkSize int) error
}

// Enumerator drives one full resynchronization.
type Enumerator struct {
	mode       Mode
	store      Store
	tokens     TokenSource
	dispatcher Dispatcher
}

// New creates an enumerator for the given mode.
func New(mode Mode, store Store, tokens TokenSource, dispatcher Dispatcher) *Enumerator {
	return &Enumerator{
		mode:       mode,
		store:      store,
		tokens:     tokens,
		dispatcher: dispatcher,
	}
}

// Run builds the app and package lists for the configured mode and hands
// them to the dispatcher: apps first, then packages unless the mode skips
// them. Identifier order is descending so the newest products are refreshed
// first.
func (e *Enumerator) Run(ctx context.Context) error {
	apps, packages, err := e.enumerate(ctx)
	if err != nil {
		return err
	}

	slog.Info("Starting full run",
		"mode", string(e.mode),
		"apps", len(apps),
		"packages", len(packages))

	if err := e.dispatcher.Dispatch(ctx, apps, dispatch.Apps, appChunkSize); err != nil {
		return fmt.Errorf("failed to dispatch apps: %w", err)
	}

	if e.mode == ModeWithForcedDepots {
		return nil
	}

	if err := e.dispatcher.Dispatch(ctx, packages, dispatch.Packages, packageChunkSize); err != nil {
		return fmt.Errorf("failed to dispatch packages: %w", err)
	}
	return nil
}

func (e *Enumerator) enumerate(ctx context.Context) (apps, packages []uint32, err error) {
	switch e.mode {
	case ModeEnumerate:
		lastApp, err := e.store.MaxAppID(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read last app id: %w", err)
		}
		lastPackage, err := e.store.MaxPackageID(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read last package id: %w", err)
		}
		return descendingRange(lastApp + appIDPadding), descendingRange(lastPackage + packageIDPadding), nil

	case ModeTokensOnly:
		return e.tokens.AppsWithTokens(), e.tokens.PackagesWithTokens(), nil

	case ModePackagesNormal:
		packages, err := e.store.AllPackageIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to enumerate packages: %w", err)
		}
		return nil, packages, nil

	default: // ModeFull, ModeWithForcedDepots
		stored, err := e.store.AllAppIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to enumerate apps: %w", err)
		}
		owned, err := e.store.AllOwnedAppIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to enumerate owned apps: %w", err)
		}
		packages, err := e.store.AllPackageIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to enumerate packages: %w", err)
		}
		return mergeDescending(stored, owned), packages, nil
	}
}

// descendingRange returns count identifiers from count-1 down to 0.
func descendingRange(count uint32) []uint32 {
	ids := make([]uint32, 0, count)
	for id := count; id > 0; id-- {
		ids = append(ids, id-1)
	}
	return ids
}

// mergeDescending unions two identifier lists, descending, no duplicates.
func mergeDescending(a, b []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(a)+len(b))
	merged := make([]uint32, 0, len(a)+len(b))
	for _, ids := range [][]uint32{a, b} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	slices.SortFunc(merged, func(x, y uint32) int {
		switch {
		case x > y:
			return -1
		case x < y:
			return 1
		default:
			return 0
		}
	})
	return merged
}
