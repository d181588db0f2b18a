package poller

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/PawVamp/SteamDatabaseBackend/internal/filter"
	"github.com/PawVamp/SteamDatabaseBackend/internal/steam"
	"github.com/PawVamp/SteamDatabaseBackend/internal/store"
)

// process handles one feed response. The change number is advanced before
// any fan-out runs, so a later failure can never leave the tracker ahead of
// what was durably recorded. Everything after the history upsert is spawned
// as independent flows; this function returns without waiting for them.
func (p *Poller) process(ctx context.Context, resp *steam.ChangesResponse) {
	if resp.CurrentChangeNumber == p.track.Current() {
		// Duplicate notification, nothing new.
		return
	}

	if err := p.track.Advance(ctx, resp.CurrentChangeNumber); err != nil {
		slog.Error("Failed to advance change number",
			"change_number", resp.CurrentChangeNumber,
			"error", err)
		return
	}

	if err := p.db.UpsertChangeNumbers(ctx, collectChangeNumbers(resp)); err != nil {
		slog.Error("Failed to record change history",
			"change_number", resp.CurrentChangeNumber,
			"error", err)
	}

	if resp.Empty() {
		p.announcer.AnnounceEmpty(resp.CurrentChangeNumber)
		return
	}

	apps := sortedIDs(resp.AppChanges)
	subs := sortedIDs(resp.PackageChanges)

	slog.Info("Processing changelist",
		"change_number", resp.CurrentChangeNumber,
		"apps", len(apps),
		"packages", len(subs))
	p.metrics.RecordChanges(ctx, int64(len(apps)), int64(len(subs)))

	p.submitTokenJobs(ctx, apps, true)
	p.submitTokenJobs(ctx, subs, false)

	if len(apps) > 0 {
		p.tasks.Submit(ctx, fmt.Sprintf("apps-%d", resp.CurrentChangeNumber), func(ctx context.Context) error {
			return p.processAppChanges(ctx, resp, apps)
		})
	}

	if len(subs) > 0 {
		p.tasks.Submit(ctx, fmt.Sprintf("subs-%d", resp.CurrentChangeNumber), func(ctx context.Context) error {
			return p.processPackageChanges(ctx, resp, subs)
		})
	}

	p.tasks.Submit(ctx, fmt.Sprintf("announce-%d", resp.CurrentChangeNumber), func(ctx context.Context) error {
		p.announcer.Announce(ctx, resp)
		return nil
	})

	p.tasks.Submit(ctx, fmt.Sprintf("important-%d", resp.CurrentChangeNumber), func(ctx context.Context) error {
		p.announcer.AnnounceImportant(ctx, resp)
		return nil
	})
}

// submitTokenJobs submits token acquisition for the changed products:
// chunks of 50 for large responses, a single job otherwise.
func (p *Poller) submitTokenJobs(ctx context.Context, ids []uint32, isApps bool) {
	if len(ids) == 0 {
		return
	}

	chunks := int64(0)
	for len(ids) > 0 {
		n := min(responseChunkSize, len(ids))
		chunk := ids[:n]
		ids = ids[n:]
		chunks++

		p.jobs.Submit(ctx, "", func(ctx context.Context) error {
			if isApps {
				p.fetcher.FetchTokens(ctx, chunk, nil)
			} else {
				p.fetcher.FetchTokens(ctx, nil, chunk)
			}
			return nil
		})
	}

	kind := "package"
	if isApps {
		kind = "app"
	}
	p.metrics.RecordDispatchedChunks(ctx, kind, chunks)
}

// processAppChanges persists the app change rows and enqueues the apps for
// a store refresh.
func (p *Poller) processAppChanges(ctx context.Context, resp *steam.ChangesResponse, apps []uint32) error {
	if err := p.db.RecordAppChanges(ctx, changeRecords(resp.AppChanges)); err != nil {
		return fmt.Errorf("failed to record app changes: %w", err)
	}
	if err := p.db.EnqueueApps(ctx, apps); err != nil {
		return fmt.Errorf("failed to enqueue apps: %w", err)
	}
	return nil
}

// processPackageChanges persists the package change rows, then enqueues the
// non-suppressed packages and the apps they own. Suppression affects only
// the refresh fan-out; every change row is recorded regardless.
func (p *Poller) processPackageChanges(ctx context.Context, resp *steam.ChangesResponse, subs []uint32) error {
	if err := p.db.RecordPackageChanges(ctx, changeRecords(resp.PackageChanges)); err != nil {
		return fmt.Errorf("failed to record package changes: %w", err)
	}

	billing, err := p.db.PackageBillingTypes(ctx, subs)
	if err != nil {
		return fmt.Errorf("failed to look up billing types: %w", err)
	}

	// Packages the store has never seen have no billing type yet; they
	// pass through so their first refresh can classify them.
	survivors := make([]uint32, 0, len(subs))
	for _, id := range subs {
		if filter.ShouldSuppress(id, billing[id]) {
			continue
		}
		survivors = append(survivors, id)
	}
	if len(survivors) == 0 {
		return nil
	}

	ownedApps, err := p.db.AppIDsOwnedByPackages(ctx, survivors)
	if err != nil {
		return fmt.Errorf("failed to resolve owned apps: %w", err)
	}

	if err := p.db.EnqueuePackages(ctx, survivors); err != nil {
		return fmt.Errorf("failed to enqueue packages: %w", err)
	}
	if err := p.db.EnqueueApps(ctx, ownedApps); err != nil {
		return fmt.Errorf("failed to enqueue owned apps: %w", err)
	}
	return nil
}

// collectChangeNumbers gathers every distinct change number referenced by
// the response, including its own.
func collectChangeNumbers(resp *steam.ChangesResponse) []uint32 {
	seen := map[uint32]struct{}{resp.CurrentChangeNumber: {}}
	for _, change := range resp.AppChanges {
		seen[change.ChangeNumber] = struct{}{}
	}
	for _, change := range resp.PackageChanges {
		seen[change.ChangeNumber] = struct{}{}
	}

	numbers := make([]uint32, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

func changeRecords(changes map[uint32]steam.FeedChange) []store.ChangeRecord {
	records := make([]store.ChangeRecord, 0, len(changes))
	for _, change := range changes {
		records = append(records, store.ChangeRecord{
			ID:           change.ID,
			ChangeNumber: change.ChangeNumber,
		})
	}
	slices.SortFunc(records, func(a, b store.ChangeRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return records
}

func sortedIDs(changes map[uint32]steam.FeedChange) []uint32 {
	ids := make([]uint32, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
