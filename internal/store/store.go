// Package store is the persistent side of the pipeline: change history,
// last-known product names, package ownership links, and the store refresh
// queue. The Store interface is what the pipeline consumes; the Postgres
// implementation lives alongside it.
package store

import (
	"context"

	"github.com/PawVamp/SteamDatabaseBackend/internal/filter"
)

// ChangeRecord links one product to the changelist that touched it.
type ChangeRecord struct {
	ID           uint32
	ChangeNumber uint32
}

// Store is the persistence contract the pipeline requires.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/PawVamp/SteamDatabaseBackend/internal/store Store
type Store interface {
	// MaxChangeNumber returns the highest change number present in change
	// history, or zero when the table is empty.
	MaxChangeNumber(ctx context.Context) (uint32, error)

	// UpsertChangeNumbers records the given change numbers in change
	// history. Numbers already present are not an error.
	UpsertChangeNumbers(ctx context.Context, changeNumbers []uint32) error

	// RecordAppChanges inserts app/changelist join rows, ignoring
	// duplicates, and refreshes the apps' last-updated timestamps.
	RecordAppChanges(ctx context.Context, records []ChangeRecord) error

	// RecordPackageChanges is RecordAppChanges for packages.
	RecordPackageChanges(ctx context.Context, records []ChangeRecord) error

	// AppNames returns the last-known names for the given apps. Unknown
	// apps are absent from the result.
	AppNames(ctx context.Context, ids []uint32) (map[uint32]string, error)

	// PackageNames is AppNames for packages.
	PackageNames(ctx context.Context, ids []uint32) (map[uint32]string, error)

	// PackageBillingTypes returns the last-known billing classification
	// for the given packages. Unknown packages are absent from the result.
	PackageBillingTypes(ctx context.Context, ids []uint32) (map[uint32]filter.BillingType, error)

	// AllAppIDs returns every persisted app identifier, descending.
	AllAppIDs(ctx context.Context) ([]uint32, error)

	// AllPackageIDs returns every persisted package identifier, descending.
	AllPackageIDs(ctx context.Context) ([]uint32, error)

	// AllOwnedAppIDs returns every app identifier ever observed through a
	// package ownership link, descending.
	AllOwnedAppIDs(ctx context.Context) ([]uint32, error)

	// AppIDsOwnedByPackages resolves the apps owned by the given packages.
	AppIDsOwnedByPackages(ctx context.Context, packageIDs []uint32) ([]uint32, error)

	// MaxAppID returns the highest persisted app identifier, or zero.
	MaxAppID(ctx context.Context) (uint32, error)

	// MaxPackageID returns the highest persisted package identifier, or zero.
	MaxPackageID(ctx context.Context) (uint32, error)

	// EnqueueApps adds apps to the store refresh queue, ignoring ones
	// already queued.
	EnqueueApps(ctx context.Context, ids []uint32) error

	// EnqueuePackages is EnqueueApps for packages.
	EnqueuePackages(ctx context.Context, ids []uint32) error
}
