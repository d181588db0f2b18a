package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PawVamp/SteamDatabaseBackend/internal/filter"
)

// postgresStore is the pgx-backed Store implementation.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Store over the given pgx pool. The caller remains
// responsible for closing the pool.
func NewPostgres(pool *pgxpool.Pool) (Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) MaxChangeNumber(ctx context.Context) (uint32, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(change_number), 0) FROM changelists`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to query max change number: %w", err)
	}
	return uint32(n), nil
}

func (s *postgresStore) UpsertChangeNumbers(ctx context.Context, changeNumbers []uint32) error {
	if len(changeNumbers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, n := range changeNumbers {
		batch.Queue(
			`INSERT INTO changelists (change_number) VALUES ($1) ON CONFLICT (change_number) DO NOTHING`,
			int64(n),
		)
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert change numbers: %w", err)
	}
	return nil
}

func (s *postgresStore) RecordAppChanges(ctx context.Context, records []ChangeRecord) error {
	return s.recordChanges(ctx, records,
		`INSERT INTO changelists_apps (change_number, app_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		`UPDATE apps SET last_updated = now() WHERE app_id = ANY($1)`,
	)
}

func (s *postgresStore) RecordPackageChanges(ctx context.Context, records []ChangeRecord) error {
	return s.recordChanges(ctx, records,
		`INSERT INTO changelists_subs (change_number, sub_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		`UPDATE subs SET last_updated = now() WHERE sub_id = ANY($1)`,
	)
}

func (s *postgresStore) recordChanges(ctx context.Context, records []ChangeRecord, insertSQL, touchSQL string) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		batch.Queue(insertSQL, int64(rec.ChangeNumber), int64(rec.ID))
		ids = append(ids, int64(rec.ID))
	}
	batch.Queue(touchSQL, ids)

	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to record changes: %w", err)
	}
	return nil
}

func (s *postgresStore) AppNames(ctx context.Context, ids []uint32) (map[uint32]string, error) {
	return s.queryNames(ctx,
		`SELECT app_id, name FROM apps WHERE app_id = ANY($1)`, ids)
}

func (s *postgresStore) PackageNames(ctx context.Context, ids []uint32) (map[uint32]string, error) {
	return s.queryNames(ctx,
		`SELECT sub_id, name FROM subs WHERE sub_id = ANY($1)`, ids)
}

func (s *postgresStore) queryNames(ctx context.Context, sql string, ids []uint32) (map[uint32]string, error) {
	if len(ids) == 0 {
		return map[uint32]string{}, nil
	}

	rows, err := s.pool.Query(ctx, sql, toInt64s(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query names: %w", err)
	}
	defer rows.Close()

	names := make(map[uint32]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan name row: %w", err)
		}
		names[uint32(id)] = name
	}
	return names, rows.Err()
}

func (s *postgresStore) PackageBillingTypes(ctx context.Context, ids []uint32) (map[uint32]filter.BillingType, error) {
	if len(ids) == 0 {
		return map[uint32]filter.BillingType{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT sub_id, billing_type FROM subs WHERE sub_id = ANY($1)`, toInt64s(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query billing types: %w", err)
	}
	defer rows.Close()

	types := make(map[uint32]filter.BillingType, len(ids))
	for rows.Next() {
		var id, billing int64
		if err := rows.Scan(&id, &billing); err != nil {
			return nil, fmt.Errorf("failed to scan billing row: %w", err)
		}
		types[uint32(id)] = filter.BillingType(billing)
	}
	return types, rows.Err()
}

func (s *postgresStore) AllAppIDs(ctx context.Context) ([]uint32, error) {
	return s.queryIDs(ctx, `SELECT app_id FROM apps ORDER BY app_id DESC`)
}

func (s *postgresStore) AllPackageIDs(ctx context.Context) ([]uint32, error) {
	return s.queryIDs(ctx, `SELECT sub_id FROM subs ORDER BY sub_id DESC`)
}

func (s *postgresStore) AllOwnedAppIDs(ctx context.Context) ([]uint32, error) {
	return s.queryIDs(ctx, `SELECT DISTINCT app_id FROM subs_apps ORDER BY app_id DESC`)
}

func (s *postgresStore) AppIDsOwnedByPackages(ctx context.Context, packageIDs []uint32) ([]uint32, error) {
	if len(packageIDs) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT app_id FROM subs_apps WHERE sub_id = ANY($1) ORDER BY app_id DESC`,
		toInt64s(packageIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query owned apps: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (s *postgresStore) MaxAppID(ctx context.Context) (uint32, error) {
	return s.queryMax(ctx, `SELECT COALESCE(MAX(app_id), 0) FROM apps`)
}

func (s *postgresStore) MaxPackageID(ctx context.Context) (uint32, error) {
	return s.queryMax(ctx, `SELECT COALESCE(MAX(sub_id), 0) FROM subs`)
}

func (s *postgresStore) EnqueueApps(ctx context.Context, ids []uint32) error {
	return s.enqueue(ctx,
		`INSERT INTO store_queue (item_type, item_id) VALUES ('app', $1) ON CONFLICT DO NOTHING`, ids)
}

func (s *postgresStore) EnqueuePackages(ctx context.Context, ids []uint32) error {
	return s.enqueue(ctx,
		`INSERT INTO store_queue (item_type, item_id) VALUES ('sub', $1) ON CONFLICT DO NOTHING`, ids)
}

func (s *postgresStore) enqueue(ctx context.Context, sql string, ids []uint32) error {
	if len(ids) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(sql, int64(id))
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to enqueue refresh items: %w", err)
	}
	return nil
}

func (s *postgresStore) queryIDs(ctx context.Context, sql string) ([]uint32, error) {
	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query identifiers: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (s *postgresStore) queryMax(ctx context.Context, sql string) (uint32, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to query max identifier: %w", err)
	}
	return uint32(n), nil
}

func scanIDs(rows pgx.Rows) ([]uint32, error) {
	var ids []uint32
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan identifier row: %w", err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, rows.Err()
}

func toInt64s(ids []uint32) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
