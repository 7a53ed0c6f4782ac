// Package clickhouse implements the return-series store on ClickHouse.
// Historical monthly returns are a pure time-series workload: bulk inserts,
// range scans, no updates, which is what MergeTree is built for.
package clickhouse

import (
	"context"
	"fmt"
	"time"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/observability"
	"valuation-lab/internal/storage"
)

// ReturnSeriesStore implements storage.ReturnSeriesStore using ClickHouse.
type ReturnSeriesStore struct {
	conn *Conn
}

// NewReturnSeriesStore creates a new ReturnSeriesStore.
func NewReturnSeriesStore(conn *Conn) *ReturnSeriesStore {
	return &ReturnSeriesStore{conn: conn}
}

// Compile-time interface check.
var _ storage.ReturnSeriesStore = (*ReturnSeriesStore)(nil)

// InsertBulk adds multiple points. Fails entire batch on duplicate (asset_id, period_start).
func (s *ReturnSeriesStore) InsertBulk(ctx context.Context, points []*domain.ReturnPoint) error {
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p == nil || p.AssetID == "" {
			return storage.ErrInvalidInput
		}
	}

	// Check for intra-batch duplicates
	type key struct {
		assetID     string
		periodStart int64
	}
	seen := make(map[key]struct{}, len(points))
	for _, p := range points {
		k := key{p.AssetID, p.PeriodStart}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	// Check for duplicates against existing DB rows. MergeTree does not
	// enforce uniqueness at insert time.
	for _, p := range points {
		exists, err := s.exists(ctx, p.AssetID, p.PeriodStart)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	start := time.Now()
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO return_series (
			asset_id, period_start, period_return
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		err = batch.Append(p.AssetID, uint64(p.PeriodStart), p.Return)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	err = batch.Send()
	observability.RecordDBQuery("clickhouse", "insert_return_series", time.Since(start).Seconds(), err)
	if err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	observability.RecordReturnPointsStored(len(points))

	return nil
}

// GetByAssetID retrieves all points for an asset, ordered by period_start ASC.
// Returns ErrNotFound when the asset has no series at all.
func (s *ReturnSeriesStore) GetByAssetID(ctx context.Context, assetID string) ([]*domain.ReturnPoint, error) {
	query := `
		SELECT asset_id, period_start, period_return
		FROM return_series
		WHERE asset_id = ?
		ORDER BY period_start ASC
	`

	rows, err := s.conn.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("query by asset id: %w", err)
	}
	defer rows.Close()

	points, err := scanReturnPoints(rows)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, storage.ErrNotFound
	}
	return points, nil
}

// GetByTimeRange retrieves points for an asset within [start, end] (inclusive).
func (s *ReturnSeriesStore) GetByTimeRange(ctx context.Context, assetID string, start, end int64) ([]*domain.ReturnPoint, error) {
	query := `
		SELECT asset_id, period_start, period_return
		FROM return_series
		WHERE asset_id = ? AND period_start >= ? AND period_start <= ?
		ORDER BY period_start ASC
	`

	rows, err := s.conn.Query(ctx, query, assetID, uint64(start), uint64(end))
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()

	return scanReturnPoints(rows)
}

// exists checks if a point with the given key exists.
func (s *ReturnSeriesStore) exists(ctx context.Context, assetID string, periodStart int64) (bool, error) {
	query := `
		SELECT count(*) FROM return_series
		WHERE asset_id = ? AND period_start = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, assetID, uint64(periodStart)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// chRows is the subset of driver.Rows the scanners need.
type chRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanReturnPoints scans multiple rows.
func scanReturnPoints(rows chRows) ([]*domain.ReturnPoint, error) {
	var points []*domain.ReturnPoint

	for rows.Next() {
		var p domain.ReturnPoint
		var periodStart uint64

		if err := rows.Scan(&p.AssetID, &periodStart, &p.Return); err != nil {
			return nil, fmt.Errorf("scan return series row: %w", err)
		}

		p.PeriodStart = int64(periodStart)
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return series rows: %w", err)
	}

	return points, nil
}
