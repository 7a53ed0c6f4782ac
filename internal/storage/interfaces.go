package storage

import (
	"context"

	"valuation-lab/internal/domain"
)

// ForecastStore provides access to forecasts storage.
type ForecastStore interface {
	// Insert adds a new forecast record. Returns ErrDuplicateKey if forecast_id exists.
	Insert(ctx context.Context, r *domain.ForecastRecord) error

	// GetByID retrieves a forecast by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, forecastID string) (*domain.ForecastRecord, error)

	// GetByAssetID retrieves all forecasts for an asset, ordered by
	// generated_at ASC, then horizon_years ASC.
	GetByAssetID(ctx context.Context, assetID string) ([]*domain.ForecastRecord, error)

	// GetAll retrieves all forecast records.
	GetAll(ctx context.Context) ([]*domain.ForecastRecord, error)
}

// ReturnSeriesStore provides access to return_series storage.
type ReturnSeriesStore interface {
	// InsertBulk adds multiple points. Fails entire batch on duplicate (asset_id, period_start).
	InsertBulk(ctx context.Context, points []*domain.ReturnPoint) error

	// GetByAssetID retrieves all points for an asset, ordered by period_start ASC.
	// Returns ErrNotFound when the asset has no series at all.
	GetByAssetID(ctx context.Context, assetID string) ([]*domain.ReturnPoint, error)

	// GetByTimeRange retrieves points for an asset within [start, end] (inclusive).
	GetByTimeRange(ctx context.Context, assetID string, start, end int64) ([]*domain.ReturnPoint, error)
}
