package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/observability"
	"valuation-lab/internal/storage"
)

// ForecastStore implements storage.ForecastStore using PostgreSQL.
type ForecastStore struct {
	pool *Pool
}

// NewForecastStore creates a new ForecastStore.
func NewForecastStore(pool *Pool) *ForecastStore {
	return &ForecastStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ForecastStore = (*ForecastStore)(nil)

const forecastColumns = `
	forecast_id, asset_id, current_value, horizon_years, paths, seed, generated_at,
	monte_carlo_median, scenario_median, stress_median, bootstrap_median, garch_median, bayesian_median,
	ensemble_mean, ensemble_median, ensemble_stddev, ensemble_p10, ensemble_p90,
	var_95, cvar_95, prob_loss, agreement_score
`

// Insert adds a new forecast record. Returns ErrDuplicateKey if forecast_id exists.
func (s *ForecastStore) Insert(ctx context.Context, r *domain.ForecastRecord) error {
	query := `
		INSERT INTO forecasts (` + forecastColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	start := time.Now()
	_, err := s.pool.Exec(ctx, query,
		r.ForecastID,
		r.AssetID,
		r.CurrentValue,
		r.HorizonYears,
		r.Paths,
		r.Seed,
		r.GeneratedAt,
		r.MonteCarloMedian,
		r.ScenarioMedian,
		r.StressMedian,
		r.BootstrapMedian,
		r.GARCHMedian,
		r.BayesianMedian,
		r.EnsembleMean,
		r.EnsembleMedian,
		r.EnsembleStdDev,
		r.EnsembleP10,
		r.EnsembleP90,
		r.VaR95,
		r.CVaR95,
		r.ProbLoss,
		r.AgreementScore,
	)
	observability.RecordDBQuery("postgres", "insert_forecast", time.Since(start).Seconds(), err)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert forecast: %w", err)
	}
	return nil
}

// GetByID retrieves a forecast by its ID. Returns ErrNotFound if not exists.
func (s *ForecastStore) GetByID(ctx context.Context, forecastID string) (*domain.ForecastRecord, error) {
	query := `
		SELECT ` + forecastColumns + `
		FROM forecasts
		WHERE forecast_id = $1
	`

	row := s.pool.QueryRow(ctx, query, forecastID)
	r, err := scanForecast(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get forecast by id: %w", err)
	}
	return r, nil
}

// GetByAssetID retrieves all forecasts for an asset, ordered by
// generated_at ASC, then horizon_years ASC.
func (s *ForecastStore) GetByAssetID(ctx context.Context, assetID string) ([]*domain.ForecastRecord, error) {
	query := `
		SELECT ` + forecastColumns + `
		FROM forecasts
		WHERE asset_id = $1
		ORDER BY generated_at ASC, horizon_years ASC
	`

	rows, err := s.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("get forecasts by asset id: %w", err)
	}
	defer rows.Close()

	return scanForecasts(rows)
}

// GetAll retrieves all forecast records.
func (s *ForecastStore) GetAll(ctx context.Context) ([]*domain.ForecastRecord, error) {
	query := `
		SELECT ` + forecastColumns + `
		FROM forecasts
		ORDER BY generated_at ASC, asset_id ASC, horizon_years ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all forecasts: %w", err)
	}
	defer rows.Close()

	return scanForecasts(rows)
}

// scanForecast scans a single row into a ForecastRecord.
func scanForecast(row pgx.Row) (*domain.ForecastRecord, error) {
	var r domain.ForecastRecord

	err := row.Scan(
		&r.ForecastID,
		&r.AssetID,
		&r.CurrentValue,
		&r.HorizonYears,
		&r.Paths,
		&r.Seed,
		&r.GeneratedAt,
		&r.MonteCarloMedian,
		&r.ScenarioMedian,
		&r.StressMedian,
		&r.BootstrapMedian,
		&r.GARCHMedian,
		&r.BayesianMedian,
		&r.EnsembleMean,
		&r.EnsembleMedian,
		&r.EnsembleStdDev,
		&r.EnsembleP10,
		&r.EnsembleP90,
		&r.VaR95,
		&r.CVaR95,
		&r.ProbLoss,
		&r.AgreementScore,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// scanForecasts scans multiple rows into a slice of ForecastRecord.
func scanForecasts(rows pgx.Rows) ([]*domain.ForecastRecord, error) {
	var records []*domain.ForecastRecord

	for rows.Next() {
		r, err := scanForecast(rows)
		if err != nil {
			return nil, fmt.Errorf("scan forecast row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forecast rows: %w", err)
	}

	return records, nil
}
