// Package forecast provides the multi-horizon orchestrator. It runs the
// full model set independently per horizon year, combines each horizon into
// an ensemble forecast, and assembles the final report with yearly
// projections, a model-agreement score and numeric recommendations.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/ensemble"
	"valuation-lab/internal/observability"
	"valuation-lab/internal/randvar"
	"valuation-lab/internal/simulate"
	"valuation-lab/internal/stats"
	"valuation-lab/internal/storage"
)

// Runner executes ensemble forecasts for assets.
type Runner struct {
	cfg  domain.SimulationConfig
	seed int64

	// Optional stores. When nil the corresponding step is skipped:
	// no return-series lookup, no persistence.
	returnSeriesStore storage.ReturnSeriesStore
	forecastStore     storage.ForecastStore

	verbose bool
}

// Options contains configuration for creating a Runner.
type Options struct {
	// Config defaults to domain.DefaultConfig when nil.
	Config *domain.SimulationConfig

	// Seed fixes the random streams for reproducible runs.
	// Zero selects a non-deterministic wall-clock seed.
	Seed int64

	ReturnSeriesStore storage.ReturnSeriesStore
	ForecastStore     storage.ForecastStore

	Verbose bool
}

// New creates a forecast runner.
func New(opts Options) *Runner {
	cfg := domain.DefaultConfig
	if opts.Config != nil {
		cfg = *opts.Config
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg:               cfg,
		seed:              seed,
		returnSeriesStore: opts.ReturnSeriesStore,
		forecastStore:     opts.ForecastStore,
		verbose:           opts.Verbose,
	}
}

// Run executes the full forecast for one asset.
// Steps:
//  1. Validate the asset profile (fail fast, before any simulation)
//  2. Load the historical return series if a store is configured
//  3. Run all six models per horizon year, 1..HorizonYears
//  4. Combine per horizon and assemble yearly projections
//  5. Derive recommendations from the primary-horizon numbers
//  6. Persist one ForecastRecord per horizon when a store is configured
func (r *Runner) Run(ctx context.Context, asset *domain.AssetProfile) (*domain.ForecastReport, error) {
	start := time.Now()

	// 1. Validate before any simulation runs.
	if err := asset.Validate(); err != nil {
		return nil, fmt.Errorf("validate asset %s: %w", asset.AssetID, err)
	}

	// 2. Load historical returns when the asset carries none.
	if len(asset.HistoricalReturns) == 0 && r.returnSeriesStore != nil {
		points, err := r.returnSeriesStore.GetByAssetID(ctx, asset.AssetID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("load return series for %s: %w", asset.AssetID, err)
		}
		if len(points) > 0 {
			withReturns := *asset
			withReturns.HistoricalReturns = make([]float64, len(points))
			for i, p := range points {
				withReturns.HistoricalReturns[i] = p.Return
			}
			asset = &withReturns
			r.log("loaded %d return points for %s", len(points), asset.AssetID)
		}
	}

	report := &domain.ForecastReport{
		AssetID:      asset.AssetID,
		AssetName:    asset.Name,
		CurrentValue: asset.CurrentValue,
		GeneratedAt:  time.Now().UnixMilli(),
	}

	// 3+4. One independent full run per horizon year. Cancellation stops
	// issuing further horizon runs; completed horizons are discarded with
	// the error since a partial report would be misleading.
	for year := 1; year <= r.cfg.HorizonYears; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := r.runHorizon(asset, year)
		if err != nil {
			return nil, fmt.Errorf("horizon %dy: %w", year, err)
		}

		report.Projections = append(report.Projections, domain.YearlyProjection{
			Year:      year,
			Median:    result.Ensemble.Median,
			GrowthPct: result.Ensemble.MedianGrowthPct,
			P10:       result.Ensemble.P10,
			P90:       result.Ensemble.P90,
			ProbLoss:  result.Ensemble.ProbLoss,
		})

		if year == r.cfg.HorizonYears {
			report.Primary = result
		}

		// 6. Persist the flat record for this horizon.
		if r.forecastStore != nil {
			record := BuildRecord(asset, result, &r.cfg, r.seed, report.GeneratedAt)
			if err := r.forecastStore.Insert(ctx, record); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
				return nil, fmt.Errorf("persist forecast for %s: %w", asset.AssetID, err)
			}
		}
	}

	// 5. Recommendations from the primary horizon only.
	if report.Primary != nil {
		report.Recommendations = recommendations(report.Primary)
	}

	observability.RecordForecastRun(asset.AssetID, time.Since(start).Seconds())
	r.log("forecast for %s completed in %s", asset.AssetID, time.Since(start))

	return report, nil
}

// runHorizon executes all six models for one horizon year and combines
// them. Each (horizon, model) pair gets its own derived random stream, so
// results are reproducible regardless of execution order.
func (r *Runner) runHorizon(asset *domain.AssetProfile, year int) (*domain.EnsembleResult, error) {
	cfg := r.cfg.WithHorizon(year)

	results := make(map[domain.Model]domain.PathSet, len(domain.AllModels))
	modelStats := make(map[domain.Model]*domain.Statistics, len(domain.AllModels))

	for i, model := range domain.AllModels {
		src := randvar.Derive(r.seed, year*len(domain.AllModels)+i)

		paths, err := simulate.Run(model, asset, &cfg, src)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", model, err)
		}
		results[model] = paths
		modelStats[model] = stats.Summarize(paths, asset.CurrentValue)
		observability.RecordModelRun(model.String(), len(paths))
	}

	combined, warnings := ensemble.Combine(results, cfg.Weights)
	for _, w := range warnings {
		r.log("horizon %dy: %s", year, w)
	}

	medianGrowths := make([]float64, 0, len(domain.AllModels))
	for _, model := range domain.AllModels {
		if s, ok := modelStats[model]; ok {
			medianGrowths = append(medianGrowths, s.MedianGrowthPct)
		}
	}

	return &domain.EnsembleResult{
		HorizonYears:   year,
		Combined:       combined,
		Ensemble:       stats.Summarize(combined, asset.CurrentValue),
		ModelStats:     modelStats,
		Weights:        cfg.Weights,
		AgreementScore: ensemble.AgreementScore(medianGrowths),
		Warnings:       warnings,
	}, nil
}

func (r *Runner) log(format string, args ...interface{}) {
	if r.verbose {
		log.Printf("[forecast] "+format, args...)
	}
}
