// Package reporting turns stored forecast records into human-readable
// summaries. It reads only from storage, so a report can be regenerated at
// any time without re-running simulations.
package reporting

import (
	"context"
	"sort"
	"time"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/storage"
)

// Generator produces reports from stored forecasts.
type Generator struct {
	forecastStore storage.ForecastStore
	now           func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(forecastStore storage.ForecastStore) *Generator {
	return &Generator{
		forecastStore: forecastStore,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete report over all stored forecasts.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	records, err := g.forecastStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	assetSet := make(map[string]struct{})
	rows := make([]HorizonRow, 0, len(records))
	for _, r := range records {
		assetSet[r.AssetID] = struct{}{}
		rows = append(rows, horizonRow(r))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AssetID != rows[j].AssetID {
			return rows[i].AssetID < rows[j].AssetID
		}
		if rows[i].GeneratedAt != rows[j].GeneratedAt {
			return rows[i].GeneratedAt < rows[j].GeneratedAt
		}
		return rows[i].HorizonYears < rows[j].HorizonYears
	})

	return &Report{
		GeneratedAt:    g.now(),
		AssetCount:     len(assetSet),
		ForecastCount:  len(records),
		AssetSummaries: summarizeAssets(records),
		HorizonRows:    rows,
	}, nil
}

// GenerateForAsset produces a report restricted to one asset.
func (g *Generator) GenerateForAsset(ctx context.Context, assetID string) (*Report, error) {
	records, err := g.forecastStore.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	rows := make([]HorizonRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, horizonRow(r))
	}

	assetCount := 0
	if len(records) > 0 {
		assetCount = 1
	}

	return &Report{
		GeneratedAt:    g.now(),
		AssetCount:     assetCount,
		ForecastCount:  len(records),
		AssetSummaries: summarizeAssets(records),
		HorizonRows:    rows,
	}, nil
}

// summarizeAssets picks, per asset, the most recent record at the longest
// horizon.
func summarizeAssets(records []*domain.ForecastRecord) []AssetSummaryRow {
	best := make(map[string]*domain.ForecastRecord)
	for _, r := range records {
		cur, ok := best[r.AssetID]
		if !ok || r.GeneratedAt > cur.GeneratedAt ||
			(r.GeneratedAt == cur.GeneratedAt && r.HorizonYears > cur.HorizonYears) {
			best[r.AssetID] = r
		}
	}

	summaries := make([]AssetSummaryRow, 0, len(best))
	for _, r := range best {
		summaries = append(summaries, AssetSummaryRow{
			AssetID:        r.AssetID,
			CurrentValue:   r.CurrentValue,
			HorizonYears:   r.HorizonYears,
			EnsembleMedian: r.EnsembleMedian,
			GrowthPct:      growthPct(r),
			ProbLoss:       r.ProbLoss,
			AgreementScore: r.AgreementScore,
			GeneratedAt:    r.GeneratedAt,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].AssetID < summaries[j].AssetID
	})

	return summaries
}

func horizonRow(r *domain.ForecastRecord) HorizonRow {
	return HorizonRow{
		AssetID:        r.AssetID,
		HorizonYears:   r.HorizonYears,
		Paths:          r.Paths,
		CurrentValue:   r.CurrentValue,
		EnsembleMedian: r.EnsembleMedian,
		GrowthPct:      growthPct(r),
		P10:            r.EnsembleP10,
		P90:            r.EnsembleP90,
		VaR95:          r.VaR95,
		CVaR95:         r.CVaR95,
		ProbLoss:       r.ProbLoss,
		AgreementScore: r.AgreementScore,
		GeneratedAt:    r.GeneratedAt,
	}
}

func growthPct(r *domain.ForecastRecord) float64 {
	if r.CurrentValue == 0 {
		return 0
	}
	return (r.EnsembleMedian/r.CurrentValue - 1) * 100
}
