package reporting

import "time"

// Report summarizes all stored forecasts across assets.
type Report struct {
	// Metadata
	GeneratedAt   time.Time
	AssetCount    int
	ForecastCount int

	// Per-asset summary at the longest stored horizon
	// (sorted by asset_id)
	AssetSummaries []AssetSummaryRow

	// One row per stored forecast record
	// (sorted by asset_id, generated_at, horizon_years)
	HorizonRows []HorizonRow
}

// AssetSummaryRow represents one asset's latest long-horizon outlook.
type AssetSummaryRow struct {
	AssetID        string
	CurrentValue   float64
	HorizonYears   int
	EnsembleMedian float64
	GrowthPct      float64 // median growth over the horizon, in percent
	ProbLoss       float64
	AgreementScore float64
	GeneratedAt    int64 // Unix ms
}

// HorizonRow represents one stored forecast record.
type HorizonRow struct {
	AssetID        string
	HorizonYears   int
	Paths          int
	CurrentValue   float64
	EnsembleMedian float64
	GrowthPct      float64
	P10            float64
	P90            float64
	VaR95          float64
	CVaR95         float64
	ProbLoss       float64
	AgreementScore float64
	GeneratedAt    int64 // Unix ms
}
