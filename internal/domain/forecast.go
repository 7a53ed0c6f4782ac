package domain

// EnsembleResult is the combined forecast for one asset at one horizon.
// All fields are computed once and treated as immutable afterwards;
// persistence is the caller's responsibility.
type EnsembleResult struct {
	HorizonYears int

	Combined   PathSet
	Ensemble   *Statistics
	ModelStats map[Model]*Statistics
	Weights    map[Model]float64

	// AgreementScore in [0,100] quantifies how closely the six models'
	// median growth rates agree. Low agreement is surfaced, not hidden.
	AgreementScore float64

	// Warnings flags configuration mismatches (model weighted but absent
	// from results, or present but unweighted). Never fatal.
	Warnings []string
}

// YearlyProjection is one row of the multi-horizon projection sequence.
type YearlyProjection struct {
	Year      int
	Median    float64
	GrowthPct float64
	P10       float64 // lower bound of the 80% confidence interval
	P90       float64 // upper bound of the 80% confidence interval
	ProbLoss  float64
}

// ForecastReport is the full orchestrator output for one asset.
type ForecastReport struct {
	AssetID      string
	AssetName    string
	CurrentValue float64
	GeneratedAt  int64 // Unix timestamp in milliseconds

	// Primary is the result at the configured primary horizon.
	Primary *EnsembleResult

	// Projections holds one row per requested horizon year.
	Projections []YearlyProjection

	// Recommendations derived purely from the computed risk/return numbers.
	Recommendations []string
}

// ForecastRecord is the flat, schema-stable persistence row for one
// forecast at one horizon. Corresponds to the forecasts table in PostgreSQL.
type ForecastRecord struct {
	ForecastID   string // PRIMARY KEY, deterministic hash
	AssetID      string
	CurrentValue float64
	HorizonYears int
	Paths        int
	Seed         int64
	GeneratedAt  int64 // Unix timestamp in milliseconds

	// Per-model median terminal values
	MonteCarloMedian float64
	ScenarioMedian   float64
	StressMedian     float64
	BootstrapMedian  float64
	GARCHMedian      float64
	BayesianMedian   float64

	// Ensemble distribution
	EnsembleMean   float64
	EnsembleMedian float64
	EnsembleStdDev float64
	EnsembleP10    float64
	EnsembleP90    float64

	// Risk metrics
	VaR95    float64
	CVaR95   float64
	ProbLoss float64

	AgreementScore float64
}
