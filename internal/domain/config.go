package domain

// SimulationConfig carries every parameter the ensemble needs for one run.
// It is an explicit value passed into each simulator; there is no
// process-wide mutable configuration state.
type SimulationConfig struct {
	Paths        int // terminal values per model (N)
	HorizonYears int
	StepsPerYear int // discrete steps per simulated year

	// Weights maps each model to its share of the combined forecast.
	// Must sum to 1.0; verified by tests, not enforced at runtime.
	Weights map[Model]float64

	Bounds     BoundsParams
	MonteCarlo MonteCarloParams
	Scenario   ScenarioParams
	Stress     StressParams
	Bootstrap  BootstrapParams
	GARCH      GARCHParams
	Bayesian   BayesianParams
}

// Steps returns the total step count for the configured horizon.
func (c *SimulationConfig) Steps() int {
	return c.HorizonYears * c.StepsPerYear
}

// Dt returns the time increment per step in years.
func (c *SimulationConfig) Dt() float64 {
	if c.StepsPerYear == 0 {
		return 0
	}
	return 1.0 / float64(c.StepsPerYear)
}

// WithHorizon returns a copy of the config with a different horizon.
// Used by the multi-horizon orchestrator; everything else is shared.
func (c *SimulationConfig) WithHorizon(years int) SimulationConfig {
	out := *c
	out.HorizonYears = years
	return out
}

// BoundsParams bound every simulated price relative to the asset's current
// value. Clamping (never discarding) models real-world illiquid-asset price
// floors and ceilings and keeps pathological steps from dominating the
// percentile statistics.
type BoundsParams struct {
	FloorFraction   float64 // price never below FloorFraction * currentValue
	CeilingMultiple float64 // price never above CeilingMultiple * currentValue
}

// MonteCarloParams configures the jump-diffusion + mean-reversion model.
type MonteCarloParams struct {
	BaseDrift            float64 // annualized log drift before age adjustment
	BaseVolatility       float64 // annualized before age adjustment
	DegreesOfFreedom     float64 // Student-t shock fat-tailedness
	JumpIntensity        float64 // expected jumps per year for maturing assets
	MeanJumpSize         float64 // mean absolute log jump size
	MeanReversionSpeed   float64 // pull strength toward fair value
	SeasonalityAmplitude float64 // monthly seasonal log adjustment
}

// Regime is one named scenario with its own drift and volatility.
type Regime struct {
	Name        string
	Probability float64 // selection weight; regimes selected cumulatively
	Drift       float64
	Volatility  float64
}

// ScenarioParams configures the regime-switching scenario model.
// The last regime is the fall-through default when rounding leaves the
// cumulative probability short of 1.0.
type ScenarioParams struct {
	Regimes           []Regime
	SettledDriftBonus float64 // added to drift for settled assets
	SettledVolDamp    float64 // multiplies volatility for settled assets
}

// StressEvent is one discrete shock with a recovery profile.
type StressEvent struct {
	Name              string
	AnnualProbability float64
	Impact            float64 // multiplicative price impact, e.g. -0.35
	RecoverySteps     int     // linear recovery duration after the hit
}

// StressParams configures the stress-testing model.
type StressParams struct {
	Events             []StressEvent
	BaseDrift          float64
	BaseVolatility     float64
	FloorFraction      float64 // hard worst-case floor, e.g. 0.10
	RecoveryNoise      float64 // small per-step noise during recovery
	LicensedImpactDamp float64 // scales negative impact for licensed assets
}

// BootstrapParams configures the resampling model.
type BootstrapParams struct {
	SyntheticMonthlyVol float64 // vol of the synthetic fallback series
	ReturnClamp         float64 // per-draw |return| bound before compounding
	FloorMultiple       float64 // terminal clamp, e.g. 0.5
	CeilingMultiple     float64 // terminal clamp, e.g. 3.0
	AllowSynthetic      bool    // permit synthetic series when history absent
}

// GARCHParams configures the GARCH(1,1) volatility-clustering model.
// Per-step conditional variance: omega + alpha*r² + beta*prevVariance.
type GARCHParams struct {
	Omega             float64
	Alpha             float64
	Beta              float64
	BaseDrift         float64
	SettledDriftBonus float64
	InitialVolatility float64 // annualized, seeds the variance recursion
}

// BayesianParams configures the posterior-drift model. Each path samples its
// own drift from the posterior, modeling parameter uncertainty on top of
// return uncertainty.
type BayesianParams struct {
	PriorMean          float64
	PriorVariance      float64
	LikelihoodWeight   float64 // weight of observed growth vs prior
	SettledAdjustment  float64 // additive drift adjustment for settled assets
	LicensedAdjustment float64 // additive drift adjustment for licensed assets
	DriftFloor         float64 // posterior drift clamp band
	DriftCeiling       float64
	Volatility         float64 // annualized path volatility
}

// Regime name constants for the default configuration.
const (
	RegimeBull = "bull"
	RegimeBase = "base"
	RegimeBear = "bear"
)

// Stress event name constants for the default configuration.
const (
	StressMarketCrash      = "MARKET_CRASH"
	StressCategoryCollapse = "CATEGORY_COLLAPSE"
	StressLiquidityCrisis  = "LIQUIDITY_CRISIS"
	StressDemandBoom       = "DEMAND_BOOM"
)

// DefaultConfig is the calibrated production configuration.
// Weights sum to 1.0 (verified by tests in internal/ensemble).
var DefaultConfig = SimulationConfig{
	Paths:        10_000,
	HorizonYears: 1,
	StepsPerYear: 52,
	Weights: map[Model]float64{
		ModelMonteCarlo: 0.30,
		ModelScenario:   0.15,
		ModelStress:     0.10,
		ModelBootstrap:  0.15,
		ModelGARCH:      0.15,
		ModelBayesian:   0.15,
	},
	Bounds: BoundsParams{
		FloorFraction:   0.10,
		CeilingMultiple: 4.0,
	},
	MonteCarlo: MonteCarloParams{
		BaseDrift:            0.05,
		BaseVolatility:       0.15,
		DegreesOfFreedom:     4,
		JumpIntensity:        0.4,
		MeanJumpSize:         0.12,
		MeanReversionSpeed:   0.8,
		SeasonalityAmplitude: 0.004,
	},
	Scenario: ScenarioParams{
		Regimes: []Regime{
			{Name: RegimeBull, Probability: 0.25, Drift: 0.18, Volatility: 0.20},
			{Name: RegimeBase, Probability: 0.50, Drift: 0.06, Volatility: 0.12},
			{Name: RegimeBear, Probability: 0.25, Drift: -0.08, Volatility: 0.25},
		},
		SettledDriftBonus: 0.02,
		SettledVolDamp:    0.80,
	},
	Stress: StressParams{
		Events: []StressEvent{
			{Name: StressMarketCrash, AnnualProbability: 0.08, Impact: -0.35, RecoverySteps: 26},
			{Name: StressCategoryCollapse, AnnualProbability: 0.05, Impact: -0.50, RecoverySteps: 39},
			{Name: StressLiquidityCrisis, AnnualProbability: 0.07, Impact: -0.25, RecoverySteps: 13},
			{Name: StressDemandBoom, AnnualProbability: 0.06, Impact: 0.40, RecoverySteps: 20},
		},
		BaseDrift:          0.05,
		BaseVolatility:     0.12,
		FloorFraction:      0.10,
		RecoveryNoise:      0.01,
		LicensedImpactDamp: 0.60,
	},
	Bootstrap: BootstrapParams{
		SyntheticMonthlyVol: 0.05,
		ReturnClamp:         0.25,
		FloorMultiple:       0.5,
		CeilingMultiple:     3.0,
		AllowSynthetic:      true,
	},
	GARCH: GARCHParams{
		Omega:             0.00004,
		Alpha:             0.10,
		Beta:              0.85,
		BaseDrift:         0.05,
		SettledDriftBonus: 0.02,
		InitialVolatility: 0.15,
	},
	Bayesian: BayesianParams{
		PriorMean:          0.04,
		PriorVariance:      0.01,
		LikelihoodWeight:   0.6,
		SettledAdjustment:  0.01,
		LicensedAdjustment: 0.015,
		DriftFloor:         -0.10,
		DriftCeiling:       0.25,
		Volatility:         0.14,
	},
}
