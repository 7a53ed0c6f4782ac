package forecast

import (
	"valuation-lab/internal/domain"
	"valuation-lab/internal/idhash"
)

// BuildRecord flattens one horizon's ensemble result into the
// schema-stable persistence row.
func BuildRecord(asset *domain.AssetProfile, result *domain.EnsembleResult, cfg *domain.SimulationConfig, seed, generatedAt int64) *domain.ForecastRecord {
	modelMedian := func(m domain.Model) float64 {
		if s, ok := result.ModelStats[m]; ok {
			return s.Median
		}
		return 0
	}

	e := result.Ensemble
	return &domain.ForecastRecord{
		ForecastID:   idhash.ComputeForecastID(asset.AssetID, result.HorizonYears, cfg.Paths, cfg.StepsPerYear, seed),
		AssetID:      asset.AssetID,
		CurrentValue: asset.CurrentValue,
		HorizonYears: result.HorizonYears,
		Paths:        cfg.Paths,
		Seed:         seed,
		GeneratedAt:  generatedAt,

		MonteCarloMedian: modelMedian(domain.ModelMonteCarlo),
		ScenarioMedian:   modelMedian(domain.ModelScenario),
		StressMedian:     modelMedian(domain.ModelStress),
		BootstrapMedian:  modelMedian(domain.ModelBootstrap),
		GARCHMedian:      modelMedian(domain.ModelGARCH),
		BayesianMedian:   modelMedian(domain.ModelBayesian),

		EnsembleMean:   e.Mean,
		EnsembleMedian: e.Median,
		EnsembleStdDev: e.StdDev,
		EnsembleP10:    e.P10,
		EnsembleP90:    e.P90,

		VaR95:    e.VaR95,
		CVaR95:   e.CVaR95,
		ProbLoss: e.ProbLoss,

		AgreementScore: result.AgreementScore,
	}
}
