package simulate

import (
	"math"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// Bayesian blends a conservative prior with the asset's observed growth via
// a fixed likelihood weight, then lets every path sample its own drift from
// the posterior before running a standard log-price walk. This models
// parameter uncertainty on top of return uncertainty.
func Bayesian(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.Bayesian
	v0 := asset.CurrentValue
	b := newBounds(v0, cfg.Bounds)

	posteriorMean, posteriorVar := posterior(asset, p)
	posteriorStd := math.Sqrt(posteriorVar)

	vol := p.Volatility
	dt := cfg.Dt()
	sqrtDt := math.Sqrt(dt)
	steps := cfg.Steps()

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		// Per-path drift drawn from the posterior, re-clamped to the
		// same realistic band as the posterior mean.
		drift := clampDrift(posteriorMean+posteriorStd*src.StandardNormal(), p)

		price := v0
		for s := 0; s < steps; s++ {
			shock := clampShock(src.StandardNormal())
			price = b.update(price, (drift-0.5*vol*vol)*dt+vol*sqrtDt*shock)
		}
		paths[i] = price
	}
	return paths, nil
}

// posterior combines prior and observed growth. The likelihood weight
// shifts the mean toward the observation and shrinks the variance.
func posterior(asset *domain.AssetProfile, p domain.BayesianParams) (mean, variance float64) {
	observed := asset.ClampedGrowth()
	mean = (1-p.LikelihoodWeight)*p.PriorMean + p.LikelihoodWeight*observed

	if tierFor(asset.EffectiveAge()) == tierSettled {
		mean += p.SettledAdjustment
	}
	if asset.Licensed {
		mean += p.LicensedAdjustment
	}

	mean = clampDrift(mean, p)
	variance = p.PriorVariance * (1 - p.LikelihoodWeight)
	return mean, variance
}

func clampDrift(d float64, p domain.BayesianParams) float64 {
	if d < p.DriftFloor {
		return p.DriftFloor
	}
	if d > p.DriftCeiling {
		return p.DriftCeiling
	}
	return d
}
