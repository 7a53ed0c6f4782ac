package simulate

import (
	"math"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// GARCH is the GARCH(1,1) volatility-clustering model. The per-step
// conditional variance follows omega + alpha*r^2 + beta*prevVariance, so
// the scale of each shock evolves with the path's own history, not just
// its mean. Settled assets receive a flat drift bonus.
func GARCH(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.GARCH
	v0 := asset.CurrentValue
	b := newBounds(v0, cfg.Bounds)

	drift := p.BaseDrift
	if tierFor(asset.EffectiveAge()) == tierSettled {
		drift += p.SettledDriftBonus
	}

	dt := cfg.Dt()
	steps := cfg.Steps()
	initialVariance := p.InitialVolatility * p.InitialVolatility * dt

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		price := v0
		variance := initialVariance

		for s := 0; s < steps; s++ {
			if variance <= 0 || math.IsNaN(variance) {
				variance = initialVariance
			}
			stepVol := math.Sqrt(variance)

			shock := clampShock(src.StandardNormal())
			logRet := (drift*dt - 0.5*variance) + stepVol*shock
			price = b.update(price, logRet)

			// Shock feeds back into next step's variance.
			variance = p.Omega + p.Alpha*logRet*logRet + p.Beta*variance
		}
		paths[i] = price
	}
	return paths, nil
}
