package simulate

import (
	"math"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// Scenario is the regime-switching model. Each path independently draws one
// regime (bull/base/bear by default) whose drift and volatility hold for the
// entire path. Settled assets get a drift bonus and damped volatility.
func Scenario(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.Scenario
	v0 := asset.CurrentValue
	b := newBounds(v0, cfg.Bounds)
	settled := tierFor(asset.EffectiveAge()) == tierSettled

	dt := cfg.Dt()
	sqrtDt := math.Sqrt(dt)
	steps := cfg.Steps()

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		regime := pickRegime(src, p.Regimes)
		drift := regime.Drift
		vol := regime.Volatility
		if settled {
			drift += p.SettledDriftBonus
			vol *= p.SettledVolDamp
		}

		price := v0
		for s := 0; s < steps; s++ {
			shock := clampShock(src.StandardNormal())
			price = b.update(price, (drift-0.5*vol*vol)*dt+vol*sqrtDt*shock)
		}
		paths[i] = price
	}
	return paths, nil
}
