package simulate

import (
	"math"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// Stress is the stress-testing model. Each step may trigger one of the
// configured events (crash, category collapse, liquidity crisis, demand
// boom); a hit applies an immediate multiplicative impact (dampened for
// licensed assets) then enters a linear recovery toward a drift-projected
// level with small noise. Outside an active event the path follows the
// baseline drift/volatility process. A hard floor bounds worst-case prices.
func Stress(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.Stress
	v0 := asset.CurrentValue
	b := newBounds(v0, cfg.Bounds)

	hardFloor := v0 * p.FloorFraction
	dt := cfg.Dt()
	sqrtDt := math.Sqrt(dt)
	steps := cfg.Steps()
	vol := p.BaseVolatility

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		price := v0
		recoveryLeft := 0
		recoveryIncr := 0.0

		for s := 0; s < steps; s++ {
			switch {
			case recoveryLeft > 0:
				price += recoveryIncr + price*p.RecoveryNoise*src.StandardNormal()
				recoveryLeft--

			default:
				if ev := sampleStress(src, p.Events, cfg.StepsPerYear); ev.kind == eventStress {
					impact := ev.stress.Impact
					if asset.Licensed && impact < 0 {
						impact *= p.LicensedImpactDamp
					}

					pre := price
					price = pre * (1 + impact)

					// Recovery targets where the pre-event price would
					// have drifted to by the end of the recovery window.
					if ev.stress.RecoverySteps > 0 {
						target := pre * math.Exp(p.BaseDrift*float64(ev.stress.RecoverySteps)*dt)
						recoveryIncr = (target - price) / float64(ev.stress.RecoverySteps)
						recoveryLeft = ev.stress.RecoverySteps
					}
				} else {
					shock := clampShock(src.StandardNormal())
					price *= math.Exp((p.BaseDrift-0.5*vol*vol)*dt + vol*sqrtDt*shock)
				}
			}

			price = b.clamp(price)
			if price < hardFloor {
				price = hardFloor
			}
		}
		paths[i] = price
	}
	return paths, nil
}
