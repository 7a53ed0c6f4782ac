package simulate

import (
	"math"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// MonteCarlo is the jump-diffusion + mean-reversion model. Each step
// combines a clamped Student-t shock, an age-gated probabilistic jump, an
// Ornstein-Uhlenbeck pull toward a fair value derived from clamped
// historical growth, and a small monthly seasonality term.
func MonteCarlo(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.MonteCarlo
	v0 := asset.CurrentValue
	b := newBounds(v0, cfg.Bounds)

	tier := tierFor(asset.EffectiveAge())
	drift, vol := tier.adjust(p.BaseDrift, p.BaseVolatility)

	// Jumps model discrete repricing events in the maturing phase only;
	// young assets are already high-vol and settled assets rarely gap.
	jumpIntensity := 0.0
	if tier == tierMaturing {
		jumpIntensity = p.JumpIntensity
	}

	// Mean-reversion anchor: one clamped-growth year ahead of current value.
	fairValue := v0 * (1 + asset.ClampedGrowth())

	dt := cfg.Dt()
	sqrtDt := math.Sqrt(dt)
	steps := cfg.Steps()

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		price := v0
		for s := 0; s < steps; s++ {
			shock := clampShock(src.StudentT(p.DegreesOfFreedom))
			logRet := (drift-0.5*vol*vol)*dt + vol*sqrtDt*shock

			if ev := sampleJump(src, jumpIntensity, p.MeanJumpSize, dt); ev.kind == eventJump {
				logRet += ev.jumpSize
			}

			// OU pull toward fair value in log space. price is always
			// positive here (bounds invariant), so the log is safe.
			logRet += p.MeanReversionSpeed * math.Log(fairValue/price) * dt

			// Seasonality indexed by simulated calendar month.
			if cfg.StepsPerYear > 0 {
				month := (s * 12 / cfg.StepsPerYear) % 12
				logRet += p.SeasonalityAmplitude * math.Sin(2*math.Pi*float64(month)/12)
			}

			price = b.update(price, logRet)
		}
		paths[i] = price
	}
	return paths, nil
}
