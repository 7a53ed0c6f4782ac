package simulate

import (
	"errors"
	"fmt"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// ErrNoReturnSeries is returned when the asset has no historical return
// series and the synthetic fallback is disabled.
var ErrNoReturnSeries = errors.New("bootstrap: no historical return series and synthetic fallback disabled")

// Bootstrap resamples monthly returns with replacement, from the asset's
// historical series when present, otherwise from a synthetic series whose
// mean derives from clamped historical growth at a fixed conservative
// monthly volatility. Drawn returns are clamped before compounding and
// terminal values are clamped to a bounded multiple range.
func Bootstrap(asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	p := cfg.Bootstrap
	v0 := asset.CurrentValue

	returns := asset.HistoricalReturns
	if len(returns) == 0 {
		if !p.AllowSynthetic {
			return nil, fmt.Errorf("%w: asset %s", ErrNoReturnSeries, asset.AssetID)
		}
		returns = syntheticReturns(asset, p, src)
	}

	floor := v0 * p.FloorMultiple
	ceiling := v0 * p.CeilingMultiple
	months := cfg.HorizonYears * 12

	paths := make(domain.PathSet, cfg.Paths)
	for i := range paths {
		price := v0
		for m := 0; m < months; m++ {
			r := returns[int(src.Uniform()*float64(len(returns)))%len(returns)]
			if r > p.ReturnClamp {
				r = p.ReturnClamp
			}
			if r < -p.ReturnClamp {
				r = -p.ReturnClamp
			}
			price *= 1 + r
			// Clamping every compounding step keeps the terminal range
			// tight without discarding paths.
			if price < floor {
				price = floor
			}
			if price > ceiling {
				price = ceiling
			}
		}
		paths[i] = price
	}
	return paths, nil
}

// syntheticReturns builds a 36-month stand-in series: mean from clamped
// annual growth spread across months, fixed conservative volatility.
func syntheticReturns(asset *domain.AssetProfile, p domain.BootstrapParams, src *randvar.Source) []float64 {
	const syntheticMonths = 36

	monthlyMean := asset.ClampedGrowth() / 12
	out := make([]float64, syntheticMonths)
	for i := range out {
		out[i] = monthlyMean + p.SyntheticMonthlyVol*src.StandardNormal()
	}
	return out
}
