package simulate

import (
	"math"

	"valuation-lab/internal/domain"
)

// shockClamp bounds every random shock before it scales a step's return.
// randvar already clamps raw variates to +/-10; this is the tighter band
// applied at the point of use.
const shockClamp = 4.0

// bounds is the shared bounded-price-update primitive used by all six
// simulators: apply a log return, then recover non-finite or non-positive
// prices and clamp into [floor, ceiling]. Recovery resets to the asset's
// current value rather than aborting or discarding the path.
type bounds struct {
	floor    float64
	ceiling  float64
	fallback float64 // reset value for degenerate intermediate prices
}

func newBounds(currentValue float64, p domain.BoundsParams) bounds {
	return bounds{
		floor:    currentValue * p.FloorFraction,
		fallback: currentValue,
		ceiling:  currentValue * p.CeilingMultiple,
	}
}

// update applies a log return to price and clamps the result.
func (b bounds) update(price, logReturn float64) float64 {
	return b.clamp(price * math.Exp(logReturn))
}

// clamp recovers degenerate prices and enforces the floor/ceiling.
func (b bounds) clamp(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		price = b.fallback
	}
	if price < b.floor {
		return b.floor
	}
	if price > b.ceiling {
		return b.ceiling
	}
	return price
}

// clampShock bounds a raw variate to the shock band.
func clampShock(v float64) float64 {
	if v < -shockClamp {
		return -shockClamp
	}
	if v > shockClamp {
		return shockClamp
	}
	return v
}

// ageTier buckets effective age into the three empirical volatility regimes.
type ageTier int

const (
	tierYoung    ageTier = iota // < 2 years: high uncertainty
	tierMaturing                // 2-6 years: growth phase, jump-prone
	tierSettled                 // >= 6 years: established, damped
)

func tierFor(effectiveAge float64) ageTier {
	switch {
	case effectiveAge < 2:
		return tierYoung
	case effectiveAge < 6:
		return tierMaturing
	default:
		return tierSettled
	}
}

// adjust scales base drift and volatility for the tier.
func (t ageTier) adjust(drift, vol float64) (float64, float64) {
	switch t {
	case tierYoung:
		return drift * 0.7, vol * 1.5
	case tierMaturing:
		return drift * 1.2, vol * 1.1
	default:
		return drift * 0.9, vol * 0.7
	}
}
