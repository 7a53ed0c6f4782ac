package domain

import (
	"errors"
	"fmt"
	"math"
)

// Input clamp bounds. AgeYears is floored to avoid degenerate early-life
// behavior in age-tier branching; HistoricalGrowth is bounded to a realistic
// annualized range before any simulator consumes it.
const (
	MinEffectiveAgeYears = 0.5
	GrowthFloor          = -0.30
	GrowthCeiling        = 0.50
)

// Validation errors.
var (
	ErrNonPositiveValue = errors.New("current value must be positive")
	ErrNegativeAge      = errors.New("age years must be non-negative")
)

// AssetProfile describes one asset to be forecast.
// CurrentValue is currency-agnostic. HistoricalReturns is an optional
// ordered series of monthly fractional returns supplied by a collaborator;
// when absent, the bootstrap model falls back to a synthetic series.
type AssetProfile struct {
	AssetID           string
	Name              string
	CurrentValue      float64
	AgeYears          float64
	Licensed          bool    // license-backed assets are more resilient
	HistoricalGrowth  float64 // annualized fractional growth rate
	HistoricalReturns []float64
}

// Validate checks the profile before any simulation runs.
// Fails fast rather than silently defaulting invalid values to zero.
func (a *AssetProfile) Validate() error {
	if a.CurrentValue <= 0 || math.IsNaN(a.CurrentValue) || math.IsInf(a.CurrentValue, 0) {
		return fmt.Errorf("%w: got %v", ErrNonPositiveValue, a.CurrentValue)
	}
	if a.AgeYears < 0 || math.IsNaN(a.AgeYears) {
		return fmt.Errorf("%w: got %v", ErrNegativeAge, a.AgeYears)
	}
	return nil
}

// EffectiveAge returns AgeYears clamped to the minimum effective age.
func (a *AssetProfile) EffectiveAge() float64 {
	if a.AgeYears < MinEffectiveAgeYears {
		return MinEffectiveAgeYears
	}
	return a.AgeYears
}

// ClampedGrowth returns HistoricalGrowth bounded to [GrowthFloor, GrowthCeiling].
func (a *AssetProfile) ClampedGrowth() float64 {
	g := a.HistoricalGrowth
	if math.IsNaN(g) {
		return 0
	}
	if g < GrowthFloor {
		return GrowthFloor
	}
	if g > GrowthCeiling {
		return GrowthCeiling
	}
	return g
}
