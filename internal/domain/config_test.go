package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, model := range AllModels {
		w, ok := DefaultConfig.Weights[model]
		assert.True(t, ok, "model %s has no default weight", model)
		assert.Greater(t, w, 0.0)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestDefaultConfigRegimeProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	for _, r := range DefaultConfig.Scenario.Regimes {
		sum += r.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestConfigStepsAndDt(t *testing.T) {
	cfg := DefaultConfig
	cfg.HorizonYears = 3
	cfg.StepsPerYear = 52

	assert.Equal(t, 156, cfg.Steps())
	assert.InDelta(t, 1.0/52, cfg.Dt(), 1e-12)

	shorter := cfg.WithHorizon(1)
	assert.Equal(t, 1, shorter.HorizonYears)
	assert.Equal(t, 52, shorter.Steps())
	// Original is unchanged
	assert.Equal(t, 3, cfg.HorizonYears)
}

func TestAssetEffectiveAgeFloor(t *testing.T) {
	a := AssetProfile{AssetID: "x", CurrentValue: 100, AgeYears: 0.1}
	assert.Equal(t, MinEffectiveAgeYears, a.EffectiveAge())

	a.AgeYears = 4
	assert.Equal(t, 4.0, a.EffectiveAge())
}

func TestAssetClampedGrowth(t *testing.T) {
	tests := []struct {
		growth float64
		want   float64
	}{
		{growth: 0.05, want: 0.05},
		{growth: -0.80, want: GrowthFloor},
		{growth: 2.00, want: GrowthCeiling},
		{growth: math.Inf(1), want: GrowthCeiling},
	}
	for _, tt := range tests {
		a := AssetProfile{AssetID: "x", CurrentValue: 100, HistoricalGrowth: tt.growth}
		assert.Equal(t, tt.want, a.ClampedGrowth(), "growth %v", tt.growth)
	}
}
