package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
	"valuation-lab/internal/stats"
)

func TestStressHardFloorHolds(t *testing.T) {
	asset := testAsset()
	cfg := testConfig(5000, 3)

	// Brutal configuration: frequent deep crashes with no recovery.
	cfg.Stress.Events = []domain.StressEvent{
		{Name: domain.StressMarketCrash, AnnualProbability: 10, Impact: -0.80, RecoverySteps: 0},
	}

	paths, err := Stress(asset, cfg, randvar.New(42))
	require.NoError(t, err)

	floor := asset.CurrentValue * cfg.Stress.FloorFraction
	for i, v := range paths {
		require.GreaterOrEqual(t, v, floor, "path %d broke the hard floor", i)
	}
}

func TestStressLicensedResilience(t *testing.T) {
	cfg := testConfig(5000, 1)

	// Force crashes to be common so dampening is measurable.
	cfg.Stress.Events = []domain.StressEvent{
		{Name: domain.StressMarketCrash, AnnualProbability: 2.0, Impact: -0.40, RecoverySteps: 10},
	}

	licensed := &domain.AssetProfile{AssetID: "l", CurrentValue: 1000, AgeYears: 3, Licensed: true}
	generic := &domain.AssetProfile{AssetID: "g", CurrentValue: 1000, AgeYears: 3, Licensed: false}

	licensedPaths, err := Stress(licensed, cfg, randvar.New(99))
	require.NoError(t, err)
	genericPaths, err := Stress(generic, cfg, randvar.New(99))
	require.NoError(t, err)

	licensedP10 := stats.Percentile(stats.Sorted(licensedPaths), 0.10)
	genericP10 := stats.Percentile(stats.Sorted(genericPaths), 0.10)

	// License strength dampens downside impacts.
	assert.Greater(t, licensedP10, genericP10)
}

func TestStressBoomThenMeanRecovery(t *testing.T) {
	cfg := testConfig(5000, 1)

	// Demand boom only: upside impact followed by decay toward the
	// drift-projected level. Median should sit above the no-event walk
	// but far below a permanent +40% repricing every hit.
	cfg.Stress.Events = []domain.StressEvent{
		{Name: domain.StressDemandBoom, AnnualProbability: 1.0, Impact: 0.40, RecoverySteps: 20},
	}

	asset := &domain.AssetProfile{AssetID: "b", CurrentValue: 1000, AgeYears: 3}
	paths, err := Stress(asset, cfg, randvar.New(3))
	require.NoError(t, err)

	median := stats.Percentile(stats.Sorted(paths), 0.5)
	assert.Greater(t, median, 1000.0)
	assert.Less(t, median, 1600.0)
}

func TestStressNoEventsIsPlainDrift(t *testing.T) {
	cfg := testConfig(3000, 1)
	cfg.Stress.Events = nil

	asset := testAsset()
	paths, err := Stress(asset, cfg, randvar.New(4))
	require.NoError(t, err)

	s := stats.Summarize(paths, asset.CurrentValue)

	// Pure GBM with 5% drift and 12% vol: median near V0*exp(mu-sigma²/2).
	assert.InDelta(t, 1040, s.Median, 60)
}
