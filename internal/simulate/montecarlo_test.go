package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
	"valuation-lab/internal/stats"
)

func TestMonteCarloEndToEnd(t *testing.T) {
	// Reference scenario: V0=1000, 3 years old, licensed, 5% growth,
	// 10000 paths over 1 year.
	asset := testAsset()
	cfg := testConfig(10_000, 1)

	paths, err := MonteCarlo(asset, cfg, randvar.New(42))
	require.NoError(t, err)
	require.Len(t, paths, 10_000)

	s := stats.Summarize(paths, asset.CurrentValue)

	// Positive median growth for a healthy maturing asset.
	assert.Greater(t, s.MedianGrowthPct, 0.0)

	// The 80% confidence interval stays below a 300% gain: the clamp
	// ceiling holds.
	assert.Less(t, s.P90, asset.CurrentValue*4.0)
	assert.Greater(t, s.P10, 0.0)
}

func TestMonteCarloMeanReversionPullsTowardFairValue(t *testing.T) {
	cfg := testConfig(4000, 1)

	// Strong negative growth drags the fair value anchor down; strong
	// positive growth lifts it. Medians must order accordingly.
	declining := &domain.AssetProfile{
		AssetID: "down", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: -0.25,
	}
	growing := &domain.AssetProfile{
		AssetID: "up", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: 0.25,
	}

	downPaths, err := MonteCarlo(declining, cfg, randvar.New(8))
	require.NoError(t, err)
	upPaths, err := MonteCarlo(growing, cfg, randvar.New(8))
	require.NoError(t, err)

	downMedian := stats.Percentile(stats.Sorted(downPaths), 0.5)
	upMedian := stats.Percentile(stats.Sorted(upPaths), 0.5)

	assert.Greater(t, upMedian, downMedian)
}

func TestMonteCarloGrowthClampBoundsExtremeInput(t *testing.T) {
	cfg := testConfig(2000, 1)

	// Absurd input growth is clamped before it reaches the fair value.
	extreme := &domain.AssetProfile{
		AssetID: "hype", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: 50.0,
	}
	clamped := &domain.AssetProfile{
		AssetID: "ceiling", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: domain.GrowthCeiling,
	}

	a, err := MonteCarlo(extreme, cfg, randvar.New(13))
	require.NoError(t, err)
	b, err := MonteCarlo(clamped, cfg, randvar.New(13))
	require.NoError(t, err)

	// Identical seeds and identical effective inputs: identical paths.
	assert.Equal(t, b, a)
}
