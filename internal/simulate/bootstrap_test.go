package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
	"valuation-lab/internal/stats"
)

func TestBootstrapTerminalRange(t *testing.T) {
	asset := testAsset()
	cfg := testConfig(10_000, 1)

	paths, err := Bootstrap(asset, cfg, randvar.New(42))
	require.NoError(t, err)

	floor := asset.CurrentValue * cfg.Bootstrap.FloorMultiple
	ceiling := asset.CurrentValue * cfg.Bootstrap.CeilingMultiple
	for i, v := range paths {
		require.GreaterOrEqual(t, v, floor, "path %d", i)
		require.LessOrEqual(t, v, ceiling, "path %d", i)
	}
}

func TestBootstrapFailsFastWithoutSeries(t *testing.T) {
	asset := testAsset() // no HistoricalReturns
	cfg := testConfig(100, 1)
	cfg.Bootstrap.AllowSynthetic = false

	_, err := Bootstrap(asset, cfg, randvar.New(1))
	require.ErrorIs(t, err, ErrNoReturnSeries)
}

func TestBootstrapPrefersHistoricalSeries(t *testing.T) {
	cfg := testConfig(4000, 1)

	// A uniformly negative history must drag the median well below V0,
	// regardless of the (positive) historical growth field.
	asset := testAsset()
	asset.HistoricalReturns = []float64{-0.04, -0.05, -0.03, -0.06, -0.04, -0.05}

	paths, err := Bootstrap(asset, cfg, randvar.New(6))
	require.NoError(t, err)

	median := stats.Percentile(stats.Sorted(paths), 0.5)
	assert.Less(t, median, asset.CurrentValue*0.7)
}

func TestBootstrapClampsOutlierDraws(t *testing.T) {
	cfg := testConfig(2000, 1)

	// A single +900% monthly return must be clamped to ReturnClamp before
	// compounding; terminal values stay inside the bootstrap range.
	asset := testAsset()
	asset.HistoricalReturns = []float64{9.0, 0.01, 0.01, 0.01}

	paths, err := Bootstrap(asset, cfg, randvar.New(10))
	require.NoError(t, err)

	ceiling := asset.CurrentValue * cfg.Bootstrap.CeilingMultiple
	for _, v := range paths {
		require.LessOrEqual(t, v, ceiling)
	}
}

func TestBootstrapSyntheticTracksGrowth(t *testing.T) {
	cfg := testConfig(4000, 1)

	grower := &domain.AssetProfile{AssetID: "g", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: 0.30}
	decliner := &domain.AssetProfile{AssetID: "d", CurrentValue: 1000, AgeYears: 3, HistoricalGrowth: -0.30}

	growPaths, err := Bootstrap(grower, cfg, randvar.New(14))
	require.NoError(t, err)
	declinePaths, err := Bootstrap(decliner, cfg, randvar.New(14))
	require.NoError(t, err)

	growMedian := stats.Percentile(stats.Sorted(growPaths), 0.5)
	declineMedian := stats.Percentile(stats.Sorted(declinePaths), 0.5)

	assert.Greater(t, growMedian, declineMedian)
}
