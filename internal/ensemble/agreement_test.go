package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgreementScoreIdenticalMedians(t *testing.T) {
	assert.Equal(t, 100.0, AgreementScore([]float64{5.2, 5.2, 5.2, 5.2, 5.2, 5.2}))
}

func TestAgreementScoreDecreasesMonotonically(t *testing.T) {
	// Perturb the medians progressively further apart; each wider spread
	// must score at or below the previous one, strictly below once the
	// spread is non-trivial.
	base := 6.0
	prev := 100.0
	for _, spread := range []float64{0, 0.5, 1, 2, 4, 8} {
		medians := []float64{
			base - spread, base - spread/2, base,
			base, base + spread/2, base + spread,
		}
		score := AgreementScore(medians)
		require.LessOrEqual(t, score, prev, "spread %v", spread)
		if spread > 0 {
			require.Less(t, score, 100.0, "spread %v", spread)
		}
		prev = score
	}
}

func TestAgreementScoreClampedToRange(t *testing.T) {
	// Wildly disagreeing models: raw formula goes negative, score floors
	// at zero.
	assert.Equal(t, 0.0, AgreementScore([]float64{-50, 80, -20, 60, -40, 90}))
}

func TestAgreementScoreNearZeroMeanIsDefined(t *testing.T) {
	// Medians averaging near zero would divide by ~0 in the raw formula;
	// the floored denominator keeps the score finite and in range.
	score := AgreementScore([]float64{-0.001, 0.001, -0.002, 0.002, 0, 0})
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestAgreementScoreDegenerateInputs(t *testing.T) {
	assert.Equal(t, 100.0, AgreementScore(nil))
	assert.Equal(t, 100.0, AgreementScore([]float64{3.0}))
}
