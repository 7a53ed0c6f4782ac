package ensemble

import (
	"valuation-lab/internal/stats"
)

// agreementMeanFloor bounds the denominator of the agreement ratio. When
// the models' median growth rates average near zero, the raw coefficient of
// variation explodes; flooring the mean magnitude keeps the score defined
// and monotone in dispersion.
const agreementMeanFloor = 0.01

// AgreementScore quantifies cross-model consensus in [0,100] from the
// per-model median growth percentages:
// 100 − stdDev(medianGrowth) / mean(|medianGrowth|) × 100, clamped.
// Identical medians score 100; the score decreases monotonically as the
// per-model medians spread apart.
func AgreementScore(medianGrowths []float64) float64 {
	if len(medianGrowths) < 2 {
		return 100
	}

	mean := stats.Mean(medianGrowths)
	dispersion := stats.StdDev(medianGrowths, mean)

	meanAbs := 0.0
	for _, g := range medianGrowths {
		if g < 0 {
			meanAbs -= g
		} else {
			meanAbs += g
		}
	}
	meanAbs /= float64(len(medianGrowths))
	if meanAbs < agreementMeanFloor {
		meanAbs = agreementMeanFloor
	}

	score := 100 - dispersion/meanAbs*100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
