package domain

// Statistics is a read-only summary of one PathSet relative to a reference
// value (the asset's current value). All growth percentages and risk metrics
// are expressed against that reference, never silently defaulted.
type Statistics struct {
	Samples        int
	ReferenceValue float64

	// Central tendency and spread
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64

	// Percentile ladder
	P5  float64
	P10 float64
	P25 float64
	P50 float64
	P75 float64
	P90 float64
	P95 float64

	// Growth relative to reference value
	MeanGrowthPct   float64
	MedianGrowthPct float64

	// Risk metrics
	VaR95      float64 // reference - P5
	VaR99      float64 // reference - P1
	CVaR95     float64 // reference - mean of bottom 5%
	ProbLoss   float64 // P(value < reference)
	ProbGain50 float64 // P(value >= 1.5 * reference)
	ProbDouble float64 // P(value >= 2.0 * reference)
}
