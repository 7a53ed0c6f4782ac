// Package stats provides numerically safe statistics over terminal value
// samples: mean, standard deviation, nearest-rank percentiles, VaR/CVaR and
// probability-threshold counts. All functions handle zero-length and
// single-element inputs without dividing by zero.
package stats

import (
	"math"
	"sort"
)

// Mean calculates the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates sample standard deviation (n-1 denominator).
func StdDev(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0 // need at least 2 samples for sample stddev
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// Percentile returns the nearest-rank percentile of a pre-sorted ascending
// slice: index = floor(p * length), clamped to the last index.
// p is a fraction (0.05 = 5th percentile).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(p * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Sorted returns an ascending copy of values, leaving the input untouched.
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// VaR returns Value-at-Risk at the given confidence: the loss between the
// reference value and the (1-confidence) percentile. Negative when even the
// tail percentile sits above the reference.
func VaR(sorted []float64, reference, confidence float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return reference - Percentile(sorted, 1.0-confidence)
}

// CVaR returns Conditional VaR at the given confidence: the expected loss
// over the worst (1-confidence) share of outcomes, floored at zero so the
// expected-shortfall magnitude is never negative.
func CVaR(sorted []float64, reference, confidence float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	tail := int((1.0 - confidence) * float64(n))
	if tail < 1 {
		tail = 1
	}
	if tail > n {
		tail = n
	}

	cvar := reference - Mean(sorted[:tail])
	if cvar < 0 {
		return 0
	}
	return cvar
}

// ProbBelow returns the fraction of values strictly below the threshold.
func ProbBelow(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v < threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

// ProbAtLeast returns the fraction of values at or above the threshold.
func ProbAtLeast(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v >= threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}
