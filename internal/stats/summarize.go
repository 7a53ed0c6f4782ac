package stats

import (
	"valuation-lab/internal/domain"
)

// Summarize turns a raw PathSet into a Statistics record relative to the
// supplied reference value. The reference is required: growth percentages
// are never computed against a silent default.
func Summarize(values domain.PathSet, reference float64) *domain.Statistics {
	s := &domain.Statistics{
		Samples:        len(values),
		ReferenceValue: reference,
	}
	if len(values) == 0 {
		return s
	}

	sorted := Sorted(values)

	s.Mean = Mean(values)
	s.StdDev = StdDev(values, s.Mean)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]

	s.P5 = Percentile(sorted, 0.05)
	s.P10 = Percentile(sorted, 0.10)
	s.P25 = Percentile(sorted, 0.25)
	s.P50 = Percentile(sorted, 0.50)
	s.P75 = Percentile(sorted, 0.75)
	s.P90 = Percentile(sorted, 0.90)
	s.P95 = Percentile(sorted, 0.95)
	s.Median = s.P50

	if reference != 0 {
		s.MeanGrowthPct = (s.Mean - reference) / reference * 100
		s.MedianGrowthPct = (s.Median - reference) / reference * 100
	}

	s.VaR95 = VaR(sorted, reference, 0.95)
	s.VaR99 = VaR(sorted, reference, 0.99)
	s.CVaR95 = CVaR(sorted, reference, 0.95)

	s.ProbLoss = ProbBelow(values, reference)
	s.ProbGain50 = ProbAtLeast(values, reference*1.5)
	s.ProbDouble = ProbAtLeast(values, reference*2.0)

	return s
}
