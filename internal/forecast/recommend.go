package forecast

import (
	"fmt"

	"valuation-lab/internal/domain"
)

// Thresholds for numeric recommendations. Derived purely from the computed
// risk/return statistics; no qualitative scoring enters here.
const (
	strongGrowthPct    = 8.0
	strongAgreement    = 70.0
	weakAgreement      = 40.0
	highLossProb       = 0.40
	highTailRiskFrac   = 0.30 // CVaR95 as a fraction of current value
	decliningGrowthPct = -2.0
)

// recommendations derives advisory strings from an ensemble result.
// Ordering is stable: growth verdict first, then risk flags.
func recommendations(r *domain.EnsembleResult) []string {
	var out []string
	s := r.Ensemble

	switch {
	case s.MedianGrowthPct >= strongGrowthPct && r.AgreementScore >= strongAgreement:
		out = append(out, fmt.Sprintf(
			"accumulate: models agree on %.1f%% median growth (agreement %.0f)",
			s.MedianGrowthPct, r.AgreementScore))
	case s.MedianGrowthPct <= decliningGrowthPct:
		out = append(out, fmt.Sprintf(
			"reduce: median forecast declines %.1f%%", -s.MedianGrowthPct))
	default:
		out = append(out, fmt.Sprintf(
			"hold: median growth %.1f%%", s.MedianGrowthPct))
	}

	if s.ProbLoss > highLossProb {
		out = append(out, fmt.Sprintf(
			"elevated loss probability: %.0f%% of paths end below current value",
			s.ProbLoss*100))
	}

	if s.ReferenceValue > 0 && s.CVaR95 > s.ReferenceValue*highTailRiskFrac {
		out = append(out, fmt.Sprintf(
			"high tail risk: expected shortfall %.1f%% of current value in the worst 5%% of paths",
			s.CVaR95/s.ReferenceValue*100))
	}

	if r.AgreementScore < weakAgreement {
		out = append(out, fmt.Sprintf(
			"low model agreement (%.0f): treat point estimates with caution",
			r.AgreementScore))
	}

	return out
}
