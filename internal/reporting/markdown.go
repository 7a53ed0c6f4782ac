package reporting

import (
	"fmt"
	"strings"
	"time"

	"valuation-lab/internal/domain"
)

// RenderMarkdown renders an aggregate report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Valuation Forecast Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Assets: %d | Forecasts: %d\n\n", r.AssetCount, r.ForecastCount))

	// Asset Summaries
	sb.WriteString("## Asset Outlook\n\n")
	if len(r.AssetSummaries) > 0 {
		sb.WriteString("| Asset | Current | Horizon | Median | Growth% | P(loss) | Agreement |\n")
		sb.WriteString("|-------|---------|---------|--------|---------|---------|----------|\n")
		for _, s := range r.AssetSummaries {
			sb.WriteString(fmt.Sprintf("| %s | %.2f | %dy | %.2f | %.2f | %.4f | %.1f |\n",
				s.AssetID, s.CurrentValue, s.HorizonYears,
				s.EnsembleMedian, s.GrowthPct, s.ProbLoss, s.AgreementScore))
		}
	} else {
		sb.WriteString("No forecasts stored.\n")
	}
	sb.WriteString("\n")

	// Horizon detail
	sb.WriteString("## Forecast Detail\n\n")
	if len(r.HorizonRows) > 0 {
		sb.WriteString("| Asset | Horizon | Median | Growth% | P10 | P90 | VaR95 | CVaR95 | P(loss) | Agreement |\n")
		sb.WriteString("|-------|---------|--------|---------|-----|-----|-------|--------|---------|----------|\n")
		for _, h := range r.HorizonRows {
			sb.WriteString(fmt.Sprintf("| %s | %dy | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.4f | %.1f |\n",
				h.AssetID, h.HorizonYears, h.EnsembleMedian, h.GrowthPct,
				h.P10, h.P90, h.VaR95, h.CVaR95, h.ProbLoss, h.AgreementScore))
		}
	} else {
		sb.WriteString("No forecast detail available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// RenderForecastMarkdown renders a single freshly computed forecast as
// Markdown, including the per-model breakdown the aggregate report drops.
func RenderForecastMarkdown(report *domain.ForecastReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Forecast: %s\n\n", report.AssetName))
	sb.WriteString(fmt.Sprintf("Asset: %s | Current value: %.2f | Generated: %s\n\n",
		report.AssetID, report.CurrentValue,
		time.UnixMilli(report.GeneratedAt).UTC().Format(time.RFC3339)))

	// Yearly projections
	sb.WriteString("## Projections\n\n")
	if len(report.Projections) > 0 {
		sb.WriteString("| Year | Median | Growth% | P10 | P90 | P(loss) |\n")
		sb.WriteString("|------|--------|---------|-----|-----|--------|\n")
		for _, p := range report.Projections {
			sb.WriteString(fmt.Sprintf("| %d | %.2f | %.2f | %.2f | %.2f | %.4f |\n",
				p.Year, p.Median, p.GrowthPct, p.P10, p.P90, p.ProbLoss))
		}
	} else {
		sb.WriteString("No projections available.\n")
	}
	sb.WriteString("\n")

	if report.Primary == nil {
		return sb.String()
	}

	// Per-model breakdown at the primary horizon
	sb.WriteString(fmt.Sprintf("## Models at %dy\n\n", report.Primary.HorizonYears))
	sb.WriteString("| Model | Weight | Median | Growth% | StdDev |\n")
	sb.WriteString("|-------|--------|--------|---------|--------|\n")
	for _, model := range domain.AllModels {
		s, ok := report.Primary.ModelStats[model]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %.2f | %.2f |\n",
			model, report.Primary.Weights[model], s.Median, s.MedianGrowthPct, s.StdDev))
	}
	sb.WriteString("\n")

	// Risk
	e := report.Primary.Ensemble
	sb.WriteString("## Risk\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| VaR95 | %.2f |\n", e.VaR95))
	sb.WriteString(fmt.Sprintf("| VaR99 | %.2f |\n", e.VaR99))
	sb.WriteString(fmt.Sprintf("| CVaR95 | %.2f |\n", e.CVaR95))
	sb.WriteString(fmt.Sprintf("| P(loss) | %.4f |\n", e.ProbLoss))
	sb.WriteString(fmt.Sprintf("| P(gain >= 50%%) | %.4f |\n", e.ProbGain50))
	sb.WriteString(fmt.Sprintf("| P(double) | %.4f |\n", e.ProbDouble))
	sb.WriteString(fmt.Sprintf("| Agreement | %.1f |\n", report.Primary.AgreementScore))
	sb.WriteString("\n")

	// Warnings
	if len(report.Primary.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range report.Primary.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", w))
		}
		sb.WriteString("\n")
	}

	// Recommendations
	sb.WriteString("## Recommendations\n\n")
	if len(report.Recommendations) > 0 {
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	} else {
		sb.WriteString("No recommendations.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
