package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders horizon rows as CSV string.
func RenderCSV(rows []HorizonRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("asset_id,horizon_years,paths,current_value,ensemble_median,growth_pct,")
	sb.WriteString("p10,p90,var_95,cvar_95,prob_loss,agreement_score,generated_at\n")

	// Rows
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%.6f,%.6f,%.4f,%.6f,%.6f,%.6f,%.6f,%.6f,%.2f,%d\n",
			r.AssetID,
			r.HorizonYears,
			r.Paths,
			r.CurrentValue,
			r.EnsembleMedian,
			r.GrowthPct,
			r.P10,
			r.P90,
			r.VaR95,
			r.CVaR95,
			r.ProbLoss,
			r.AgreementScore,
			r.GeneratedAt,
		))
	}

	return sb.String()
}
