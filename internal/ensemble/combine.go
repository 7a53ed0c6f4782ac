// Package ensemble combines the six models' path sets into one weighted
// forecast and scores how much the models agree.
package ensemble

import (
	"fmt"
	"sort"

	"valuation-lab/internal/domain"
)

// Combine produces the weighted ensemble PathSet:
// combined[i] = Σ weight[model] × paths[model][i] for every path index i.
// Combining per index (rather than merging summary statistics) preserves
// the cross-model correlation structure implied by the shared index.
//
// Models present in weights but missing from results, or vice versa, are
// skipped deterministically and reported as warnings, never as an error.
func Combine(results map[domain.Model]domain.PathSet, weights map[domain.Model]float64) (domain.PathSet, []string) {
	var warnings []string

	// Iterate models in canonical order so warnings and float summation
	// order are stable run to run.
	var matched []domain.Model
	n := 0
	for _, m := range domain.AllModels {
		paths, hasPaths := results[m]
		_, hasWeight := weights[m]

		switch {
		case hasPaths && hasWeight:
			matched = append(matched, m)
			if len(paths) > n {
				n = len(paths)
			}
		case hasPaths && !hasWeight:
			warnings = append(warnings, fmt.Sprintf("model %s has results but no weight; skipped", m))
		case !hasPaths && hasWeight:
			warnings = append(warnings, fmt.Sprintf("model %s is weighted but produced no results; skipped", m))
		}
	}

	// Weighted models absent from AllModels (misconfigured keys).
	for m := range weights {
		if !m.IsValid() {
			warnings = append(warnings, fmt.Sprintf("weight for unknown model %s ignored", m))
		}
	}
	sort.Strings(warnings)

	if len(matched) == 0 || n == 0 {
		return domain.PathSet{}, warnings
	}

	combined := make(domain.PathSet, n)
	for _, m := range matched {
		w := weights[m]
		paths := results[m]
		for i := 0; i < n && i < len(paths); i++ {
			combined[i] += w * paths[i]
		}
	}
	return combined, warnings
}
