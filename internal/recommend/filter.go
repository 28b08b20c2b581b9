// Package recommend implements the materials recommendation core: hard
// constraint filtering, batch-normalized scoring, ranking and explanation.
package recommend

import (
	"github.com/ahmedawad/matselect/internal/types"
)

// stabilityCeiling is the fixed hull-energy ceiling (eV/atom) applied to
// every candidate regardless of user requirements. Materials further above
// the hull are too metastable to recommend. This is a design decision, not
// a user input.
const stabilityCeiling = 0.1

// applyFilters returns the subsequence of candidates satisfying all hard
// constraints, preserving input order.
//
// A record with no reported density cannot demonstrate it meets a density
// ceiling, so when MaxDensity is set such records are rejected rather than
// waved through.
func applyFilters(candidates []types.MaterialRecord, reqs types.RequirementSet) []types.MaterialRecord {
	filtered := make([]types.MaterialRecord, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.EnergyAboveHull > stabilityCeiling {
			continue
		}
		if reqs.MaxDensity != nil {
			if candidate.Density == nil || *candidate.Density > *reqs.MaxDensity {
				continue
			}
		}
		filtered = append(filtered, candidate)
	}
	return filtered
}
