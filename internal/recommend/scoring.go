package recommend

import (
	"github.com/ahmedawad/matselect/internal/types"
)

// Maximum weights for the additive scoring terms. The total has no fixed
// ceiling; it is a heuristic value (up to 110 when every term activates),
// not a percentage.
const (
	weightTermMax    = 30.0
	stabilityTermMax = 40.0
	bandGapTermMax   = 30.0
	baselineScore    = 10.0

	// densityEpsilon keeps the density normalization defined when every
	// candidate in the batch has the same density.
	densityEpsilon = 1e-10
)

// scoreAll annotates each candidate with its match score. Terms:
//
//   - weight (0-30): inverse batch-normalized density; only when the caller
//     optimizes for weight and the whole batch reports density.
//   - stability (0-40): linear in hull energy from 0 (full term) to the
//     stability ceiling (zero term); always computed.
//   - band-gap proximity (0-30): closeness to the requested minimum band
//     gap, normalized by the batch maximum; only when a target is set and
//     the candidate reports a band gap.
//   - baseline (+10): every candidate that survived filtering.
func scoreAll(candidates []types.MaterialRecord, reqs types.RequirementSet, objectives types.Objectives, stats BatchStats) []types.ScoredCandidate {
	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		score := baselineScore
		score += stabilityTerm(candidate)
		score += weightTerm(candidate, objectives, stats)
		score += bandGapTerm(candidate, reqs, stats)

		scored = append(scored, types.ScoredCandidate{
			MaterialRecord: candidate,
			MatchScore:     score,
		})
	}
	return scored
}

func stabilityTerm(candidate types.MaterialRecord) float64 {
	return clip01(1-candidate.EnergyAboveHull/stabilityCeiling) * stabilityTermMax
}

func weightTerm(candidate types.MaterialRecord, objectives types.Objectives, stats BatchStats) float64 {
	if !objectives.Has(types.ObjectiveWeight) {
		return 0
	}
	if !stats.AllHaveDensity || candidate.Density == nil {
		return 0
	}

	normalized := 1 - (*candidate.Density-stats.MinDensity)/(stats.MaxDensity-stats.MinDensity+densityEpsilon)
	return normalized * weightTermMax
}

func bandGapTerm(candidate types.MaterialRecord, reqs types.RequirementSet, stats BatchStats) float64 {
	if reqs.MinBandGap == nil {
		return 0
	}
	if candidate.BandGap == nil || !stats.AnyHasBandGap {
		return 0
	}

	diff := *candidate.BandGap - *reqs.MinBandGap
	if diff < 0 {
		diff = -diff
	}
	return clip01(1-diff/(stats.MaxBandGap+1)) * bandGapTermMax
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
