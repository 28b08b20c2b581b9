package recommend

import (
	"strings"

	"github.com/ahmedawad/matselect/internal/types"
)

// Qualitative thresholds for the recommendation rationale.
const (
	lightweightDensityMax = 5.0
	highlyStableHullMax   = 0.02

	// missingDensityPenalty stands in for an unreported density so the
	// lightweight test fails rather than passes by accident.
	missingDensityPenalty = 10.0

	defaultReason = "Meets requirements"
)

// explainReason synthesizes the recommendation rationale for one material.
// It is a pure function of the record: fixed conditions tested in fixed
// order, matching phrases joined with "; ".
func explainReason(record types.MaterialRecord) string {
	var parts []string

	if record.IsStable {
		parts = append(parts, "Thermodynamically stable")
	}

	density := missingDensityPenalty
	if record.Density != nil {
		density = *record.Density
	}
	if density < lightweightDensityMax {
		parts = append(parts, "Lightweight")
	}

	if record.EnergyAboveHull < highlyStableHullMax {
		parts = append(parts, "Highly stable")
	}

	if len(parts) == 0 {
		return defaultReason
	}
	return strings.Join(parts, "; ")
}

// explainAll fills in the recommendation reason for every candidate.
func explainAll(candidates []types.ScoredCandidate) {
	for i := range candidates {
		candidates[i].RecommendationReason = explainReason(candidates[i].MaterialRecord)
	}
}
