package types

import (
	"github.com/google/uuid"
)

// ScoredCandidate pairs a material with its match score and, once the
// explainer has run, a human-readable recommendation reason.
//
// MatchScore is an additive heuristic, not a percentage: each component term
// carries a fixed maximum weight and the total is unbounded by design
// (currently up to 110 when every term activates). Scores are only comparable
// within the batch that produced them.
type ScoredCandidate struct {
	MaterialRecord
	MatchScore           float64 `json:"match_score"`
	RecommendationReason string  `json:"recommendation_reason,omitempty"`
}

// RecommendationResult is the ordered output of one recommendation call,
// highest score first. The originating requirements and objectives are
// carried along for traceability.
type RecommendationResult struct {
	RunID        uuid.UUID         `json:"run_id"`
	Candidates   []ScoredCandidate `json:"candidates"`
	Requirements RequirementSet    `json:"requirements"`
	Objectives   Objectives        `json:"objectives,omitempty"`
}

// Empty reports whether the recommendation produced no candidates. An empty
// result is a valid outcome, not an error.
func (r *RecommendationResult) Empty() bool {
	return len(r.Candidates) == 0
}

// ComparisonRow is one material in a what-if comparison. Delta fields hold
// the percentage difference versus the baseline row, rounded to one decimal.
// A nil delta means the value is undefined for that cell: the row is the
// baseline itself, either side lacks the property, or the baseline value is
// zero (division by zero is reported as absent, never computed).
type ComparisonRow struct {
	MaterialRecord
	IsBaseline           bool     `json:"is_baseline"`
	DensityDelta         *float64 `json:"density_vs_baseline_pct,omitempty"`
	BandGapDelta         *float64 `json:"band_gap_vs_baseline_pct,omitempty"`
	FormationEnergyDelta *float64 `json:"formation_energy_vs_baseline_pct,omitempty"`
}
