package recommend

import (
	"sort"

	"github.com/ahmedawad/matselect/internal/types"
)

// rank orders scored candidates by match score descending and truncates to
// topN. The sort is stable: exact-score ties keep their pre-sort relative
// order, so identical inputs always produce identical rankings.
func rank(scored []types.ScoredCandidate, topN int) []types.ScoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
