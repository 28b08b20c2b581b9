package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedawad/matselect/internal/types"
)

func scoredCandidate(id string, score float64) types.ScoredCandidate {
	return types.ScoredCandidate{
		MaterialRecord: types.MaterialRecord{ID: id},
		MatchScore:     score,
	}
}

func TestRank_DescendingWithTruncation(t *testing.T) {
	scored := []types.ScoredCandidate{
		scoredCandidate("low", 10),
		scoredCandidate("high", 50),
		scoredCandidate("mid", 30),
	}

	top := rank(scored, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	scored := []types.ScoredCandidate{
		scoredCandidate("first", 50),
		scoredCandidate("second", 50),
		scoredCandidate("third", 50),
	}

	top := rank(scored, 5)

	require.Len(t, top, 3)
	assert.Equal(t, "first", top[0].ID)
	assert.Equal(t, "second", top[1].ID)
	assert.Equal(t, "third", top[2].ID)
}

func TestRank_FewerCandidatesThanTopN(t *testing.T) {
	scored := []types.ScoredCandidate{scoredCandidate("only", 50)}
	assert.Len(t, rank(scored, 5), 1)
}

func TestRank_HullEnergyLadder(t *testing.T) {
	// Scores for hull energies [0, 0.05, 0.1] are [50, 30, 10]; top 2 keeps
	// the first two in that order.
	candidates := []types.MaterialRecord{
		{ID: "on-hull", EnergyAboveHull: 0.0},
		{ID: "near-hull", EnergyAboveHull: 0.05},
		{ID: "at-ceiling", EnergyAboveHull: 0.1},
	}
	scored := scoreAll(candidates, types.RequirementSet{}, nil, computeBatchStats(candidates))

	require.Len(t, scored, 3)
	assert.InDelta(t, 50.0, scored[0].MatchScore, 1e-9)
	assert.InDelta(t, 30.0, scored[1].MatchScore, 1e-9)
	assert.InDelta(t, 10.0, scored[2].MatchScore, 1e-9)

	top := rank(scored, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "on-hull", top[0].ID)
	assert.Equal(t, "near-hull", top[1].ID)
}
