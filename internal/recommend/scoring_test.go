package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedawad/matselect/internal/types"
)

func TestStabilityTerm_MonotonicAndClipped(t *testing.T) {
	tests := []struct {
		hull float64
		want float64
	}{
		{hull: 0.0, want: 40},
		{hull: 0.02, want: 32},
		{hull: 0.05, want: 20},
		{hull: 0.1, want: 0},
		{hull: 0.5, want: 0}, // clipped, never negative
	}

	prev := 41.0
	for _, tt := range tests {
		got := stabilityTerm(types.MaterialRecord{EnergyAboveHull: tt.hull})
		assert.InDelta(t, tt.want, got, 1e-9, "hull=%v", tt.hull)
		assert.LessOrEqual(t, got, prev, "term must be non-increasing in hull energy")
		prev = got
	}
}

func TestScoreAll_StabilityPlusBaselineOnly(t *testing.T) {
	// No objectives and no band-gap target: each on-hull candidate scores
	// 40 (stability) + 10 (baseline).
	candidates := []types.MaterialRecord{
		record("mp-1", 3.0, 0),
		record("mp-3", 4.5, 0),
	}

	scored := scoreAll(candidates, types.RequirementSet{}, nil, computeBatchStats(candidates))

	require.Len(t, scored, 2)
	assert.InDelta(t, 50.0, scored[0].MatchScore, 1e-9)
	assert.InDelta(t, 50.0, scored[1].MatchScore, 1e-9)
}

func TestWeightTerm_RequiresObjective(t *testing.T) {
	candidates := []types.MaterialRecord{
		record("light", 2.0, 0),
		record("heavy", 8.0, 0),
	}
	stats := computeBatchStats(candidates)

	assert.Zero(t, weightTerm(candidates[0], nil, stats))
	assert.Zero(t, weightTerm(candidates[0], types.Objectives{types.ObjectiveCost}, stats))
}

func TestWeightTerm_NormalizedInverseDensity(t *testing.T) {
	candidates := []types.MaterialRecord{
		record("light", 2.0, 0),
		record("heavy", 8.0, 0),
	}
	stats := computeBatchStats(candidates)
	objectives := types.Objectives{types.ObjectiveWeight}

	lightTerm := weightTerm(candidates[0], objectives, stats)
	heavyTerm := weightTerm(candidates[1], objectives, stats)

	assert.InDelta(t, 30.0, lightTerm, 1e-6)
	assert.InDelta(t, 0.0, heavyTerm, 1e-6)
	assert.Greater(t, lightTerm, heavyTerm)
}

func TestWeightTerm_UniformDensityBatch(t *testing.T) {
	// All candidates at the same density: the epsilon keeps the division
	// defined and everyone gets the full term.
	candidates := []types.MaterialRecord{
		record("a", 4.0, 0),
		record("b", 4.0, 0),
	}
	stats := computeBatchStats(candidates)

	term := weightTerm(candidates[0], types.Objectives{types.ObjectiveWeight}, stats)
	assert.InDelta(t, 30.0, term, 1e-6)
}

func TestWeightTerm_SkippedWhenDensityColumnIncomplete(t *testing.T) {
	withDensity := record("a", 2.0, 0)
	withoutDensity := types.MaterialRecord{ID: "b", EnergyAboveHull: 0}
	stats := computeBatchStats([]types.MaterialRecord{withDensity, withoutDensity})

	assert.False(t, stats.AllHaveDensity)
	assert.Zero(t, weightTerm(withDensity, types.Objectives{types.ObjectiveWeight}, stats))
}

func TestBandGapTerm_ProximityToTarget(t *testing.T) {
	gap := func(v float64) types.MaterialRecord {
		return types.MaterialRecord{ID: "x", BandGap: types.Float64Ptr(v)}
	}
	candidates := []types.MaterialRecord{gap(2.0), gap(4.0)}
	stats := computeBatchStats(candidates)
	reqs := types.RequirementSet{MinBandGap: types.Float64Ptr(2.0)}

	onTarget := bandGapTerm(candidates[0], reqs, stats)
	offTarget := bandGapTerm(candidates[1], reqs, stats)

	// Exactly on target: full 30. Off by 2 eV with batch max 4: 1 - 2/5 = 0.6.
	assert.InDelta(t, 30.0, onTarget, 1e-9)
	assert.InDelta(t, 18.0, offTarget, 1e-9)
}

func TestBandGapTerm_SkippedWithoutTargetOrValue(t *testing.T) {
	candidate := types.MaterialRecord{ID: "x", BandGap: types.Float64Ptr(1.0)}
	stats := computeBatchStats([]types.MaterialRecord{candidate})

	// No target in the requirements.
	assert.Zero(t, bandGapTerm(candidate, types.RequirementSet{}, stats))

	// Target set but the candidate reports no band gap.
	noGap := types.MaterialRecord{ID: "y"}
	reqs := types.RequirementSet{MinBandGap: types.Float64Ptr(1.0)}
	assert.Zero(t, bandGapTerm(noGap, reqs, stats))
}

func TestComputeBatchStats(t *testing.T) {
	candidates := []types.MaterialRecord{
		{ID: "a", Density: types.Float64Ptr(2.0), BandGap: types.Float64Ptr(1.0)},
		{ID: "b", Density: types.Float64Ptr(7.5), BandGap: types.Float64Ptr(3.5)},
		{ID: "c", Density: types.Float64Ptr(4.0)},
	}

	stats := computeBatchStats(candidates)

	assert.True(t, stats.AllHaveDensity)
	assert.Equal(t, 2.0, stats.MinDensity)
	assert.Equal(t, 7.5, stats.MaxDensity)
	assert.True(t, stats.AnyHasBandGap)
	assert.Equal(t, 3.5, stats.MaxBandGap)
}

func TestComputeBatchStats_Empty(t *testing.T) {
	stats := computeBatchStats(nil)
	assert.False(t, stats.AllHaveDensity)
	assert.False(t, stats.AnyHasBandGap)
}
