// Package tradeoff provides exploratory analysis of competing optimization
// objectives over a widened recommendation set.
package tradeoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmedawad/matselect/internal/recommend"
	"github.com/ahmedawad/matselect/internal/types"
)

// exploreTopN widens the candidate pool beyond the default recommendation
// count so trade-offs between objectives are visible.
const exploreTopN = 20

// ErrNotImplemented is returned by analyses that need capabilities the
// system does not have yet.
var ErrNotImplemented = errors.New("not implemented")

// Analysis holds the materials and objectives of one trade-off exploration.
type Analysis struct {
	Materials  []types.ScoredCandidate
	Objectives types.Objectives
}

// Explore runs a widened recommendation with the given objectives and wraps
// the result for trade-off inspection.
func Explore(ctx context.Context, engine *recommend.Engine, reqs types.RequirementSet, objectives types.Objectives) (*Analysis, error) {
	result, err := engine.Recommend(ctx, reqs, objectives, exploreTopN)
	if err != nil {
		return nil, fmt.Errorf("trade-off exploration failed: %w", err)
	}
	return &Analysis{
		Materials:  result.Candidates,
		Objectives: objectives,
	}, nil
}

// ParetoFrontier would return the subset of materials not dominated across
// all objectives. Dominance analysis needs per-objective property data the
// current sources do not provide.
func (a *Analysis) ParetoFrontier() ([]types.ScoredCandidate, error) {
	return nil, fmt.Errorf("pareto frontier analysis: %w", ErrNotImplemented)
}
