package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmedawad/matselect/internal/mp"
	"github.com/ahmedawad/matselect/internal/types"
)

const (
	// DefaultTopN is the number of recommendations returned when the caller
	// does not ask for a specific count.
	DefaultTopN = 5

	// DefaultSearchLimit bounds the candidate pool requested from the data
	// source when the caller does not override it.
	DefaultSearchLimit = 100
)

// Options tunes engine behavior. The zero value uses defaults.
type Options struct {
	// SearchLimit bounds the candidate pool requested per search.
	SearchLimit int
}

// Engine is the recommendation entry point. It holds no mutable state
// beyond the injected data source, so concurrent calls are safe as long as
// the source is.
type Engine struct {
	source      mp.Source
	searchLimit int
}

// New constructs an Engine after verifying the data source is reachable and
// the credentials are accepted. A failed status check is fatal: no
// recommendation call may proceed against a source that cannot answer.
func New(ctx context.Context, source mp.Source, opts *Options) (*Engine, error) {
	ok, err := source.CheckStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("data source status check failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("data source status check failed: API unreachable or key rejected")
	}

	searchLimit := DefaultSearchLimit
	if opts != nil && opts.SearchLimit > 0 {
		searchLimit = opts.SearchLimit
	}
	return &Engine{source: source, searchLimit: searchLimit}, nil
}

// Recommend searches the data source with the natively supported criteria,
// applies the remaining hard constraints, scores, ranks and explains the
// survivors, and returns the top topN (DefaultTopN when topN <= 0).
//
// Zero matching candidates is a valid outcome and yields an empty result,
// not an error. Data-source failures propagate unmodified.
func (e *Engine) Recommend(ctx context.Context, reqs types.RequirementSet, objectives types.Objectives, topN int) (*types.RecommendationResult, error) {
	if err := reqs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirements: %w", err)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	// Coarse pre-filter on what the source supports natively; the density
	// ceiling and the fixed stability ceiling are applied locally.
	criteria := mp.Criteria{
		MinBandGap: reqs.MinBandGap,
		MaxBandGap: reqs.MaxBandGap,
		Elements:   reqs.Elements,
		Limit:      e.searchLimit,
	}

	candidates, err := e.source.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("materials search failed: %w", err)
	}
	for i := range candidates {
		candidates[i].Normalize()
	}

	result := &types.RecommendationResult{
		RunID:        uuid.New(),
		Requirements: reqs,
		Objectives:   objectives,
	}

	filtered := applyFilters(candidates, reqs)
	if len(filtered) == 0 {
		return result, nil
	}

	stats := computeBatchStats(filtered)
	scored := scoreAll(filtered, reqs, objectives, stats)
	top := rank(scored, topN)
	explainAll(top)

	result.Candidates = top
	return result, nil
}
