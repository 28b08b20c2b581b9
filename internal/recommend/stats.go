package recommend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ahmedawad/matselect/internal/types"
)

// BatchStats holds the per-batch extrema every normalized scoring term
// depends on. Scores are batch-relative: the same material can score
// differently in different candidate sets, so the stats are computed once
// per scoring call and threaded through rather than recomputed ad hoc.
type BatchStats struct {
	// Density extrema over the batch. Valid only when AllHaveDensity.
	MinDensity float64
	MaxDensity float64
	// AllHaveDensity reports whether every candidate carries a density;
	// the weight term requires a complete column to normalize against.
	AllHaveDensity bool

	// MaxBandGap is the largest reported band gap in the batch. Valid only
	// when AnyHasBandGap.
	MaxBandGap    float64
	AnyHasBandGap bool
}

// computeBatchStats scans the batch once and collects the extrema.
func computeBatchStats(candidates []types.MaterialRecord) BatchStats {
	stats := BatchStats{AllHaveDensity: len(candidates) > 0}

	densities := make([]float64, 0, len(candidates))
	bandGaps := make([]float64, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Density == nil {
			stats.AllHaveDensity = false
		} else {
			densities = append(densities, *candidate.Density)
		}
		if candidate.BandGap != nil {
			bandGaps = append(bandGaps, *candidate.BandGap)
		}
	}

	if len(densities) > 0 {
		stats.MinDensity = floats.Min(densities)
		stats.MaxDensity = floats.Max(densities)
	}
	if len(bandGaps) > 0 {
		stats.AnyHasBandGap = true
		stats.MaxBandGap = floats.Max(bandGaps)
	}

	return stats
}
