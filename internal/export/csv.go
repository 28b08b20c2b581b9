// Package export writes recommendation results to machine-readable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ahmedawad/matselect/internal/types"
)

var csvHeader = []string{
	"mp_id", "formula", "composition", "match_score",
	"energy_above_hull", "band_gap", "density", "formation_energy",
	"crystal_system", "is_stable", "is_theoretical", "recommendation_reason",
}

// CSV writes the ranked candidates of a recommendation result as CSV.
// Missing optional fields become empty cells.
func CSV(w io.Writer, result *types.RecommendationResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, candidate := range result.Candidates {
		row := []string{
			candidate.ID,
			candidate.Formula,
			candidate.Composition,
			strconv.FormatFloat(candidate.MatchScore, 'f', 1, 64),
			strconv.FormatFloat(candidate.EnergyAboveHull, 'f', -1, 64),
			optionalCell(candidate.BandGap),
			optionalCell(candidate.Density),
			optionalCell(candidate.FormationEnergy),
			candidate.CrystalSystem,
			strconv.FormatBool(candidate.IsStable),
			strconv.FormatBool(candidate.IsTheoretical),
			candidate.RecommendationReason,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", candidate.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func optionalCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
