// Package display provides formatted console output for recommendation and
// comparison results.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahmedawad/matselect/internal/formula"
	"github.com/ahmedawad/matselect/internal/types"
)

const ruleWidth = 80

// Printer writes human-readable result summaries to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintRecommendations renders a ranked recommendation list. Scores are
// labeled in points: the match score is an additive heuristic, not a
// percentage.
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (p *Printer) PrintRecommendations(result *types.RecommendationResult) {
	if result.Empty() {
		fmt.Fprintln(p.out, "No materials found matching your requirements.")
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Try:")
		fmt.Fprintln(p.out, "  - Relaxing some constraints")
		fmt.Fprintln(p.out, "  - Broadening the search criteria")
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "  TOP %d MATERIAL RECOMMENDATIONS\n", len(result.Candidates))
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)

	for i, candidate := range result.Candidates {
		fmt.Fprintf(p.out, "#%d - %s (%s)\n", i+1, formula.Subscript(candidate.Formula), candidate.ID)
		fmt.Fprintf(p.out, "   Match Score: %.1f pts\n", candidate.MatchScore)
		fmt.Fprintf(p.out, "   Density: %s g/cm³\n", FormatOptional(candidate.Density, "%.2f"))
		fmt.Fprintf(p.out, "   Band Gap: %s eV\n", FormatOptional(candidate.BandGap, "%.2f"))
		fmt.Fprintf(p.out, "   Stability: %.3f eV/atom above hull\n", candidate.EnergyAboveHull)
		fmt.Fprintf(p.out, "   Crystal System: %s\n", valueOr(candidate.CrystalSystem, "Unknown"))

		if candidate.RecommendationReason != "" {
			fmt.Fprintf(p.out, "\n   Why Recommended: %s\n", candidate.RecommendationReason)
		}

		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))
		fmt.Fprintln(p.out)
	}
}

// PrintComparison renders a what-if comparison table.
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (p *Printer) PrintComparison(rows []types.ComparisonRow) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No materials to compare.")
		return
	}

	fmt.Fprintf(p.out, "%-12s %-12s %12s %12s %14s %12s %12s %12s\n",
		"ID", "Formula", "Density", "Band Gap", "Form. Energy",
		"Δ Density", "Δ Band Gap", "Δ F.Energy")

	for _, row := range rows {
		label := row.ID
		if row.IsBaseline {
			label += " *"
		}
		fmt.Fprintf(p.out, "%-12s %-12s %12s %12s %14s %12s %12s %12s\n",
			label,
			row.Formula,
			FormatOptional(row.Density, "%.2f"),
			FormatOptional(row.BandGap, "%.2f"),
			FormatOptional(row.FormationEnergy, "%.3f"),
			delta(row.DensityDelta),
			delta(row.BandGapDelta),
			delta(row.FormationEnergyDelta),
		)
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "* baseline; deltas are percentages versus the baseline row")
}

// FormatOptional renders an optional numeric value, or "n/a" when absent.
func FormatOptional(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func delta(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", *v)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
