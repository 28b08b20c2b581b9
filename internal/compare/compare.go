// Package compare implements what-if analysis: side-by-side comparison of a
// baseline material against alternatives, with percentage deltas per
// property.
package compare

import (
	"context"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ahmedawad/matselect/internal/mp"
	"github.com/ahmedawad/matselect/internal/types"
)

// fetchConcurrency bounds parallel detail lookups against the data source.
const fetchConcurrency = 4

// Comparator fetches detailed records and builds comparison tables.
type Comparator struct {
	source   mp.Source
	warnings io.Writer
}

// New creates a Comparator. Warnings about skipped identifiers are written
// to warnings; pass nil to discard them.
func New(source mp.Source, warnings io.Writer) *Comparator {
	if warnings == nil {
		warnings = io.Discard
	}
	return &Comparator{source: source, warnings: warnings}
}

// Compare fetches [baselineID, alternativeIDs...] and returns one row per
// successfully fetched material, in input order. Identifiers the source does
// not know are skipped with a warning; any other source failure aborts the
// comparison and propagates.
//
// When more than one row was fetched, each non-baseline row carries
// percentage deltas versus the baseline for density, band gap and formation
// energy, rounded to one decimal. A delta is nil when either side lacks the
// property or the baseline value is zero.
func (c *Comparator) Compare(ctx context.Context, baselineID string, alternativeIDs []string) ([]types.ComparisonRow, error) {
	ids := append([]string{baselineID}, alternativeIDs...)

	// Fetches run concurrently but land in input-order slots, so the table
	// order never depends on completion order. A NotFound for one ID does
	// not cancel the sibling fetches.
	slots := make([]*types.MaterialRecord, len(ids))
	missing := make([]bool, len(ids))

	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			record, err := c.source.GetByID(ctx, id)
			if err != nil {
				if mp.IsNotFound(err) {
					missing[i] = true
					return nil
				}
				return err
			}
			slots[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparison fetch failed: %w", err)
	}

	for i, skipped := range missing {
		if skipped {
			fmt.Fprintf(c.warnings, "warning: material %s not found, skipping\n", ids[i])
		}
	}

	rows := make([]types.ComparisonRow, 0, len(ids))
	for i, record := range slots {
		if record == nil {
			continue
		}
		rows = append(rows, types.ComparisonRow{
			MaterialRecord: *record,
			IsBaseline:     i == 0,
		})
	}

	baseline := slots[0]
	if baseline == nil || len(rows) < 2 {
		return rows, nil
	}

	for i := range rows {
		if rows[i].IsBaseline {
			continue
		}
		rows[i].DensityDelta = percentDelta(rows[i].Density, baseline.Density)
		rows[i].BandGapDelta = percentDelta(rows[i].BandGap, baseline.BandGap)
		rows[i].FormationEnergyDelta = percentDelta(rows[i].FormationEnergy, baseline.FormationEnergy)
	}
	return rows, nil
}

// percentDelta computes (value-baseline)/baseline*100 rounded to one
// decimal, or nil when the delta is undefined.
func percentDelta(value, baseline *float64) *float64 {
	if value == nil || baseline == nil || *baseline == 0 {
		return nil
	}
	delta := math.Round((*value-*baseline)/(*baseline)*1000) / 10
	return &delta
}
