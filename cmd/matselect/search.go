package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahmedawad/matselect/internal/config"
	"github.com/ahmedawad/matselect/internal/display"
	"github.com/ahmedawad/matselect/internal/formula"
	"github.com/ahmedawad/matselect/internal/mp"
	"github.com/ahmedawad/matselect/internal/types"
)

var searchCommand = &cobra.Command{
	Use:   "search",
	Short: "Search the materials database directly",
	Long: `Searches the Materials Project database without filtering or scoring.
Either search by chemical formula (--formula) or by property constraints
(--elements, --min-gap, --max-gap). A default stability ceiling of
0.1 eV/atom above hull applies to property searches.`,
	RunE: runSearchCmd,
}

var (
	searchConfigPath string
	searchAPIKey     string
	searchFormula    string
	searchElements   []string
	searchMinGap     float64
	searchMaxGap     float64
	searchLimitFlag  int
)

func init() {
	searchCommand.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	searchCommand.Flags().StringVar(&searchAPIKey, "api-key", "", "Materials Project API key (optional, defaults to MP_API_KEY env var)")
	searchCommand.Flags().StringVarP(&searchFormula, "formula", "f", "", "Chemical formula to search for (e.g. Fe2O3)")
	searchCommand.Flags().StringSliceVarP(&searchElements, "elements", "e", nil, "Element allow-list (e.g. Si,O)")
	searchCommand.Flags().Float64Var(&searchMinGap, "min-gap", -1, "Minimum band gap in eV")
	searchCommand.Flags().Float64Var(&searchMaxGap, "max-gap", -1, "Maximum band gap in eV")
	searchCommand.Flags().IntVar(&searchLimitFlag, "limit", 0, "Maximum number of results (default 100)")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(searchConfigPath, config.Config{APIKey: searchAPIKey})
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	var records []types.MaterialRecord
	if searchFormula != "" {
		records, err = client.SearchByFormula(ctx, searchFormula)
	} else {
		criteria := mp.Criteria{
			Elements: searchElements,
			Limit:    searchLimitFlag,
		}
		if searchMinGap >= 0 {
			criteria.MinBandGap = &searchMinGap
		}
		if searchMaxGap >= 0 {
			criteria.MaxBandGap = &searchMaxGap
		}
		records, err = client.Search(ctx, criteria)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No materials found.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %-14s %10s %10s %12s %8s\n",
		"ID", "Formula", "Density", "Band Gap", "E above hull", "Stable")
	for _, record := range records {
		fmt.Fprintf(out, "%-12s %-14s %10s %10s %12.3f %8v\n",
			record.ID,
			formula.Subscript(record.Formula),
			display.FormatOptional(record.Density, "%.2f"),
			display.FormatOptional(record.BandGap, "%.2f"),
			record.EnergyAboveHull,
			record.IsStable,
		)
	}
	return nil
}
