package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ahmedawad/matselect/internal/compare"
	"github.com/ahmedawad/matselect/internal/config"
	"github.com/ahmedawad/matselect/internal/display"
)

var compareCommand = &cobra.Command{
	Use:   "compare <baseline-id> <alternative-id>...",
	Short: "Compare a baseline material against alternatives",
	Long: `What-if analysis: fetches the detailed record for the baseline material and
each alternative, and prints a side-by-side table with percentage deltas for
density, band gap and formation energy versus the baseline.

Identifiers the database does not know are skipped with a warning.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompareCmd,
}

var (
	cmpConfigPath string
	cmpAPIKey     string
)

func init() {
	compareCommand.Flags().StringVar(&cmpConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	compareCommand.Flags().StringVar(&cmpAPIKey, "api-key", "", "Materials Project API key (optional, defaults to MP_API_KEY env var)")

	rootCmd.AddCommand(compareCommand)
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmpConfigPath, config.Config{APIKey: cmpAPIKey})
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	comparator := compare.New(client, cmd.ErrOrStderr())
	rows, err := comparator.Compare(ctx, args[0], args[1:])
	if err != nil {
		return err
	}

	display.NewPrinter(cmd.OutOrStdout()).PrintComparison(rows)
	return nil
}
