package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahmedawad/matselect/internal/config"
	"github.com/ahmedawad/matselect/internal/display"
	"github.com/ahmedawad/matselect/internal/export"
	"github.com/ahmedawad/matselect/internal/recommend"
	"github.com/ahmedawad/matselect/internal/schemas"
	"github.com/ahmedawad/matselect/internal/types"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Get ranked material recommendations for a set of requirements",
	Long: `Searches the Materials Project database with your requirements, filters out
candidates that fail hard constraints, scores and ranks the survivors, and
prints the top recommendations with a rationale for each.

Requirements are given as a JSON file; every recognized key is documented in
the schema and unknown keys are rejected. Configuration can be loaded from a
JSON file using --config; command-line flags override config file values.`,
	RunE: runRecommendCmd,
}

var (
	recConfigPath       string
	recRequirementsPath string
	recObjectives       []string
	recTopN             int
	recSearchLimit      int
	recAPIKey           string
	recCSVPath          string
	recVerbose          bool
)

func init() {
	recommendCommand.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCommand.Flags().StringVarP(&recRequirementsPath, "requirements", "r", "", "Path to requirements JSON file (omit for an unconstrained search)")
	recommendCommand.Flags().StringSliceVarP(&recObjectives, "objectives", "o", nil, "Optimization objectives (cost, weight, strength)")
	recommendCommand.Flags().IntVarP(&recTopN, "top", "n", 0, "Number of recommendations to return (default 5)")
	recommendCommand.Flags().IntVar(&recSearchLimit, "limit", 0, "Candidate pool size requested from the database (default 100)")
	recommendCommand.Flags().StringVar(&recCSVPath, "csv", "", "Also export the results to a CSV file")
	recommendCommand.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var MP_API_KEY
	recommendCommand.Flags().StringVar(&recAPIKey, "api-key", "", "Materials Project API key (optional, defaults to MP_API_KEY env var)")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommendCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(recConfigPath, config.Config{
		APIKey:      recAPIKey,
		TopN:        recTopN,
		SearchLimit: recSearchLimit,
		Verbose:     recVerbose,
	})
	if err != nil {
		return err
	}

	reqs, err := loadRequirements(recRequirementsPath)
	if err != nil {
		return err
	}

	objectives, err := types.ParseObjectives(recObjectives)
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	engine, err := recommend.New(ctx, client, &recommend.Options{SearchLimit: cfg.SearchLimit})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintln(cmd.OutOrStdout(), "Searching Materials Project database...")
	}

	result, err := engine.Recommend(ctx, reqs, objectives, cfg.TopN)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Run %s: %d recommendation(s)\n\n", result.RunID, len(result.Candidates))
	}

	display.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(result)

	if recCSVPath != "" {
		if err := writeCSV(recCSVPath, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results exported to %s\n", recCSVPath)
	}

	return nil
}

// loadRequirements reads and validates a requirements JSON file. An empty
// path means no constraints.
func loadRequirements(path string) (types.RequirementSet, error) {
	if path == "" {
		return types.RequirementSet{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.RequirementSet{}, fmt.Errorf("failed to read requirements file: %w", err)
	}

	if err := schemas.ValidateRequirements(data); err != nil {
		return types.RequirementSet{}, err
	}

	var reqs types.RequirementSet
	if err := json.Unmarshal(data, &reqs); err != nil {
		return types.RequirementSet{}, fmt.Errorf("failed to parse requirements file: %w", err)
	}
	return reqs, nil
}

func writeCSV(path string, result *types.RecommendationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := export.CSV(f, result); err != nil {
		return fmt.Errorf("CSV export failed: %w", err)
	}
	return nil
}
