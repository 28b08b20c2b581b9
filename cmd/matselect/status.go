package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahmedawad/matselect/internal/config"
)

var statusCommand = &cobra.Command{
	Use:   "status",
	Short: "Check Materials Project API connectivity and credentials",
	RunE:  runStatusCmd,
}

var (
	statusConfigPath string
	statusAPIKey     string
)

func init() {
	statusCommand.Flags().StringVar(&statusConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	statusCommand.Flags().StringVar(&statusAPIKey, "api-key", "", "Materials Project API key (optional, defaults to MP_API_KEY env var)")

	rootCmd.AddCommand(statusCommand)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(statusConfigPath, config.Config{APIKey: statusAPIKey})
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	ok, err := client.CheckStatus(ctx)
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("Materials Project API rejected the status probe")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Materials Project API connected")
	return nil
}
