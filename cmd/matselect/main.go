// Package main provides the matselect command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matselect",
	Short: "Materials selection assistant",
	Long:  "matselect queries the Materials Project database, filters candidates against your constraints, and returns a scored, ranked, explained shortlist of materials.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
