// Package main provides the entry point for the IdeaFit CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ideafit",
	Short: "IdeaFit quiz-to-report API server",
	Long:  "IdeaFit ranks a curated startup-idea library against a user's quiz answers and serves personalized reports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
