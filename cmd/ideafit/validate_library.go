package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smith505/ideafit/internal/library"
)

var validateLibraryCmd = &cobra.Command{
	Use:   "validate-library",
	Short: "Validate an idea library document",
	Long:  "Checks a library JSON document against the schema and load-time invariants (non-empty, unique candidate ids). Used as the handoff gate for the offline ingestion pipeline.",
	RunE:  runValidateLibrary,
}

var validateLibraryPath string

func init() {
	validateLibraryCmd.Flags().StringVarP(&validateLibraryPath, "library", "l", "", "Path to idea library JSON document (required)")

	if err := validateLibraryCmd.MarkFlagRequired("library"); err != nil {
		panic(fmt.Sprintf("failed to mark library flag as required: %v", err))
	}

	rootCmd.AddCommand(validateLibraryCmd)
}

func runValidateLibrary(_ *cobra.Command, _ []string) error {
	lib, err := library.Load(validateLibraryPath)
	if err != nil {
		return fmt.Errorf("library validation failed: %w", err)
	}

	fmt.Printf("OK: %d candidates\n", lib.Len())
	return nil
}
