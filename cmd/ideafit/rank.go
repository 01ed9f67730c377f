package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smith505/ideafit/internal/fit"
	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the idea library against quiz answers",
	Long:  "Deterministically ranks the idea library against a quiz answers JSON file, printing the ranked result as JSON.",
	RunE:  runRank,
}

var (
	rankAnswers string
	rankLibrary string
	rankLimit   int
)

func init() {
	rankCmd.Flags().StringVarP(&rankAnswers, "answers", "a", "", "Path to input QuizAnswers JSON file (required)")
	rankCmd.Flags().StringVarP(&rankLibrary, "library", "l", "", "Path to idea library JSON document (required)")
	rankCmd.Flags().IntVar(&rankLimit, "limit", fit.DefaultLimit, "Number of ranked ideas to return")

	if err := rankCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("library"); err != nil {
		panic(fmt.Sprintf("failed to mark library flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	answersContent, err := os.ReadFile(rankAnswers)
	if err != nil {
		return fmt.Errorf("failed to read answers file %s: %w", rankAnswers, err)
	}

	var answers types.QuizAnswers
	if err := json.Unmarshal(answersContent, &answers); err != nil {
		return fmt.Errorf("failed to unmarshal answers JSON: %w", err)
	}

	lib, err := library.Load(rankLibrary)
	if err != nil {
		return fmt.Errorf("failed to load idea library: %w", err)
	}

	ranker := fit.NewRanker(lib)
	result, err := ranker.Rank(answers, &fit.RankOptions{Limit: rankLimit})
	if err != nil {
		return fmt.Errorf("failed to rank ideas: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rank result to JSON: %w", err)
	}

	fmt.Println(string(jsonOutput))
	return nil
}
