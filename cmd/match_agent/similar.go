package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var similarCmd = &cobra.Command{
	Use:   "similar [skill]",
	Short: "List skills similar to a given skill",
	Long:  "Rank the lexicon's skills by TF-IDF description similarity to the given skill name or synonym.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

var (
	similarLimit int
	similarJSON  bool
)

func init() {
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 5, "Number of neighbors to return")
	similarCmd.Flags().BoolVar(&similarJSON, "json", false, "Output matches as JSON")

	rootCmd.AddCommand(similarCmd)
}

func runSimilar(_ *cobra.Command, args []string) error {
	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	skill := args[0]
	matches, err := eng.SimilarSkills(skill, similarLimit)
	if err != nil {
		return err
	}

	if similarJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"skill":   skill,
			"similar": matches,
		})
	}

	observability.NewPrinter(os.Stdout).PrintSimilarSkills(skill, matches)
	return nil
}
