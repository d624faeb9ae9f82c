package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/engine"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract canonical skills from a text file",
	Long:  "Extract skills from a resume or job description file using the built-in lexicon, pattern matching, and heuristics.",
	RunE:  runExtract,
}

var (
	extractFile string
	extractJSON bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to text file (required)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output skills as JSON")

	extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	skills := eng.ExtractSkills(string(text)).Names()

	if extractJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"skills": skills,
			"count":  len(skills),
		})
	}

	if len(skills) == 0 {
		fmt.Fprintln(os.Stdout, "No skills found")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Found %d skills:\n", len(skills))
	for _, s := range skills {
		fmt.Fprintf(os.Stdout, "  - %s\n", s)
	}
	return nil
}
