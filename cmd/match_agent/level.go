package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/engine"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Detect the experience level expressed in a text file",
	RunE:  runLevel,
}

var (
	levelFile string
	levelJSON bool
)

func init() {
	levelCmd.Flags().StringVarP(&levelFile, "file", "f", "", "Path to text file (required)")
	levelCmd.Flags().BoolVar(&levelJSON, "json", false, "Output the level as JSON")

	levelCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(levelCmd)
}

func runLevel(_ *cobra.Command, _ []string) error {
	text, err := os.ReadFile(levelFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	level := eng.DetectExperienceLevel(string(text))

	if levelJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"level": level.String(),
		})
	}

	fmt.Fprintf(os.Stdout, "Experience level: %s\n", level)
	return nil
}
