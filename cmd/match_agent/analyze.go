package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Run the full analysis pipeline: extract skills from both documents, match them, score the fit, and generate recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeConfig  string
	analyzeJSON    bool
	analyzeOut     string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full report as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the JSON report to a file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show gap insights and detected resume sections")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveAnalyzeConfig()
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	report, err := eng.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText:     string(resumeText),
		JobDescription: string(jobText),
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(analyzeOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		// Validate against schema (if schema file exists)
		schemaPath := schemas.ResolveSchemaPath("schemas/analysis_report.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, analyzeOut); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("generated report does not validate against schema: %w", err)
				}
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report against schema: %v\n", err)
			}
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", analyzeOut)
	}

	if cfg.JSONOutput {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResult(&report.Match)
	printer.PrintScore(&report.Score, report.ResumeLevel, report.JobLevel)
	printer.PrintRecommendations(report.Recommendations)
	if cfg.Verbose {
		printSections(os.Stdout, string(resumeText))
		printer.PrintGapInsights(report.GapInsights)
	}
	return nil
}

// printSections reports which named resume sections were recognized.
// Best effort; many resumes have no recognizable headers.
func printSections(w io.Writer, text string) {
	sections := extraction.ExtractSections(text)
	if len(sections) == 0 {
		return
	}
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "Resume sections detected: %s\n", strings.Join(names, ", "))
}

// resolveAnalyzeConfig merges the optional config file with defaults,
// then lets command line flags win.
func resolveAnalyzeConfig() (config.Config, error) {
	base := config.Config{}
	merged := base.MergeWithDefaults(config.Config{})
	if analyzeConfig != "" {
		loaded, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		merged = loaded.MergeWithDefaults(merged)
	}

	if analyzeResume != "" {
		merged.Resume = analyzeResume
	}
	if analyzeJob != "" {
		merged.Job = analyzeJob
	}
	if analyzeJSON {
		merged.JSONOutput = true
	}
	if analyzeVerbose {
		merged.Verbose = true
	}

	if merged.Resume == "" || merged.Job == "" {
		return config.Config{}, fmt.Errorf("both --resume and --job are required (or set them in the config file)")
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return merged, nil
}
