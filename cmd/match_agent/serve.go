package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, skill extraction, and skill similarity.`,
	RunE:  runServe,
}

var (
	servePort   int
	serveConfig string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	base := config.Config{}
	merged := base.MergeWithDefaults(config.Config{})
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		merged = loaded.MergeWithDefaults(merged)
	}
	if servePort != 0 {
		merged.Port = servePort
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:        merged.Port,
		SimilarTopN: merged.SimilarTopN,
	}, eng)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
