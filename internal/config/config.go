// Package config provides configuration loading and validation for the
// CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultPort        = 8080
	DefaultSimilarTopN = 5
	DefaultRateLimit   = 10.0
	DefaultRateBurst   = 20
)

// Config is the tool configuration, loadable from a JSON file. All
// fields are optional; missing values fall back to defaults or CLI
// flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file

	// Server
	Port           int     `json:"port,omitempty"`             // HTTP listen port
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst allowance per client

	// Behavior
	SimilarTopN int  `json:"similar_top_n,omitempty"` // Neighbors returned by similar-skills queries
	Verbose     bool `json:"verbose,omitempty"`       // Print detailed debug information
	JSONOutput  bool `json:"json_output,omitempty"`   // Emit machine-readable JSON instead of text
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values. Required
// fields are not enforced here; flag handling decides what is required
// per command.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.SimilarTopN < 0 {
		return fmt.Errorf("config error: 'similar_top_n' must be non-negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, then from the package-level fallbacks.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	if result.SimilarTopN == 0 {
		result.SimilarTopN = defaults.SimilarTopN
	}
	if result.SimilarTopN == 0 {
		result.SimilarTopN = DefaultSimilarTopN
	}

	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = DefaultRateLimit
	}

	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = DefaultRateBurst
	}

	// Bool fields cannot distinguish unset from false, so flags always
	// win for those.
	return result
}
