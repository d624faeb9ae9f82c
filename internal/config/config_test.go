package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"resume": "resume.txt",
		"port": 9090,
		"similar_top_n": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 8, cfg.SimilarTopN)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid empty", Config{}, ""},
		{"valid full", Config{Port: 8080, SimilarTopN: 5, RateLimitRPS: 10, RateLimitBurst: 20}, ""},
		{"negative port", Config{Port: -1}, "port"},
		{"port too large", Config{Port: 70000}, "port"},
		{"negative top n", Config{SimilarTopN: -1}, "similar_top_n"},
		{"negative rps", Config{RateLimitRPS: -0.5}, "rate_limit_rps"},
		{"negative burst", Config{RateLimitBurst: -2}, "rate_limit_burst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := Config{Resume: filepath.Join(t.TempDir(), "nope.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	cfg = Config{Job: filepath.Join(t.TempDir(), "nope.txt")}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0644))

	cfg := Config{Resume: resume}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9999}
	merged := cfg.MergeWithDefaults(Config{Resume: "default.txt", SimilarTopN: 7})

	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "default.txt", merged.Resume)
	assert.Equal(t, 7, merged.SimilarTopN)
	assert.Equal(t, DefaultRateLimit, merged.RateLimitRPS)
	assert.Equal(t, DefaultRateBurst, merged.RateLimitBurst)
}

func TestMergeWithDefaults_Fallbacks(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultSimilarTopN, merged.SimilarTopN)
}
