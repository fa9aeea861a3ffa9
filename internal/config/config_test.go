package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points HOME at a temp dir and returns the clarifyd config dir.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "clarifyd")
	require.NoError(t, os.MkdirAll(dir, 0700))
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Classify.MaxMatchesPerType)
	assert.InDelta(t, 0.3, cfg.Classify.CategoryGate, 1e-9)
	assert.Equal(t, 70, cfg.Contexts.FuzzyThreshold)
	assert.Equal(t, 5, cfg.Contexts.BM25TopK)
	assert.Equal(t, 3, cfg.Contexts.MaxContexts)
	assert.InDelta(t, 0.1, cfg.Contexts.ScoreFloor, 1e-9)
	assert.InDelta(t, 0.4, cfg.Contexts.Weights.Fuzzy, 1e-9)
	assert.InDelta(t, 0.4, cfg.Contexts.Weights.Ranked, 1e-9)
	assert.InDelta(t, 0.2, cfg.Contexts.Weights.Semantic, 1e-9)
	assert.False(t, cfg.Embeddings.Enabled)
	assert.Equal(t, "BAAI/bge-small-en-v1.5", cfg.Embeddings.Model)
	assert.Equal(t, 10000, cfg.Limits.MaxInputLength)
}

func TestLoadWithFileMissingFileUsesDefaults(t *testing.T) {
	setupHome(t)

	cfg, err := LoadWithFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithFileYAML(t *testing.T) {
	dir := setupHome(t)

	content := []byte(`
logging:
  level: debug
  format: console
classify:
  category_gate: 0.5
  thresholds:
    priority: 0.9
contexts:
  max_contexts: 5
limits:
  max_input_length: 500
`)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0600))

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.InDelta(t, 0.5, cfg.Classify.CategoryGate, 1e-9)
	assert.InDelta(t, 0.9, cfg.Classify.Thresholds["priority"], 1e-9)
	assert.Equal(t, 5, cfg.Contexts.MaxContexts)
	assert.Equal(t, 500, cfg.Limits.MaxInputLength)

	// Unset fields still get defaults.
	assert.Equal(t, 3, cfg.Classify.MaxMatchesPerType)
	assert.Equal(t, 70, cfg.Contexts.FuzzyThreshold)
}

func TestLoadWithFileEnvOverridesYAML(t *testing.T) {
	dir := setupHome(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0600))

	t.Setenv("CLARIFYD_LOGGING_LEVEL", "error")
	t.Setenv("CLARIFYD_LIMITS_MAX_INPUT_LENGTH", "250")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 250, cfg.Limits.MaxInputLength)
}

func TestLoadWithFileRejectsInsecurePermissions(t *testing.T) {
	dir := setupHome(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644))

	_, err := LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insecure config file permissions")
}

func TestLoadWithFileRejectsOutsideAllowedDirs(t *testing.T) {
	setupHome(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0600))

	_, err := LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path validation failed")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "bad logging level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			errMsg: "invalid logging level",
		},
		{
			name:   "bad logging format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			errMsg: "invalid logging format",
		},
		{
			name:   "threshold out of range",
			mutate: func(c *Config) { c.Classify.Thresholds = map[string]float64{"priority": 1.5} },
			errMsg: "threshold",
		},
		{
			name:   "category gate too high",
			mutate: func(c *Config) { c.Classify.CategoryGate = 1.0 },
			errMsg: "category_gate",
		},
		{
			name:   "negative weight",
			mutate: func(c *Config) { c.Contexts.Weights.Fuzzy = -0.1 },
			errMsg: "non-negative",
		},
		{
			name:   "zero weight sum",
			mutate: func(c *Config) { c.Contexts.Weights = ContextWeights{} },
			errMsg: "positive value",
		},
		{
			name:   "fuzzy threshold out of range",
			mutate: func(c *Config) { c.Contexts.FuzzyThreshold = 101 },
			errMsg: "fuzzy_threshold",
		},
		{
			name:   "zero max input length",
			mutate: func(c *Config) { c.Limits.MaxInputLength = -1 },
			errMsg: "max_input_length",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
