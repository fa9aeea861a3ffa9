// Package config provides configuration loading for clarifyd.
//
// Configuration is loaded from a YAML file, then overridden by environment
// variables, with hardcoded defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete clarifyd configuration.
type Config struct {
	Logging    LoggingConfig    `koanf:"logging"`
	Classify   ClassifyConfig   `koanf:"classify"`
	Contexts   ContextsConfig   `koanf:"contexts"`
	Embeddings EmbeddingsConfig `koanf:"embeddings"`
	Limits     LimitsConfig     `koanf:"limits"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// ClassifyConfig tunes the classification engine.
type ClassifyConfig struct {
	// Thresholds maps signal names (priority, project, delegation,
	// two_minute) to minimum confidences. Missing entries use defaults.
	Thresholds        map[string]float64 `koanf:"thresholds"`
	MaxMatchesPerType int                `koanf:"max_matches_per_type"`
	CategoryGate      float64            `koanf:"category_gate"`
}

// ContextsConfig tunes the context suggestion combiner.
type ContextsConfig struct {
	FuzzyThreshold int            `koanf:"fuzzy_threshold"`
	BM25TopK       int            `koanf:"bm25_top_k"`
	MaxContexts    int            `koanf:"max_contexts"`
	ScoreFloor     float64        `koanf:"score_floor"`
	Weights        ContextWeights `koanf:"weights"`
}

// ContextWeights are the scorer combination coefficients.
type ContextWeights struct {
	Fuzzy    float64 `koanf:"fuzzy"`
	Ranked   float64 `koanf:"ranked"`
	Semantic float64 `koanf:"semantic"`
}

// EmbeddingsConfig holds local embedding model configuration.
type EmbeddingsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Model    string `koanf:"model"`
	CacheDir string `koanf:"cache_dir"`
}

// LimitsConfig holds input validation limits.
type LimitsConfig struct {
	MaxInputLength int `koanf:"max_input_length"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Classify.MaxMatchesPerType == 0 {
		cfg.Classify.MaxMatchesPerType = 3
	}
	if cfg.Classify.CategoryGate == 0 {
		cfg.Classify.CategoryGate = 0.3
	}

	if cfg.Contexts.FuzzyThreshold == 0 {
		cfg.Contexts.FuzzyThreshold = 70
	}
	if cfg.Contexts.BM25TopK == 0 {
		cfg.Contexts.BM25TopK = 5
	}
	if cfg.Contexts.MaxContexts == 0 {
		cfg.Contexts.MaxContexts = 3
	}
	if cfg.Contexts.ScoreFloor == 0 {
		cfg.Contexts.ScoreFloor = 0.1
	}
	if cfg.Contexts.Weights == (ContextWeights{}) {
		cfg.Contexts.Weights = ContextWeights{Fuzzy: 0.4, Ranked: 0.4, Semantic: 0.2}
	}

	if cfg.Embeddings.Model == "" {
		cfg.Embeddings.Model = "BAAI/bge-small-en-v1.5"
	}
	if cfg.Embeddings.CacheDir == "" {
		cfg.Embeddings.CacheDir = "local_cache"
	}

	if cfg.Limits.MaxInputLength == 0 {
		cfg.Limits.MaxInputLength = 10000
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	for name, v := range c.Classify.Thresholds {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold for %q out of range: %v (must be 0-1)", name, v)
		}
	}
	if c.Classify.MaxMatchesPerType < 1 {
		return errors.New("max_matches_per_type must be positive")
	}
	if c.Classify.CategoryGate < 0 || c.Classify.CategoryGate >= 1 {
		return fmt.Errorf("category_gate out of range: %v (must be in [0,1))", c.Classify.CategoryGate)
	}

	if c.Contexts.FuzzyThreshold < 1 || c.Contexts.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy_threshold out of range: %d (must be 1-100)", c.Contexts.FuzzyThreshold)
	}
	if c.Contexts.BM25TopK < 1 {
		return errors.New("bm25_top_k must be positive")
	}
	if c.Contexts.MaxContexts < 1 {
		return errors.New("max_contexts must be positive")
	}
	if c.Contexts.ScoreFloor < 0 || c.Contexts.ScoreFloor >= 1 {
		return fmt.Errorf("score_floor out of range: %v (must be in [0,1))", c.Contexts.ScoreFloor)
	}
	w := c.Contexts.Weights
	if w.Fuzzy < 0 || w.Ranked < 0 || w.Semantic < 0 {
		return errors.New("context weights must be non-negative")
	}
	if w.Fuzzy+w.Ranked+w.Semantic <= 0 {
		return errors.New("context weights must sum to a positive value")
	}

	if c.Embeddings.Enabled && c.Embeddings.Model == "" {
		return errors.New("embeddings model required when embeddings are enabled")
	}

	if c.Limits.MaxInputLength < 1 {
		return errors.New("max_input_length must be positive")
	}

	return nil
}
