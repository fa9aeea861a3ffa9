package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/clarifyd/internal/classify"
	"github.com/fyrsmithlabs/clarifyd/internal/contexts"
	"github.com/fyrsmithlabs/clarifyd/internal/sanitize"
)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()
	engine := classify.NewEngine(classify.Options{})
	combiner := contexts.NewCombiner(contexts.CombinerOptions{})

	s, err := NewServer(cfg, engine, combiner)
	require.NoError(t, err)
	return s
}

func TestNewServer(t *testing.T) {
	s := newTestServer(t, nil)
	require.NotNil(t, s)
	assert.NotNil(t, s.mcp)
	assert.NotNil(t, s.patterns)
	assert.NotNil(t, s.logger)
}

func TestNewServerRequiresEngine(t *testing.T) {
	combiner := contexts.NewCombiner(contexts.CombinerOptions{})
	_, err := NewServer(nil, nil, combiner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine is required")
}

func TestNewServerRequiresCombiner(t *testing.T) {
	engine := classify.NewEngine(classify.Options{})
	_, err := NewServer(nil, engine, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combiner is required")
}

func TestValidateCleansAndChecksInput(t *testing.T) {
	s := newTestServer(t, nil)

	text, err := s.validate("  call mom\x00  ")
	require.NoError(t, err)
	assert.Equal(t, "call mom", text)

	_, err = s.validate("   ")
	assert.ErrorIs(t, err, sanitize.ErrEmptyText)
}

func TestValidateEnforcesConfiguredLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInputLength = 10
	s := newTestServer(t, cfg)

	_, err := s.validate(strings.Repeat("x", 11))
	assert.ErrorIs(t, err, sanitize.ErrTextTooLong)

	text, err := s.validate(strings.Repeat("x", 10))
	require.NoError(t, err)
	assert.Len(t, text, 10)
}

func TestServerEndToEndClassification(t *testing.T) {
	s := newTestServer(t, nil)

	text, err := s.validate("waiting on John for the budget numbers")
	require.NoError(t, err)

	result := s.engine.Analyze(text)
	assert.Equal(t, classify.CategoryWaitingFor, result.PrimaryCategory)

	suggestions := s.combiner.Suggest("call the insurance company", s.patterns)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "@calls", suggestions[0].Context)
}
