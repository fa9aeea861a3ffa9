package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/clarifyd/internal/classify"
	"github.com/fyrsmithlabs/clarifyd/internal/signal"
)

func TestThresholdsFromConfig(t *testing.T) {
	assert.Nil(t, thresholdsFromConfig(nil))

	got := thresholdsFromConfig(map[string]float64{
		"priority": 0.95,
		"unknown":  0.1,
	})
	require.NotNil(t, got)
	assert.InDelta(t, 0.95, got[signal.Priority], 1e-9)

	// Unmentioned signals keep their defaults.
	defaults := classify.DefaultThresholds()
	assert.InDelta(t, defaults[signal.Project], got[signal.Project], 1e-9)
	assert.InDelta(t, defaults[signal.Delegation], got[signal.Delegation], 1e-9)
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "contexts", "serve"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
