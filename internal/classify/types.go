// Package classify combines the weak-signal analyzers into calibrated
// category recommendations: matches are thresholded per signal type,
// conflict-resolved by fixed priority, aggregated into per-type scores,
// and mapped to a GTD category with an overall confidence.
package classify

import "github.com/fyrsmithlabs/clarifyd/internal/signal"

// GTD categories the engine can recommend.
const (
	CategoryNextAction = "next-action"
	CategoryProject    = "project"
	CategoryWaitingFor = "waiting-for"
)

// Confidence tiers for recommendations.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// FlagTwoMinuteRule marks items that likely satisfy the two-minute rule.
const FlagTwoMinuteRule = "two_minute_rule"

// ThresholdConfig maps each signal type to the minimum confidence a match
// needs to survive filtering. Fixed at engine construction.
type ThresholdConfig map[signal.Type]float64

// DefaultThresholds returns the uncalibrated default thresholds.
func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		signal.Priority:   0.8,
		signal.Project:    0.6,
		signal.Delegation: 0.7,
		signal.TwoMinute:  0.7,
	}
}

// Min returns the threshold for t, falling back to a permissive default
// for types missing from the map.
func (c ThresholdConfig) Min(t signal.Type) float64 {
	if v, ok := c[t]; ok {
		return v
	}
	return defaultThreshold
}

const defaultThreshold = 0.5

// Recommendation is the advisory output assembled from surviving matches.
// Pure data; the caller decides what to do with it.
type Recommendation struct {
	SuggestedCategory string   `json:"suggested_category"`
	SuggestedContexts []string `json:"suggested_contexts"`
	ConfidenceLevel   string   `json:"confidence_level"`
	Reasoning         []string `json:"reasoning"`
	Flags             []string `json:"flags"`
}

// AnalysisResult is the full outcome of one Analyze call. All entities are
// created fresh per call and owned by the caller.
type AnalysisResult struct {
	Text              string                `json:"text"`
	PrimaryCategory   string                `json:"primary_category"`
	Scores            map[string]float64    `json:"per_signal_score"`
	SurvivingMatches  []signal.PatternMatch `json:"surviving_matches"`
	Recommendation    Recommendation        `json:"recommendation"`
	OverallConfidence float64               `json:"overall_confidence"`
}

// Score returns the aggregated score for a signal type (0.0 when absent).
func (r *AnalysisResult) Score(t signal.Type) float64 {
	return r.Scores[t.String()]
}
