// Package signal implements the weak-signal analyzers behind GTD
// clarification. Each analyzer independently scores free text for one
// classification dimension and emits zero or more confidence-weighted
// pattern matches; combining them is the classify package's job.
package signal

import "fmt"

// Type identifies which classification dimension a match belongs to.
// The numeric values double as conflict-resolution priority and as the
// aggregation weight numerator: higher types win ties and contribute more.
type Type int

const (
	// TwoMinute marks quick tasks completable in roughly two minutes.
	TwoMinute Type = 1
	// Delegation marks items waiting on or handed to someone else.
	Delegation Type = 2
	// Project marks multi-step outcomes that need planning.
	Project Type = 3
	// Priority marks urgent or deadline-bound items.
	Priority Type = 4
)

// MaxRank is the highest priority rank, used to normalize rank weights.
const MaxRank = 4

// Types lists all signal types in descending priority order.
var Types = []Type{Priority, Project, Delegation, TwoMinute}

// String returns the wire name of the signal type.
func (t Type) String() string {
	switch t {
	case Priority:
		return "priority"
	case Project:
		return "project"
	case Delegation:
		return "delegation"
	case TwoMinute:
		return "two_minute"
	default:
		return fmt.Sprintf("signal(%d)", int(t))
	}
}

// Rank returns the fixed priority rank (1-4).
func (t Type) Rank() int { return int(t) }

// Weight returns the aggregation weight, rank normalized to (0,1].
func (t Type) Weight() float64 { return float64(t) / MaxRank }

// MarshalText implements encoding.TextMarshaler so Type serializes by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// PatternMatch is a single analyzer finding: one detected pattern with a
// calibrated confidence. Matches are created fresh per Analyze call and
// never retained by the analyzers.
type PatternMatch struct {
	Type        Type              `json:"signal_type"`
	Confidence  float64           `json:"confidence"`
	MatchedText string            `json:"matched_text"`
	Explanation string            `json:"explanation"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Analyzer scores text for a single signal type.
//
// Contract: empty or whitespace-only input returns nil immediately;
// malformed, non-English, or adversarial input yields fewer or zero
// matches, never an error; output order is deterministic for a given
// input and configuration.
type Analyzer interface {
	Analyze(text string) []PatternMatch
}

// clamp01 bounds a confidence to [0,1]. The blending heuristics can
// mathematically exceed the range on extreme inputs.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
