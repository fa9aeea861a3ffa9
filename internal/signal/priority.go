package signal

import (
	"fmt"
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

const (
	priorityExactConfidence = 0.9
	priorityFuzzyCutoff     = 85
	priorityFuzzyWeight     = 0.8
)

// PriorityAnalyzer detects urgency and deadline pressure via a tiered
// phrase dictionary plus partial-substring fuzzy matching of deadline
// phrases (catches typos like "deadlne today").
type PriorityAnalyzer struct{}

// NewPriorityAnalyzer returns a priority/urgency analyzer.
func NewPriorityAnalyzer() *PriorityAnalyzer {
	return &PriorityAnalyzer{}
}

// Analyze scores text for priority/urgency indicators.
func (a *PriorityAnalyzer) Analyze(text string) []PatternMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := textmetrics.Tokenize(text)
	lower := strings.ToLower(text)

	var matches []PatternMatch
	matches = append(matches, a.tierMatches(tokens)...)
	matches = append(matches, a.deadlineMatches(tokens)...)
	matches = append(matches, a.fuzzyDeadlineMatches(lower)...)
	return matches
}

// tierMatches finds urgency keywords from the three priority tiers.
func (a *PriorityAnalyzer) tierMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for _, tier := range priorityTiers {
		for _, phrase := range tier.Phrases {
			if !containsPhrase(tokens, phrase) {
				continue
			}
			out = append(out, PatternMatch{
				Type:        Priority,
				Confidence:  priorityExactConfidence,
				MatchedText: phrase,
				Explanation: fmt.Sprintf("Priority indicator (%s): %s", tier.Tier, phrase),
				Metadata:    map[string]string{"method": "tier", "tier": tier.Tier, "phrase": phrase},
			})
		}
	}
	return out
}

// deadlineMatches finds deadline phrases verbatim.
func (a *PriorityAnalyzer) deadlineMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for _, phrase := range deadlinePhrases {
		if !containsPhrase(tokens, phrase) {
			continue
		}
		out = append(out, PatternMatch{
			Type:        Priority,
			Confidence:  priorityExactConfidence,
			MatchedText: phrase,
			Explanation: fmt.Sprintf("Deadline indicator: %s", phrase),
			Metadata:    map[string]string{"method": "deadline", "phrase": phrase},
		})
	}
	return out
}

// fuzzyDeadlineMatches finds approximate deadline phrases as substrings.
// Phrases that already matched verbatim score 100 here; the verbatim
// match carries higher confidence, so duplication is filtered upstream by
// the per-type cap rather than here.
func (a *PriorityAnalyzer) fuzzyDeadlineMatches(lower string) []PatternMatch {
	var out []PatternMatch
	for _, phrase := range deadlinePhrases {
		score := fuzzy.PartialRatio(phrase, lower)
		if score < priorityFuzzyCutoff {
			continue
		}
		out = append(out, PatternMatch{
			Type:        Priority,
			Confidence:  (float64(score) / 100.0) * priorityFuzzyWeight,
			MatchedText: phrase,
			Explanation: fmt.Sprintf("Approximate deadline phrase: %s (score %d)", phrase, score),
			Metadata: map[string]string{
				"method": "fuzzy_deadline",
				"phrase": phrase,
				"score":  strconv.Itoa(score),
			},
		})
	}
	return out
}
