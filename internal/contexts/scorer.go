// Package contexts ranks GTD situational contexts (@calls, @computer,
// @errands, ...) for a text item. Three independent scorers - fuzzy string
// similarity, BM25 term relevance, and optional embedding similarity - are
// normalized and linearly combined into a ranked, truncated suggestion
// list.
package contexts

import "sort"

// Suggestion is one candidate context with its score. Scores are raw
// scorer output until the combiner normalizes them to [0,1].
type Suggestion struct {
	Context string  `json:"context_label"`
	Score   float64 `json:"combined_score"`
}

// Scorer scores text against a context -> keywords dictionary.
//
// Contract: returns suggestions sorted by descending score (label
// ascending on ties); empty text, an empty dictionary, or an unavailable
// backend yields nil, never an error.
type Scorer interface {
	Score(text string, patterns map[string][]string) []Suggestion
}

// NullScorer is a Scorer without a backend; it always reports no signal.
// Bound in place of the semantic scorer when no embedding provider is
// available.
type NullScorer struct{}

// Score always returns nil.
func (NullScorer) Score(string, map[string][]string) []Suggestion { return nil }

// sortedLabels returns dictionary keys in stable order so scoring is
// deterministic across calls.
func sortedLabels(patterns map[string][]string) []string {
	labels := make([]string, 0, len(patterns))
	for label := range patterns {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// sortSuggestions orders by descending score, ascending label on ties.
func sortSuggestions(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		return s[i].Context < s[j].Context
	})
}
