package contexts

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultFuzzyThreshold is the minimum 0-100 similarity a context needs.
const DefaultFuzzyThreshold = 70

// FuzzyScorer scores contexts by approximate string similarity: for each
// keyword it takes the better of a substring-tolerant (partial ratio) and
// a word-order-tolerant (token sort ratio) comparison against the text.
type FuzzyScorer struct {
	threshold int
}

// NewFuzzyScorer returns a fuzzy scorer. A threshold <= 0 selects the
// default.
func NewFuzzyScorer(threshold int) *FuzzyScorer {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &FuzzyScorer{threshold: threshold}
}

// Score returns contexts whose best keyword similarity clears the
// threshold, scored 0-100.
func (s *FuzzyScorer) Score(text string, patterns map[string][]string) []Suggestion {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" || len(patterns) == 0 {
		return nil
	}

	var out []Suggestion
	for _, label := range sortedLabels(patterns) {
		best := 0
		for _, keyword := range patterns[label] {
			if score := fuzzy.PartialRatio(keyword, lower); score > best {
				best = score
			}
			if score := fuzzy.TokenSortRatio(keyword, lower); score > best {
				best = score
			}
		}
		if best >= s.threshold {
			out = append(out, Suggestion{Context: label, Score: float64(best)})
		}
	}

	sortSuggestions(out)
	return out
}
