package signal

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

// bestTokenMatch returns the input token most similar to target and its
// weighted-ratio score (0-100). Returns score 0 when no tokens exist.
func bestTokenMatch(target string, tokens []string) (string, int) {
	best, bestScore := "", 0
	for _, tok := range tokens {
		if score := fuzzy.WRatio(target, tok); score > bestScore {
			best, bestScore = tok, score
		}
	}
	return best, bestScore
}

// containsPhrase reports whether the lowercase token sequence of phrase
// occurs contiguously in tokens.
func containsPhrase(tokens []string, phrase string) bool {
	want := textmetrics.Tokenize(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(want) <= len(tokens); i++ {
		for j, w := range want {
			if tokens[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}

// containsWord reports whether word occurs as a whole token in tokens.
func containsWord(tokens []string, word string) bool {
	for _, tok := range tokens {
		if tok == word {
			return true
		}
	}
	return false
}
