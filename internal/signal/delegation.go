package signal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/clarifyd/internal/nlp"
	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

const (
	delegationPhraseConfidence = 0.85
	delegationBaseConfidence   = 0.75
	delegationPersonConfidence = 0.9
	delegationFuzzyCutoff      = 80
	delegationFuzzyWeight      = 0.8
)

// DelegationAnalyzer detects items waiting on or handed off to someone
// else. It combines explicit waiting/blocked phrase patterns, a
// verb-plus-complement pattern (boosted when the complement is a person
// name), and fuzzy matching of delegation-verb inflections.
type DelegationAnalyzer struct {
	parser nlp.Parser
}

// NewDelegationAnalyzer returns a delegation analyzer. A nil parser
// disables person-name boosting; detection itself still runs.
func NewDelegationAnalyzer(parser nlp.Parser) *DelegationAnalyzer {
	if parser == nil {
		parser = nlp.Noop
	}
	return &DelegationAnalyzer{parser: parser}
}

// Analyze scores text for delegation/waiting-for indicators.
func (a *DelegationAnalyzer) Analyze(text string) []PatternMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := textmetrics.Tokenize(text)
	people := make(map[string]bool)
	for _, p := range a.parser.People(text) {
		for _, tok := range textmetrics.Tokenize(p) {
			people[tok] = true
		}
	}

	var matches []PatternMatch
	matches = append(matches, a.phraseMatches(tokens)...)
	matches = append(matches, a.complementMatches(tokens, people)...)
	matches = append(matches, a.fuzzyMatches(tokens)...)
	return matches
}

// phraseMatches finds "waiting/pending on|for X" and "blocked by X".
func (a *DelegationAnalyzer) phraseMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for i := 0; i+2 < len(tokens); i++ {
		if containsWord(waitingMarkers, tokens[i]) && containsWord(waitingPreps, tokens[i+1]) {
			span := strings.Join(tokens[i:i+3], " ")
			out = append(out, PatternMatch{
				Type:        Delegation,
				Confidence:  delegationPhraseConfidence,
				MatchedText: span,
				Explanation: fmt.Sprintf("Waiting pattern: %s", span),
				Metadata:    map[string]string{"method": "phrase", "marker": tokens[i]},
			})
		}
		if tokens[i] == "blocked" && tokens[i+1] == "by" {
			span := strings.Join(tokens[i:i+3], " ")
			out = append(out, PatternMatch{
				Type:        Delegation,
				Confidence:  delegationPhraseConfidence,
				MatchedText: span,
				Explanation: fmt.Sprintf("Blocked pattern: %s", span),
				Metadata:    map[string]string{"method": "phrase", "marker": "blocked"},
			})
		}
	}
	return out
}

// complementMatches finds a waiting/delegation verb followed by a
// complement, optionally through a preposition ("ask Maria", "assign to
// the team"). A person-name complement raises confidence.
func (a *DelegationAnalyzer) complementMatches(tokens []string, people map[string]bool) []PatternMatch {
	verbs := append(append([]string{}, waitingVerbs...), delegationVerbs...)

	var out []PatternMatch
	for i, tok := range tokens {
		verb := ""
		for _, stem := range verbs {
			if strings.HasPrefix(tok, stem) {
				verb = stem
				break
			}
		}
		if verb == "" {
			continue
		}

		complement, ok := complementAfter(tokens, i)
		if !ok {
			continue
		}

		confidence := delegationBaseConfidence
		if people[complement] {
			confidence = delegationPersonConfidence
		}
		out = append(out, PatternMatch{
			Type:        Delegation,
			Confidence:  confidence,
			MatchedText: tok + " " + complement,
			Explanation: fmt.Sprintf("Delegation structure: %s -> %s", verb, complement),
			Metadata: map[string]string{
				"method":     "complement",
				"verb":       verb,
				"complement": complement,
				"person":     strconv.FormatBool(people[complement]),
			},
		})
	}
	return out
}

// complementAfter returns the complement token following position i,
// skipping a single preposition and articles.
func complementAfter(tokens []string, i int) (string, bool) {
	j := i + 1
	if j < len(tokens) && (containsWord(waitingPreps, tokens[j]) || containsWord(delegationPreps, tokens[j])) {
		j++
	}
	for j < len(tokens) && (tokens[j] == "the" || tokens[j] == "a" || tokens[j] == "an") {
		j++
	}
	if j >= len(tokens) {
		return "", false
	}
	return tokens[j], true
}

// fuzzyMatches catches inflected or misspelled delegation verbs.
func (a *DelegationAnalyzer) fuzzyMatches(tokens []string) []PatternMatch {
	verbs := append(append([]string{}, waitingVerbs...), delegationVerbs...)

	var out []PatternMatch
	for _, verb := range verbs {
		word, score := bestTokenMatch(verb, tokens)
		if score < delegationFuzzyCutoff {
			continue
		}
		out = append(out, PatternMatch{
			Type:        Delegation,
			Confidence:  (float64(score) / 100.0) * delegationFuzzyWeight,
			MatchedText: word,
			Explanation: fmt.Sprintf("Fuzzy delegation match: %s -> %s", verb, word),
			Metadata: map[string]string{
				"method": "fuzzy",
				"verb":   verb,
				"score":  strconv.Itoa(score),
			},
		})
	}
	return out
}
