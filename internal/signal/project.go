package signal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/clarifyd/internal/nlp"
	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

const (
	projectVerbNounConfidence = 0.85
	projectPhraseConfidence   = 0.8
	projectMaxReadability     = 50.0
	projectMinWords           = 20
	projectHeuristicWeight    = 0.7
)

// ProjectAnalyzer detects multi-step project work. It combines a
// verb-followed-by-noun linguistic pattern, complexity phrase indicators,
// and a length/readability heuristic.
type ProjectAnalyzer struct {
	parser nlp.Parser
}

// NewProjectAnalyzer returns a project-complexity analyzer. A nil parser
// disables the verb+noun technique; the other techniques still run.
func NewProjectAnalyzer(parser nlp.Parser) *ProjectAnalyzer {
	if parser == nil {
		parser = nlp.Noop
	}
	return &ProjectAnalyzer{parser: parser}
}

// Analyze scores text for project-complexity indicators.
func (a *ProjectAnalyzer) Analyze(text string) []PatternMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var matches []PatternMatch
	matches = append(matches, a.verbNounMatches(text)...)
	matches = append(matches, a.phraseMatches(textmetrics.Tokenize(text))...)
	matches = append(matches, a.complexityMatch(text)...)
	return matches
}

// verbNounMatches finds a project verb immediately followed by a noun
// ("implement system", "build pipeline"). Needs the POS tagger; without
// it this technique contributes nothing.
func (a *ProjectAnalyzer) verbNounMatches(text string) []PatternMatch {
	tokens := a.parser.Tokens(text)
	if len(tokens) < 2 {
		return nil
	}

	var out []PatternMatch
	for i := 0; i+1 < len(tokens); i++ {
		verb := strings.ToLower(tokens[i].Text)
		if !containsWord(projectVerbs, verb) || !tokens[i+1].IsNoun() {
			continue
		}
		span := tokens[i].Text + " " + tokens[i+1].Text
		out = append(out, PatternMatch{
			Type:        Project,
			Confidence:  projectVerbNounConfidence,
			MatchedText: span,
			Explanation: fmt.Sprintf("Project construction: %s + noun", verb),
			Metadata:    map[string]string{"method": "verb_noun", "verb": verb},
		})
	}
	return out
}

// phraseMatches finds multi-step scope indicators verbatim.
func (a *ProjectAnalyzer) phraseMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for _, phrase := range complexityIndicators {
		if !containsPhrase(tokens, phrase) {
			continue
		}
		out = append(out, PatternMatch{
			Type:        Project,
			Confidence:  projectPhraseConfidence,
			MatchedText: phrase,
			Explanation: fmt.Sprintf("Complexity indicator: %s", phrase),
			Metadata:    map[string]string{"method": "phrase", "phrase": phrase},
		})
	}
	return out
}

// complexityMatch applies the length/readability heuristic: hard-to-read
// or long text suggests project scope.
func (a *ProjectAnalyzer) complexityMatch(text string) []PatternMatch {
	wordCount := textmetrics.WordCount(text)
	readability := textmetrics.FleschReadingEase(text)

	if readability >= projectMaxReadability && wordCount <= projectMinWords {
		return nil
	}

	readabilityFactor := clamp01((projectMaxReadability - readability) / projectMaxReadability)
	wordCountFactor := clamp01((float64(wordCount) - projectMinWords) / 30.0)
	confidence := max(readabilityFactor, wordCountFactor) * projectHeuristicWeight

	return []PatternMatch{{
		Type:        Project,
		Confidence:  clamp01(confidence),
		MatchedText: text,
		Explanation: fmt.Sprintf("Complex text: %d words, readability %.1f", wordCount, readability),
		Metadata: map[string]string{
			"method":      "complexity",
			"word_count":  strconv.Itoa(wordCount),
			"readability": strconv.FormatFloat(readability, 'f', 1, 64),
		},
	}}
}
