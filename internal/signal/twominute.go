package signal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

// Confidence and gating constants for two-minute detection. Carried from
// field use; overridable only by recalibration, not configuration.
const (
	twoMinuteExactConfidence = 0.9
	twoMinuteFuzzyCutoff     = 85
	twoMinuteMaxWords        = 10
	twoMinuteMinReadability  = 60.0
	twoMinuteHeuristicCap    = 0.8
)

// TwoMinuteAnalyzer detects quick tasks: items completable in roughly two
// minutes. It combines exact keyword/time-expression detection, fuzzy
// keyword similarity, and a brevity/readability heuristic.
type TwoMinuteAnalyzer struct{}

// NewTwoMinuteAnalyzer returns a two-minute rule analyzer.
func NewTwoMinuteAnalyzer() *TwoMinuteAnalyzer {
	return &TwoMinuteAnalyzer{}
}

// Analyze scores text for two-minute indicators.
func (a *TwoMinuteAnalyzer) Analyze(text string) []PatternMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := textmetrics.Tokenize(text)
	var matches []PatternMatch

	matches = append(matches, a.exactMatches(tokens)...)
	matches = append(matches, a.fuzzyMatches(tokens)...)
	matches = append(matches, a.complexityMatch(text)...)

	return matches
}

// exactMatches finds quick keywords and time expressions verbatim.
func (a *TwoMinuteAnalyzer) exactMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for _, kw := range quickKeywords {
		if containsWord(tokens, kw) {
			out = append(out, PatternMatch{
				Type:        TwoMinute,
				Confidence:  twoMinuteExactConfidence,
				MatchedText: kw,
				Explanation: fmt.Sprintf("Quick-task keyword: %s", kw),
				Metadata:    map[string]string{"method": "keyword", "keyword": kw},
			})
		}
	}
	for _, phrase := range timeIndicators {
		if containsPhrase(tokens, phrase) {
			out = append(out, PatternMatch{
				Type:        TwoMinute,
				Confidence:  twoMinuteExactConfidence,
				MatchedText: phrase,
				Explanation: fmt.Sprintf("Short time expression: %s", phrase),
				Metadata:    map[string]string{"method": "time_expression", "phrase": phrase},
			})
		}
	}
	return out
}

// fuzzyMatches finds near-miss spellings of quick keywords. Keywords that
// already hit exactly are skipped so one keyword never emits two matches.
func (a *TwoMinuteAnalyzer) fuzzyMatches(tokens []string) []PatternMatch {
	var out []PatternMatch
	for _, kw := range quickKeywords {
		if containsWord(tokens, kw) {
			continue
		}
		word, score := bestTokenMatch(kw, tokens)
		if score < twoMinuteFuzzyCutoff {
			continue
		}
		out = append(out, PatternMatch{
			Type:        TwoMinute,
			Confidence:  float64(score) / 100.0,
			MatchedText: word,
			Explanation: fmt.Sprintf("Fuzzy match for %q (score %d)", kw, score),
			Metadata: map[string]string{
				"method":  "fuzzy",
				"keyword": kw,
				"score":   strconv.Itoa(score),
			},
		})
	}
	return out
}

// complexityMatch applies the brevity heuristic: very short, very readable
// text is probably a two-minute task.
func (a *TwoMinuteAnalyzer) complexityMatch(text string) []PatternMatch {
	wordCount := textmetrics.WordCount(text)
	readability := textmetrics.FleschReadingEase(text)

	if wordCount >= twoMinuteMaxWords || readability <= twoMinuteMinReadability {
		return nil
	}

	confidence := clamp01(min(
		twoMinuteHeuristicCap,
		(70.0-float64(wordCount))/70.0+(readability-60.0)/40.0,
	))

	return []PatternMatch{{
		Type:        TwoMinute,
		Confidence:  confidence,
		MatchedText: text,
		Explanation: fmt.Sprintf("Simple task: %d words, readability %.1f", wordCount, readability),
		Metadata: map[string]string{
			"method":      "complexity",
			"word_count":  strconv.Itoa(wordCount),
			"readability": strconv.FormatFloat(readability, 'f', 1, 64),
		},
	}}
}
