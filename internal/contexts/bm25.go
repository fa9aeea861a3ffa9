package contexts

import (
	"math"

	"github.com/fyrsmithlabs/clarifyd/internal/textmetrics"
)

// BM25 Okapi parameters, matching the reference ranking library the
// scoring was calibrated against.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// DefaultBM25TopK caps how many contexts the BM25 scorer returns.
const DefaultBM25TopK = 5

// BM25Scorer ranks contexts by treating each context's keyword list as a
// short reference document and scoring it against the text with BM25
// Okapi. Non-positive scores are filtered; the result is capped at topK.
type BM25Scorer struct {
	topK int
}

// NewBM25Scorer returns a BM25 scorer. topK <= 0 selects the default.
func NewBM25Scorer(topK int) *BM25Scorer {
	if topK <= 0 {
		topK = DefaultBM25TopK
	}
	return &BM25Scorer{topK: topK}
}

// Score ranks contexts by BM25 relevance to the text.
func (s *BM25Scorer) Score(text string, patterns map[string][]string) []Suggestion {
	query := textmetrics.Tokenize(text)
	if len(query) == 0 || len(patterns) == 0 {
		return nil
	}

	labels := sortedLabels(patterns)

	// Flatten each context's keywords into one token document.
	docs := make([][]string, len(labels))
	totalLen := 0
	for i, label := range labels {
		var doc []string
		for _, keyword := range patterns[label] {
			doc = append(doc, textmetrics.Tokenize(keyword)...)
		}
		docs[i] = doc
		totalLen += len(doc)
	}
	avgLen := float64(totalLen) / float64(len(docs))
	if avgLen == 0 {
		return nil
	}

	// Document frequency per unique query term, for IDF. Counting per
	// occurrence would let a repeated term exceed the corpus size and
	// flip its IDF negative.
	unique := make(map[string]bool, len(query))
	for _, term := range query {
		unique[term] = true
	}
	df := make(map[string]int, len(unique))
	for _, doc := range docs {
		seen := map[string]bool{}
		for _, tok := range doc {
			seen[tok] = true
		}
		for term := range unique {
			if seen[term] {
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	var out []Suggestion
	for i, label := range labels {
		doc := docs[i]
		if len(doc) == 0 {
			continue
		}

		tf := make(map[string]int, len(doc))
		for _, tok := range doc {
			tf[tok]++
		}

		score := 0.0
		norm := bm25K1 * (1 - bm25B + bm25B*float64(len(doc))/avgLen)
		for _, term := range query {
			f := float64(tf[term])
			if f == 0 {
				continue
			}
			idf := math.Log((n-float64(df[term])+0.5)/(float64(df[term])+0.5) + 1)
			score += idf * (f * (bm25K1 + 1)) / (f + norm)
		}

		if score > 0 {
			out = append(out, Suggestion{Context: label, Score: score})
		}
	}

	sortSuggestions(out)
	if len(out) > s.topK {
		out = out[:s.topK]
	}
	return out
}
