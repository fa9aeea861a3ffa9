package contexts

import (
	"math"
	"strings"

	"github.com/fyrsmithlabs/clarifyd/internal/embeddings"
)

// DefaultSemanticThreshold is the minimum cosine similarity a context
// needs from the semantic scorer.
const DefaultSemanticThreshold = 0.25

// SemanticScorer scores contexts by embedding similarity: the text and
// each context's keywords are encoded, and a context's score is the best
// cosine similarity among its keywords. Embedding failures degrade to no
// signal, never errors.
type SemanticScorer struct {
	provider  embeddings.Provider
	threshold float64
}

// NewSemanticScorer returns a semantic scorer, or NullScorer when no
// provider is available.
func NewSemanticScorer(provider embeddings.Provider, threshold float64) Scorer {
	if provider == nil {
		return NullScorer{}
	}
	if threshold <= 0 {
		threshold = DefaultSemanticThreshold
	}
	return &SemanticScorer{provider: provider, threshold: threshold}
}

// Score returns contexts whose best keyword cosine similarity clears the
// threshold.
func (s *SemanticScorer) Score(text string, patterns map[string][]string) []Suggestion {
	if strings.TrimSpace(text) == "" || len(patterns) == 0 {
		return nil
	}

	textVec, err := s.provider.EmbedQuery(text)
	if err != nil || len(textVec) == 0 {
		return nil
	}

	var out []Suggestion
	for _, label := range sortedLabels(patterns) {
		keywords := patterns[label]
		if len(keywords) == 0 {
			continue
		}

		vecs, err := s.provider.EmbedPassages(keywords)
		if err != nil {
			return nil
		}

		best := -1.0
		for _, v := range vecs {
			if sim := cosine(textVec, v); sim > best {
				best = sim
			}
		}
		if best >= s.threshold {
			out = append(out, Suggestion{Context: label, Score: best})
		}
	}

	sortSuggestions(out)
	return out
}

// cosine computes cosine similarity between two vectors. Mismatched or
// zero-norm vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
