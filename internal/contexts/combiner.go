package contexts

import (
	"gonum.org/v1/gonum/floats"
)

// Defaults for the combination policy.
const (
	DefaultMaxContexts = 3
	// DefaultScoreFloor drops combined suggestions at or below this value.
	DefaultScoreFloor = 0.1
)

// Weights are the linear-combination coefficients for the three scorers.
type Weights struct {
	Fuzzy    float64 `koanf:"fuzzy" json:"fuzzy"`
	Ranked   float64 `koanf:"ranked" json:"ranked"`
	Semantic float64 `koanf:"semantic" json:"semantic"`
}

// DefaultWeights returns the stock combination weights.
func DefaultWeights() Weights {
	return Weights{Fuzzy: 0.4, Ranked: 0.4, Semantic: 0.2}
}

// valid reports whether the weights can produce a positive combination.
func (w Weights) valid() bool {
	return w.Fuzzy >= 0 && w.Ranked >= 0 && w.Semantic >= 0 &&
		w.Fuzzy+w.Ranked+w.Semantic > 0
}

// CombinerOptions tunes the combiner. Zero values select defaults.
type CombinerOptions struct {
	// Fuzzy, Ranked, Semantic override the stock scorers; nil selects the
	// default implementation (NullScorer for Semantic).
	Fuzzy    Scorer
	Ranked   Scorer
	Semantic Scorer
	// Weights for the linear combination. Invalid weights fall back to
	// defaults rather than failing.
	Weights Weights
	// MaxContexts truncates the combined list. <=0 means default.
	MaxContexts int
	// ScoreFloor drops weak combined suggestions. <=0 means default.
	ScoreFloor float64
}

// Combiner normalizes and linearly combines the three context scorers
// into one ranked suggestion list.
type Combiner struct {
	fuzzy    Scorer
	ranked   Scorer
	semantic Scorer
	weights  Weights
	maxOut   int
	floor    float64
}

// NewCombiner builds a combiner from options.
func NewCombiner(opts CombinerOptions) *Combiner {
	c := &Combiner{
		fuzzy:    opts.Fuzzy,
		ranked:   opts.Ranked,
		semantic: opts.Semantic,
		weights:  opts.Weights,
		maxOut:   opts.MaxContexts,
		floor:    opts.ScoreFloor,
	}
	if c.fuzzy == nil {
		c.fuzzy = NewFuzzyScorer(0)
	}
	if c.ranked == nil {
		c.ranked = NewBM25Scorer(0)
	}
	if c.semantic == nil {
		c.semantic = NullScorer{}
	}
	if !c.weights.valid() {
		c.weights = DefaultWeights()
	}
	if c.maxOut <= 0 {
		c.maxOut = DefaultMaxContexts
	}
	if c.floor <= 0 {
		c.floor = DefaultScoreFloor
	}
	return c
}

// Suggest returns the ranked, truncated context list for the text.
// Deterministic for a given text and dictionary; never errors.
func (c *Combiner) Suggest(text string, patterns map[string][]string) []Suggestion {
	fuzzyNorm := normalize(c.fuzzy.Score(text, patterns))
	rankedNorm := normalize(c.ranked.Score(text, patterns))
	semanticNorm := normalize(c.semantic.Score(text, patterns))

	combined := make(map[string]float64)
	for label, v := range fuzzyNorm {
		combined[label] += c.weights.Fuzzy * v
	}
	for label, v := range rankedNorm {
		combined[label] += c.weights.Ranked * v
	}
	for label, v := range semanticNorm {
		combined[label] += c.weights.Semantic * v
	}

	out := make([]Suggestion, 0, len(combined))
	for label, score := range combined {
		if score > c.floor {
			out = append(out, Suggestion{Context: label, Score: score})
		}
	}

	sortSuggestions(out)
	if len(out) > c.maxOut {
		out = out[:c.maxOut]
	}
	return out
}

// normalize min-max scales one scorer's suggestions to [0,1] across the
// candidates it produced. A single candidate (or a flat field) scores 1.
func normalize(suggestions []Suggestion) map[string]float64 {
	if len(suggestions) == 0 {
		return nil
	}

	scores := make([]float64, len(suggestions))
	for i, s := range suggestions {
		scores[i] = s.Score
	}
	lo, hi := floats.Min(scores), floats.Max(scores)

	out := make(map[string]float64, len(suggestions))
	for _, s := range suggestions {
		if hi == lo {
			out[s.Context] = 1.0
			continue
		}
		out[s.Context] = (s.Score - lo) / (hi - lo)
	}
	return out
}
