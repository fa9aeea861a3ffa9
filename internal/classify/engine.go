package classify

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clarifyd/internal/nlp"
	"github.com/fyrsmithlabs/clarifyd/internal/signal"
)

// Defaults for the combination policy.
const (
	// DefaultMaxMatchesPerType caps how many matches of one type survive
	// conflict resolution, bounding low-priority dilution of the aggregate.
	DefaultMaxMatchesPerType = 3
	// DefaultCategoryGate is the minimum winning per-type score required
	// to recommend a non-default category.
	DefaultCategoryGate = 0.3
	// contextScoreFloor gates the recommendation-builder context hints.
	contextScoreFloor = 0.5
)

// Options tunes the combination policy.
type Options struct {
	// Thresholds holds per-type minimum confidences. Nil means defaults.
	Thresholds ThresholdConfig
	// MaxMatchesPerType caps surviving matches per type. <=0 means default.
	MaxMatchesPerType int
	// CategoryGate is the minimum winning score for a non-default
	// category. <=0 means default.
	CategoryGate float64
	// Parser provides optional linguistic structure to the analyzers.
	// Nil disables the dependent techniques.
	Parser nlp.Parser
	// Logger for debug output. Nil means no logging.
	Logger *zap.Logger
}

// Engine runs the four analyzers and combines their matches. Stateless
// between calls: Analyze is a pure function of (text, configuration).
type Engine struct {
	analyzers  []signal.Analyzer
	thresholds ThresholdConfig
	maxPerType int
	gate       float64
	logger     *zap.Logger
}

// NewEngine builds an engine with the standard four analyzers.
func NewEngine(opts Options) *Engine {
	thresholds := opts.Thresholds
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	maxPerType := opts.MaxMatchesPerType
	if maxPerType <= 0 {
		maxPerType = DefaultMaxMatchesPerType
	}
	gate := opts.CategoryGate
	if gate <= 0 {
		gate = DefaultCategoryGate
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		analyzers: []signal.Analyzer{
			signal.NewTwoMinuteAnalyzer(),
			signal.NewProjectAnalyzer(opts.Parser),
			signal.NewDelegationAnalyzer(opts.Parser),
			signal.NewPriorityAnalyzer(),
		},
		thresholds: thresholds,
		maxPerType: maxPerType,
		gate:       gate,
		logger:     logger,
	}
}

// Analyze classifies one text item. Never errors: degenerate input yields
// the canonical empty result, adversarial input yields low confidences.
func (e *Engine) Analyze(text string) AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return emptyResult(text)
	}

	var all []signal.PatternMatch
	for _, a := range e.analyzers {
		all = append(all, a.Analyze(text)...)
	}

	filtered := e.filter(all)
	resolved := e.resolve(filtered)
	scores := e.aggregate(resolved)
	overall := overallConfidence(resolved)
	category := e.decideCategory(scores)

	e.logger.Debug("analyzed item",
		zap.Int("candidates", len(all)),
		zap.Int("surviving", len(resolved)),
		zap.String("category", category),
		zap.Float64("confidence", overall))

	return AnalysisResult{
		Text:              text,
		PrimaryCategory:   category,
		Scores:            scores,
		SurvivingMatches:  resolved,
		Recommendation:    e.recommend(resolved, scores, overall),
		OverallConfidence: overall,
	}
}

// filter drops matches below their type's confidence threshold.
func (e *Engine) filter(matches []signal.PatternMatch) []signal.PatternMatch {
	out := make([]signal.PatternMatch, 0, len(matches))
	for _, m := range matches {
		if m.Confidence >= e.thresholds.Min(m.Type) {
			out = append(out, m)
		}
	}
	return out
}

// resolve groups matches by type, orders types by descending priority,
// keeps the top maxPerType matches of each type by confidence, and
// concatenates groups in priority order. Multiple types may coexist; the
// cap only bounds how much any one type contributes downstream.
func (e *Engine) resolve(matches []signal.PatternMatch) []signal.PatternMatch {
	if len(matches) == 0 {
		return nil
	}

	byType := make(map[signal.Type][]signal.PatternMatch)
	for _, m := range matches {
		byType[m.Type] = append(byType[m.Type], m)
	}

	var resolved []signal.PatternMatch
	for _, t := range signal.Types {
		group := byType[t]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Confidence > group[j].Confidence
		})
		if len(group) > e.maxPerType {
			group = group[:e.maxPerType]
		}
		resolved = append(resolved, group...)
	}
	return resolved
}

// aggregate reduces surviving matches to one score per signal type:
// the maximum of confidence x priority weight. Absent types score 0.
func (e *Engine) aggregate(matches []signal.PatternMatch) map[string]float64 {
	scores := make(map[string]float64, len(signal.Types))
	for _, t := range signal.Types {
		scores[t.String()] = 0.0
	}
	for _, m := range matches {
		weighted := m.Confidence * m.Type.Weight()
		if weighted > scores[m.Type.String()] {
			scores[m.Type.String()] = weighted
		}
	}
	return scores
}

// overallConfidence is the priority-weighted average of all surviving
// matches' raw confidences.
func overallConfidence(matches []signal.PatternMatch) float64 {
	if len(matches) == 0 {
		return 0.0
	}
	var weightedSum, weightTotal float64
	for _, m := range matches {
		rank := float64(m.Type.Rank())
		weightedSum += m.Confidence * rank
		weightTotal += rank
	}
	return weightedSum / weightTotal
}

// decideCategory maps the winning signal type to its GTD category. Ties
// resolve toward higher-priority types because aggregation already weights
// scores by rank; below the gate the default category applies.
func (e *Engine) decideCategory(scores map[string]float64) string {
	best, bestScore := signal.Type(0), 0.0
	for _, t := range signal.Types {
		if s := scores[t.String()]; s > bestScore {
			best, bestScore = t, s
		}
	}
	if bestScore <= e.gate {
		return CategoryNextAction
	}
	return categoryFor(best)
}

func categoryFor(t signal.Type) string {
	switch t {
	case signal.Project:
		return CategoryProject
	case signal.Delegation:
		return CategoryWaitingFor
	default:
		// Priority and TwoMinute both mean "act on it now".
		return CategoryNextAction
	}
}

// recommend assembles the advisory structure from surviving matches.
func (e *Engine) recommend(matches []signal.PatternMatch, scores map[string]float64, overall float64) Recommendation {
	rec := Recommendation{
		SuggestedCategory: e.decideCategory(scores),
		SuggestedContexts: []string{},
		Reasoning:         []string{},
		Flags:             []string{},
	}

	for _, m := range matches {
		rec.Reasoning = append(rec.Reasoning, m.Explanation)
	}

	if scores[signal.Delegation.String()] > contextScoreFloor {
		rec.SuggestedContexts = append(rec.SuggestedContexts, "@waiting")
	}
	if scores[signal.Project.String()] > contextScoreFloor {
		rec.SuggestedContexts = append(rec.SuggestedContexts, "@computer", "@office")
	}
	if scores[signal.TwoMinute.String()] > contextScoreFloor {
		rec.Flags = append(rec.Flags, FlagTwoMinuteRule)
	}

	switch {
	case overall > 0.8:
		rec.ConfidenceLevel = ConfidenceHigh
	case overall > 0.5:
		rec.ConfidenceLevel = ConfidenceMedium
	default:
		rec.ConfidenceLevel = ConfidenceLow
	}

	return rec
}

// emptyResult is the canonical result for degenerate input.
func emptyResult(text string) AnalysisResult {
	scores := make(map[string]float64, len(signal.Types))
	for _, t := range signal.Types {
		scores[t.String()] = 0.0
	}
	return AnalysisResult{
		Text:             text,
		PrimaryCategory:  CategoryNextAction,
		Scores:           scores,
		SurvivingMatches: []signal.PatternMatch{},
		Recommendation: Recommendation{
			SuggestedCategory: CategoryNextAction,
			SuggestedContexts: []string{},
			ConfidenceLevel:   ConfidenceLow,
			Reasoning:         []string{},
			Flags:             []string{},
		},
		OverallConfidence: 0.0,
	}
}
