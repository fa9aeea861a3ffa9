package classify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/clarifyd/internal/signal"
)

func newTestEngine() *Engine {
	return NewEngine(Options{})
}

func assertValidResult(t *testing.T, res AnalysisResult) {
	t.Helper()
	require.NotEmpty(t, res.PrimaryCategory)
	assert.GreaterOrEqual(t, res.OverallConfidence, 0.0)
	assert.LessOrEqual(t, res.OverallConfidence, 1.0)
	require.Len(t, res.Scores, 4)
	for name, score := range res.Scores {
		assert.GreaterOrEqual(t, score, 0.0, "score %s", name)
		assert.LessOrEqual(t, score, 1.0, "score %s", name)
	}
	for _, m := range res.SurvivingMatches {
		assert.GreaterOrEqual(t, m.Confidence, 0.0)
		assert.LessOrEqual(t, m.Confidence, 1.0)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	e := newTestEngine()

	for _, text := range []string{"", "   ", "\t\n"} {
		res := e.Analyze(text)
		assert.Equal(t, CategoryNextAction, res.PrimaryCategory, "input %q", text)
		assert.Equal(t, 0.0, res.OverallConfidence, "input %q", text)
		assert.Empty(t, res.SurvivingMatches, "input %q", text)
		assert.Equal(t, ConfidenceLow, res.Recommendation.ConfidenceLevel)
		for _, st := range signal.Types {
			assert.Equal(t, 0.0, res.Score(st))
		}
	}
}

func TestAnalyzeQuickTask(t *testing.T) {
	res := newTestEngine().Analyze("quick call to mom")

	assertValidResult(t, res)
	assert.Greater(t, res.Score(signal.TwoMinute), 0.0)
	assert.Equal(t, CategoryNextAction, res.PrimaryCategory)
}

func TestAnalyzeProject(t *testing.T) {
	res := newTestEngine().Analyze("implement comprehensive enterprise system architecture")

	assertValidResult(t, res)
	assert.Greater(t, res.Score(signal.Project), 0.0)
	assert.Equal(t, CategoryProject, res.PrimaryCategory)
	assert.Contains(t, res.Recommendation.SuggestedContexts, "@computer")
	assert.Contains(t, res.Recommendation.SuggestedContexts, "@office")
}

func TestAnalyzeDelegation(t *testing.T) {
	res := newTestEngine().Analyze("waiting on John to send the report")

	assertValidResult(t, res)
	assert.Greater(t, res.Score(signal.Delegation), 0.0)
	assert.Equal(t, CategoryWaitingFor, res.PrimaryCategory)
}

func TestAnalyzeUrgent(t *testing.T) {
	res := newTestEngine().Analyze("urgent, ASAP, deadline today")

	assertValidResult(t, res)
	assert.Greater(t, res.Score(signal.Priority), 0.5)
	// Priority maps to next-action: urgency means act, not plan.
	assert.Equal(t, CategoryNextAction, res.PrimaryCategory)
}

func TestAnalyzeGarbageInput(t *testing.T) {
	e := newTestEngine()
	inputs := []string{
		"!!!###",
		"中文测试",
		strings.Repeat("deadline urgent waiting comprehensive ", 125),
		strings.Repeat("a", 5000),
	}

	for _, text := range inputs {
		res := e.Analyze(text)
		assertValidResult(t, res)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	e := newTestEngine()
	text := "urgent: waiting on Maria to implement the comprehensive platform, quick review first"

	first, err := json.Marshal(e.Analyze(text))
	require.NoError(t, err)
	second, err := json.Marshal(e.Analyze(text))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestPriorityTieBreak(t *testing.T) {
	// Both a PROJECT and a TWO_MINUTE match survive with comparable raw
	// confidence; rank weighting must resolve to project.
	res := newTestEngine().Analyze("quick plan to implement the comprehensive system")

	require.Greater(t, res.Score(signal.Project), 0.0)
	require.Greater(t, res.Score(signal.TwoMinute), 0.0)
	assert.Equal(t, CategoryProject, res.PrimaryCategory)
}

func TestThresholdMonotonicity(t *testing.T) {
	text := "implement comprehensive enterprise system architecture"

	base := NewEngine(Options{}).Analyze(text)
	require.Equal(t, CategoryProject, base.PrimaryCategory)
	baseProject := countByType(base.SurvivingMatches, signal.Project)
	require.Greater(t, baseProject, 0)

	// Raising the PROJECT threshold can only remove PROJECT matches.
	strict := NewEngine(Options{Thresholds: ThresholdConfig{
		signal.Priority:   0.8,
		signal.Project:    0.99,
		signal.Delegation: 0.7,
		signal.TwoMinute:  0.7,
	}}).Analyze(text)

	assert.LessOrEqual(t, countByType(strict.SurvivingMatches, signal.Project), baseProject)
	for _, st := range []signal.Type{signal.Priority, signal.Delegation, signal.TwoMinute} {
		assert.Equal(t, countByType(base.SurvivingMatches, st), countByType(strict.SurvivingMatches, st),
			"raising PROJECT threshold changed %s matches", st)
	}

	// The only qualifying signal gone, the category falls back.
	assert.Equal(t, CategoryNextAction, strict.PrimaryCategory)
	assert.Equal(t, 0.0, strict.Score(signal.Project))
}

func countByType(matches []signal.PatternMatch, t signal.Type) int {
	n := 0
	for _, m := range matches {
		if m.Type == t {
			n++
		}
	}
	return n
}

func TestMaxMatchesPerTypeCap(t *testing.T) {
	// Plenty of priority vocabulary; no type may exceed the cap.
	text := "urgent critical emergency important immediate deadline overdue due today"
	res := NewEngine(Options{MaxMatchesPerType: 2}).Analyze(text)

	byType := map[signal.Type]int{}
	for _, m := range res.SurvivingMatches {
		byType[m.Type]++
	}
	for st, n := range byType {
		assert.LessOrEqual(t, n, 2, "type %s exceeded cap", st)
	}
}

func TestResolveOrdersByPriority(t *testing.T) {
	// Mixed text: surviving matches must be grouped high priority first.
	res := newTestEngine().Analyze("urgent: waiting on John, quick fix")

	lastRank := signal.MaxRank + 1
	seen := map[signal.Type]bool{}
	for _, m := range res.SurvivingMatches {
		if !seen[m.Type] {
			assert.Less(t, m.Type.Rank(), lastRank, "types out of priority order")
			lastRank = m.Type.Rank()
			seen[m.Type] = true
		}
	}
}

func TestOverallConfidenceWeightedAverage(t *testing.T) {
	res := newTestEngine().Analyze("urgent, ASAP, deadline today")

	// Hand-check: sum(conf*rank)/sum(rank) over surviving matches.
	var num, den float64
	for _, m := range res.SurvivingMatches {
		num += m.Confidence * float64(m.Type.Rank())
		den += float64(m.Type.Rank())
	}
	require.Greater(t, den, 0.0)
	assert.InDelta(t, num/den, res.OverallConfidence, 1e-12)
}

func TestRecommendationReasoningOrder(t *testing.T) {
	res := newTestEngine().Analyze("urgent: waiting on John to send the report")

	require.Len(t, res.Recommendation.Reasoning, len(res.SurvivingMatches))
	for i, m := range res.SurvivingMatches {
		assert.Equal(t, m.Explanation, res.Recommendation.Reasoning[i])
	}
}

func TestCategoryGateDefault(t *testing.T) {
	// A lone two-minute signal scores at most 0.9*0.25, below the 0.3
	// gate, so the default category applies even though a match survives.
	res := newTestEngine().Analyze("quick call to mom")

	require.NotEmpty(t, res.SurvivingMatches)
	assert.Equal(t, CategoryNextAction, res.PrimaryCategory)

	// Lowering the gate lets the two-minute signal pick the category;
	// it still maps to next-action by design.
	low := NewEngine(Options{CategoryGate: 0.1}).Analyze("quick call to mom")
	assert.Equal(t, CategoryNextAction, low.PrimaryCategory)
}

func TestResultSerializable(t *testing.T) {
	res := newTestEngine().Analyze("urgent quick review")

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"primary_category"`)
	assert.Contains(t, string(data), `"per_signal_score"`)
	assert.Contains(t, string(data), `"two_minute"`)
}
