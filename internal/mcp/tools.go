package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clarifyd/internal/classify"
	"github.com/fyrsmithlabs/clarifyd/internal/contexts"
)

type clarifyItemInput struct {
	Text string `json:"text" jsonschema:"required,The captured item text to classify (e.g. 'call mom about the weekend')"`
}

type suggestContextsInput struct {
	Text        string `json:"text" jsonschema:"required,The item text to suggest GTD contexts for"`
	MaxContexts int    `json:"max_contexts,omitempty" jsonschema:"Maximum number of context suggestions to return (default: server configured limit)"`
}

type suggestContextsOutput struct {
	Text        string                `json:"text" jsonschema:"The analyzed item text"`
	Suggestions []contexts.Suggestion `json:"suggestions" jsonschema:"Ranked context suggestions with combined scores"`
	Count       int                   `json:"count" jsonschema:"Number of suggestions returned"`
}

func (s *Server) registerTools() {
	// clarify_item - classify one captured item into a GTD category
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "clarify_item",
		Description: "Classify a captured GTD item into next-action, project, or waiting-for. Returns per-signal scores, surviving pattern matches, and a recommendation with suggested contexts and confidence level.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args clarifyItemInput) (*mcp.CallToolResult, classify.AnalysisResult, error) {
		text, err := s.validate(args.Text)
		if err != nil {
			return nil, classify.AnalysisResult{}, err
		}

		result := s.engine.Analyze(text)
		s.logger.Debug("clarify_item",
			zap.String("category", result.PrimaryCategory),
			zap.Float64("overall_confidence", result.OverallConfidence),
		)
		return nil, result, nil
	})

	// suggest_contexts - rank GTD contexts for one item
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "suggest_contexts",
		Description: "Suggest GTD contexts (@calls, @computer, @errands, ...) for an item, ranked by a combination of fuzzy, term-relevance, and semantic scoring.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args suggestContextsInput) (*mcp.CallToolResult, suggestContextsOutput, error) {
		text, err := s.validate(args.Text)
		if err != nil {
			return nil, suggestContextsOutput{}, err
		}

		suggestions := s.combiner.Suggest(text, s.patterns)
		if args.MaxContexts > 0 && len(suggestions) > args.MaxContexts {
			suggestions = suggestions[:args.MaxContexts]
		}

		s.logger.Debug("suggest_contexts", zap.Int("count", len(suggestions)))
		return nil, suggestContextsOutput{
			Text:        text,
			Suggestions: suggestions,
			Count:       len(suggestions),
		}, nil
	})
}
