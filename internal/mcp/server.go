// Package mcp exposes the classification engine and context combiner as
// MCP tools over the stdio transport, using the MCP SDK
// (github.com/modelcontextprotocol/go-sdk/mcp).
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clarifyd/internal/classify"
	"github.com/fyrsmithlabs/clarifyd/internal/contexts"
	"github.com/fyrsmithlabs/clarifyd/internal/sanitize"
)

// Server exposes clarification tools over MCP.
type Server struct {
	mcp      *mcp.Server
	engine   *classify.Engine
	combiner *contexts.Combiner
	patterns map[string][]string
	maxInput int
	logger   *zap.Logger
}

// Config configures the MCP server.
type Config struct {
	// Name is the server implementation name (default: "clarifyd").
	Name string

	// Version is the server version (default: "1.0.0").
	Version string

	// Logger for structured logging.
	Logger *zap.Logger

	// Patterns is the context -> keywords dictionary used by the
	// suggestion tool. Default: contexts.DefaultPatterns().
	Patterns map[string][]string

	// MaxInputLength caps item text, in runes. <= 0 selects the
	// sanitize package default.
	MaxInputLength int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "clarifyd",
		Version: "1.0.0",
		Logger:  zap.NewNop(),
	}
}

// NewServer creates an MCP server over the given engine and combiner.
func NewServer(cfg *Config, engine *classify.Engine, combiner *contexts.Combiner) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if engine == nil {
		return nil, fmt.Errorf("classification engine is required")
	}
	if combiner == nil {
		return nil, fmt.Errorf("context combiner is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	name := cfg.Name
	if name == "" {
		name = "clarifyd"
	}
	version := cfg.Version
	if version == "" {
		version = "1.0.0"
	}
	patterns := cfg.Patterns
	if patterns == nil {
		patterns = contexts.DefaultPatterns()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    name,
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcp:      mcpServer,
		engine:   engine,
		combiner: combiner,
		patterns: patterns,
		maxInput: cfg.MaxInputLength,
		logger:   cfg.Logger,
	}
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport. It blocks until the
// context is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport")
	transport := &mcp.StdioTransport{}
	return s.mcp.Run(ctx, transport)
}

// validate checks incoming item text and returns it cleaned.
func (s *Server) validate(text string) (string, error) {
	cleaned := sanitize.CleanItemText(text)
	if err := sanitize.ValidateItemText(cleaned, s.maxInput); err != nil {
		return "", err
	}
	return cleaned, nil
}
