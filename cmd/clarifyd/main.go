// Clarifyd classifies captured GTD items into next-action, project, or
// waiting-for, and suggests situational contexts for them.
//
// The binary runs one-shot analysis from the command line or serves the
// same operations as MCP tools over stdio.
//
// Usage:
//
//	# Classify one item
//	clarifyd analyze "call mom about the weekend"
//
//	# Suggest contexts
//	clarifyd contexts "email the team the quarterly numbers"
//
//	# Serve MCP tools over stdio
//	clarifyd serve
//
// Configuration is loaded from ~/.config/clarifyd/config.yaml and
// CLARIFYD_* environment variables. See internal/config for details.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clarifyd/internal/classify"
	"github.com/fyrsmithlabs/clarifyd/internal/config"
	"github.com/fyrsmithlabs/clarifyd/internal/contexts"
	"github.com/fyrsmithlabs/clarifyd/internal/embeddings"
	"github.com/fyrsmithlabs/clarifyd/internal/logging"
	mcpserver "github.com/fyrsmithlabs/clarifyd/internal/mcp"
	"github.com/fyrsmithlabs/clarifyd/internal/nlp"
	"github.com/fyrsmithlabs/clarifyd/internal/sanitize"
	"github.com/fyrsmithlabs/clarifyd/internal/signal"
)

// Version information (set via ldflags during build)
var version = "dev"

// configPath is the --config flag value; empty means the default path.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clarifyd",
	Short: "GTD item clarification engine",
	Long: `clarifyd classifies captured GTD items into next-action, project, or
waiting-for categories and suggests situational contexts, either as a
one-shot CLI or as an MCP server over stdio.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/clarifyd/config.yaml)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(contextsCmd)
	rootCmd.AddCommand(serveCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Classify one captured item",
	Long: `Classify one captured item and print the analysis as JSON.

Examples:
  clarifyd analyze "call mom about the weekend"
  clarifyd analyze "waiting on John for the budget numbers"`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var contextsCmd = &cobra.Command{
	Use:   "contexts <text>",
	Short: "Suggest GTD contexts for one item",
	Long: `Rank situational contexts (@calls, @computer, @errands, ...) for one
item and print the suggestions as JSON.

Examples:
  clarifyd contexts "call the insurance company"`,
	Args: cobra.ExactArgs(1),
	RunE: runContexts,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve clarification tools over MCP stdio",
	Long: `Start an MCP server on stdio exposing the clarify_item and
suggest_contexts tools. Logs go to stderr; stdout carries the protocol.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.close()

	text := sanitize.CleanItemText(args[0])
	if err := sanitize.ValidateItemText(text, app.cfg.Limits.MaxInputLength); err != nil {
		return err
	}

	return printJSON(app.engine.Analyze(text))
}

func runContexts(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.close()

	text := sanitize.CleanItemText(args[0])
	if err := sanitize.ValidateItemText(text, app.cfg.Limits.MaxInputLength); err != nil {
		return err
	}

	return printJSON(app.combiner.Suggest(text, contexts.DefaultPatterns()))
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.close()

	srv, err := mcpserver.NewServer(&mcpserver.Config{
		Name:           "clarifyd",
		Version:        version,
		Logger:         app.logger,
		MaxInputLength: app.cfg.Limits.MaxInputLength,
	}, app.engine, app.combiner)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	osSignalNotify(sigCh)
	go func() {
		sig := <-sigCh
		app.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	return srv.Run(ctx)
}

// app bundles the wired components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	engine   *classify.Engine
	combiner *contexts.Combiner
	provider embeddings.Provider
}

// bootstrap loads configuration and wires the engine and combiner.
func bootstrap() (*app, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Fields: map[string]string{"service": "clarifyd"},
	})
	if err != nil {
		return nil, err
	}

	engine := classify.NewEngine(classify.Options{
		Thresholds:        thresholdsFromConfig(cfg.Classify.Thresholds),
		MaxMatchesPerType: cfg.Classify.MaxMatchesPerType,
		CategoryGate:      cfg.Classify.CategoryGate,
		Parser:            nlp.New(),
		Logger:            logger,
	})

	var provider embeddings.Provider
	if cfg.Embeddings.Enabled {
		p, err := embeddings.NewFastEmbedProvider(embeddings.FastEmbedConfig{
			Model:    cfg.Embeddings.Model,
			CacheDir: cfg.Embeddings.CacheDir,
		})
		if err != nil {
			logger.Warn("embeddings unavailable, semantic scoring disabled", zap.Error(err))
		} else {
			provider = p
		}
	}

	combiner := contexts.NewCombiner(contexts.CombinerOptions{
		Fuzzy:    contexts.NewFuzzyScorer(cfg.Contexts.FuzzyThreshold),
		Ranked:   contexts.NewBM25Scorer(cfg.Contexts.BM25TopK),
		Semantic: contexts.NewSemanticScorer(provider, 0),
		Weights: contexts.Weights{
			Fuzzy:    cfg.Contexts.Weights.Fuzzy,
			Ranked:   cfg.Contexts.Weights.Ranked,
			Semantic: cfg.Contexts.Weights.Semantic,
		},
		MaxContexts: cfg.Contexts.MaxContexts,
		ScoreFloor:  cfg.Contexts.ScoreFloor,
	})

	return &app{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		combiner: combiner,
		provider: provider,
	}, nil
}

// close releases the embedding provider and flushes logs.
func (a *app) close() {
	if a.provider != nil {
		if err := a.provider.Close(); err != nil {
			a.logger.Warn("failed to close embedding provider", zap.Error(err))
		}
	}
	_ = logging.Sync(a.logger)
}

// thresholdsFromConfig maps signal names from the config file onto the
// engine's threshold table. Unknown names are ignored.
func thresholdsFromConfig(byName map[string]float64) classify.ThresholdConfig {
	if len(byName) == 0 {
		return nil
	}
	out := classify.DefaultThresholds()
	for _, t := range signal.Types {
		if v, ok := byName[t.String()]; ok {
			out[t] = v
		}
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// osSignalNotify registers for the standard termination signals.
func osSignalNotify(ch chan<- os.Signal) {
	ossignal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
}
