package cognigraph

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Sanathkumarkunjithaya/CogniGraph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/config"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/graph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
)

// newLogger builds the process logger from the log config.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// initializeClient is the composition root: it constructs the shared store
// and model handles once and wires the CogniGraph client around them. Both
// handles are safe for concurrent use across the server and the worker.
func initializeClient(cfg *config.Config, logger *slog.Logger) (*cognigraph.Client, error) {
	store, err := graph.NewNeo4jStore(
		cfg.Database.URI,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Database,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph store: %w", err)
	}

	if cfg.NLP.APIKey == "" {
		return nil, fmt.Errorf("model API key is required (set OPENAI_API_KEY)")
	}

	nlpConfig := nlp.Config{
		Model:   cfg.NLP.Model,
		BaseURL: cfg.NLP.BaseURL,
	}
	if cfg.NLP.Temperature >= 0 {
		temp := cfg.NLP.Temperature
		nlpConfig.Temperature = &temp
	}
	if cfg.NLP.MaxTokens > 0 {
		maxTokens := cfg.NLP.MaxTokens
		nlpConfig.MaxTokens = &maxTokens
	}

	var model nlp.Client
	model, err = nlp.NewOpenAIClient(cfg.NLP.APIKey, nlpConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	if cfg.CircuitBreaker.Enabled {
		breakerConfig := nlp.BreakerConfig{
			Enabled:          true,
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
			Timeout:          time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
			ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
		}
		model = nlp.NewCircuitBreakerClient(model, breakerConfig, logger)
	}

	client, err := cognigraph.NewClient(store, model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("initialized",
		"database", cfg.Database.URI,
		"model", cfg.NLP.Model,
		"circuit_breaker", cfg.CircuitBreaker.Enabled)

	return client, nil
}
