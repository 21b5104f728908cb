// Package extract invokes the generative model to pull candidate entities
// and relationships out of a text span. Extraction is all-or-nothing per
// call: output that cannot be parsed as JSON, or a model refusal, fails the
// document with no partial result.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/prompts"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// EntityExtractor lists candidate entities from a text span using a fixed
// JSON output schema.
type EntityExtractor struct {
	model  nlp.Client
	logger *slog.Logger
}

// NewEntityExtractor creates an entity extractor backed by the given model.
func NewEntityExtractor(model nlp.Client, logger *slog.Logger) *EntityExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityExtractor{model: model, logger: logger}
}

// Extract returns the candidate entities found in text, in model order. The
// sequence may be empty. An unparsable response or a refusal fails the call.
func (e *EntityExtractor) Extract(ctx context.Context, text string) ([]types.Entity, error) {
	resp, err := e.model.ChatWithStructuredOutput(ctx, prompts.ExtractNodes(text), prompts.NodesSchema())
	if err != nil {
		return nil, fmt.Errorf("entity extraction: %w", err)
	}

	entities, err := decodeArray[types.Entity](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("entity extraction: %w", err)
	}

	e.logger.Debug("extracted entities", "count", len(entities))
	return entities, nil
}

// RelationshipExtractor lists candidate relationships between
// already-discovered entities. The candidate vocabulary constrains source
// and target names through the prompt only; out-of-vocabulary endpoints are
// not rejected here and simply fail to match any node at merge time.
type RelationshipExtractor struct {
	model  nlp.Client
	logger *slog.Logger
}

// NewRelationshipExtractor creates a relationship extractor backed by the
// given model.
func NewRelationshipExtractor(model nlp.Client, logger *slog.Logger) *RelationshipExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelationshipExtractor{model: model, logger: logger}
}

// Extract returns the candidate relationships found in text whose endpoints
// are drawn from candidates. The sequence may be empty.
func (e *RelationshipExtractor) Extract(ctx context.Context, text string, candidates []string) ([]types.Relationship, error) {
	messages, err := prompts.ExtractRelationships(text, candidates)
	if err != nil {
		return nil, fmt.Errorf("relationship extraction: %w", err)
	}

	resp, err := e.model.ChatWithStructuredOutput(ctx, messages, prompts.RelationshipsSchema())
	if err != nil {
		return nil, fmt.Errorf("relationship extraction: %w", err)
	}

	relationships, err := decodeArray[types.Relationship](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("relationship extraction: %w", err)
	}

	e.logger.Debug("extracted relationships", "count", len(relationships))
	return relationships, nil
}
