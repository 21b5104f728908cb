package query

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/prompts"
)

// Generator turns a schema description and a question into exactly one
// Cypher query string. The schema is a hard constraint: the prompt forbids
// labels and relationship types not listed in it, and requires name filter
// values to be lowercased to match the store's canonicalization.
type Generator struct {
	model nlp.Client
}

// NewGenerator creates a Cypher generator.
func NewGenerator(model nlp.Client) *Generator {
	return &Generator{model: model}
}

// Generate produces the Cypher query for a question. A model refusal
// surfaces as a refusal error for the pipeline to short-circuit on; the
// returned query is already sanitized for execution.
func (g *Generator) Generate(ctx context.Context, schema, question string) (string, error) {
	resp, err := g.model.Chat(ctx, prompts.GenerateCypher(schema, question))
	if err != nil {
		return "", fmt.Errorf("cypher generation: %w", err)
	}

	cypher := SanitizeCypher(resp.Content)
	if cypher == "" {
		return "", fmt.Errorf("cypher generation: %w", nlp.NewEmptyResponseError("model produced no query text"))
	}
	return cypher, nil
}

var cypherTokenPrefix = regexp.MustCompile(`(?i)^cypher\s*:?\s*`)

// SanitizeCypher strips surrounding markdown fences, stray backticks and a
// leading language-name token from generated query text so it can be
// executed as-is.
func SanitizeCypher(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.ReplaceAll(s, "`", "")
	s = strings.TrimSpace(s)
	s = cypherTokenPrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
