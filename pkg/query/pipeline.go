package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/graph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/prompts"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// State is a step in the question lifecycle.
type State string

const (
	StateReceived          State = "received"
	StateCypherGenerated   State = "cypher_generated"
	StateExecuted          State = "executed"
	StateAnswerSynthesized State = "answer_synthesized"
	StateResponded         State = "responded"
	StateFailed            State = "failed"
)

// Fallback answers returned when the model declines a step. They are
// successful responses, not errors.
const (
	FallbackNoQuery  = "I could not generate a valid query for that question."
	FallbackNoAnswer = "I found data, but could not formulate a final answer."
)

// ErrMissingQuestion is returned when the question text is absent. No model
// or store call is made in that case.
var ErrMissingQuestion = errors.New("no query provided")

// Result reports how a question was answered.
type Result struct {
	State    State
	Cypher   string
	RowCount int
	Answer   string
	Fallback bool
}

// Synthesizer turns a question plus serialized result rows into one
// grounded natural-language answer.
type Synthesizer struct {
	model nlp.Client
}

// NewSynthesizer creates an answer synthesizer.
func NewSynthesizer(model nlp.Client) *Synthesizer {
	return &Synthesizer{model: model}
}

// Synthesize produces the final answer. rows may be empty; the prompt then
// requires the answer to state that nothing was found rather than
// fabricating one.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, rows []types.Row) (string, error) {
	serialized, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}

	resp, err := s.model.Chat(ctx, prompts.SynthesizeAnswer(question, string(serialized)))
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}

// Pipeline sequences Cypher generation, execution and answer synthesis for
// one question. The store and model handles are shared, long-lived and safe
// for concurrent use, so one Pipeline serves all requests.
type Pipeline struct {
	generator   *Generator
	store       graph.Store
	synthesizer *Synthesizer
	logger      *slog.Logger
}

// NewPipeline creates a query pipeline.
func NewPipeline(model nlp.Client, store graph.Store, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		generator:   NewGenerator(model),
		store:       store,
		synthesizer: NewSynthesizer(model),
		logger:      logger.With("component", "query"),
	}
}

// Answer runs one question through the pipeline. A refusal during Cypher
// generation or answer synthesis short-circuits to a fixed fallback answer
// (Result.Fallback set, nil error); any other failure is returned as an
// error for the caller to surface.
func (p *Pipeline) Answer(ctx context.Context, question string) (*Result, error) {
	result := &Result{State: StateReceived}

	if strings.TrimSpace(question) == "" {
		result.State = StateFailed
		return result, ErrMissingQuestion
	}

	schema, err := p.store.Schema(ctx)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("schema read: %w", err)
	}

	cypher, err := p.generator.Generate(ctx, schema, question)
	if err != nil {
		if nlp.IsRefusal(err) {
			p.logger.Warn("model declined cypher generation", "question", question)
			result.State = StateResponded
			result.Answer = FallbackNoQuery
			result.Fallback = true
			return result, nil
		}
		result.State = StateFailed
		return result, err
	}
	result.State = StateCypherGenerated
	result.Cypher = cypher
	p.logger.Info("generated cypher", "cypher", cypher)

	rows, err := p.store.ExecuteQuery(ctx, cypher, nil)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("query execution: %w", err)
	}
	result.State = StateExecuted
	result.RowCount = len(rows)

	answer, err := p.synthesizer.Synthesize(ctx, question, rows)
	if err != nil {
		if nlp.IsRefusal(err) {
			p.logger.Warn("model declined answer synthesis", "question", question)
			result.State = StateResponded
			result.Answer = FallbackNoAnswer
			result.Fallback = true
			return result, nil
		}
		result.State = StateFailed
		return result, err
	}
	result.State = StateAnswerSynthesized

	result.Answer = answer
	result.State = StateResponded
	return result, nil
}
