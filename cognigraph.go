package cognigraph

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/extract"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/graph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/pipeline"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/query"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// CogniGraph is the main interface for turning documents into a property
// graph and answering questions against it.
type CogniGraph interface {
	// ProcessDocument extracts entities and relationships from one document
	// and merges them into the graph in a single transaction.
	ProcessDocument(ctx context.Context, doc types.Document) (*pipeline.Result, error)

	// Answer answers a natural-language question against the live graph.
	// Fallback answers for declined model steps are returned as normal
	// answers, not errors.
	Answer(ctx context.Context, question string) (string, error)

	// AnswerDetailed answers a question and reports the generated Cypher,
	// row count and final state alongside the answer.
	AnswerDetailed(ctx context.Context, question string) (*query.Result, error)

	// Close closes the shared store and model handles.
	Close(ctx context.Context) error
}

var (
	// ErrStoreRequired is returned when no graph store is provided.
	ErrStoreRequired = errors.New("graph store is required")
	// ErrModelRequired is returned when no model client is provided.
	ErrModelRequired = errors.New("model client is required")
)

// Client is the main implementation of the CogniGraph interface. The store
// and model handles it owns are concurrency-safe and shared by the
// extraction and query pipelines, so one Client serves the whole process.
type Client struct {
	store  graph.Store
	model  nlp.Client
	docs   *pipeline.Extraction
	ask    *query.Pipeline
	logger *slog.Logger
}

// NewClient creates a new CogniGraph client around shared store and model
// handles. The caller keeps ownership of neither: Close releases both.
func NewClient(store graph.Store, model nlp.Client, logger *slog.Logger) (*Client, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if model == nil {
		return nil, ErrModelRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	docs := pipeline.NewExtraction(
		extract.NewEntityExtractor(model, logger),
		extract.NewRelationshipExtractor(model, logger),
		store,
		logger,
	)
	ask := query.NewPipeline(model, store, logger)

	return &Client{
		store:  store,
		model:  model,
		docs:   docs,
		ask:    ask,
		logger: logger,
	}, nil
}

// ProcessDocument runs one document through the extraction pipeline.
func (c *Client) ProcessDocument(ctx context.Context, doc types.Document) (*pipeline.Result, error) {
	return c.docs.Process(ctx, doc)
}

// Answer answers one question, reducing the detailed result to its answer
// text.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	result, err := c.ask.Answer(ctx, question)
	if err != nil {
		return "", err
	}
	return result.Answer, nil
}

// AnswerDetailed answers one question and returns the full result.
func (c *Client) AnswerDetailed(ctx context.Context, question string) (*query.Result, error) {
	return c.ask.Answer(ctx, question)
}

// Close closes the model and store handles.
func (c *Client) Close(ctx context.Context) error {
	return errors.Join(c.model.Close(), c.store.Close(ctx))
}

// GetStore returns the underlying graph store
func (c *Client) GetStore() graph.Store {
	return c.store
}

// GetModel returns the model client
func (c *Client) GetModel() nlp.Client {
	return c.model
}
