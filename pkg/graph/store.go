package graph

import (
	"context"
	"errors"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// Validation errors for model-declared identifiers.
var (
	// ErrInvalidLabel is returned when a node label is not in the closed
	// entity category set.
	ErrInvalidLabel = errors.New("label is not in the allowed set")

	// ErrInvalidRelationshipType is returned when a relationship type does
	// not match the uppercase token grammar.
	ErrInvalidRelationshipType = errors.New("relationship type violates token grammar")

	// ErrEmptyName is returned when a canonical name is empty.
	ErrEmptyName = errors.New("canonical name is empty")
)

// Tx is the write surface available inside a document transaction. All
// merges issued through one Tx commit or roll back together.
type Tx interface {
	// MergeEntity idempotently upserts a node identified by (label,
	// canonical name): created if absent, matched untouched if present.
	// The label must be a member of the closed set and the name must be
	// non-empty and already canonical.
	MergeEntity(ctx context.Context, label, name string) error

	// MergeRelationship idempotently upserts a directed edge of relType
	// between every node whose name equals source and every node whose
	// name equals target. Endpoints are matched by name alone, across all
	// labels; two nodes of different labels sharing a canonical name can
	// attach the edge to the unintended one. The edge's property bag is
	// replaced wholesale by props on every merge.
	MergeRelationship(ctx context.Context, source, relType, target string, props map[string]any) error
}

// Store is the graph database handle shared across the process. All
// implementations must be safe for concurrent use.
type Store interface {
	// ExecuteQuery runs a Cypher query with named parameters and returns
	// its result rows. Malformed queries surface as errors, untouched.
	ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]types.Row, error)

	// Schema returns a textual summary of the labels and relationship
	// types currently present in the store.
	Schema(ctx context.Context) (string, error)

	// WriteBatch runs fn inside a single managed write transaction. If fn
	// returns an error the whole batch rolls back, leaving no partial
	// document state.
	WriteBatch(ctx context.Context, fn func(tx Tx) error) error

	// Close releases all resources held by the store.
	Close(ctx context.Context) error
}
