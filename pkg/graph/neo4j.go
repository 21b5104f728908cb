package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/canonical"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// Neo4jStore implements the Store interface for Neo4j databases. The
// underlying neo4j.DriverWithContext is safe for concurrent use, so one
// Neo4jStore is shared across the query surface and the extraction worker.
type Neo4jStore struct {
	client   neo4j.DriverWithContext
	database string
}

// NewNeo4jStore creates a new Neo4j store.
func NewNeo4jStore(uri, username, password, database string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}

	return &Neo4jStore{client: driver, database: database}, nil
}

// ExecuteQuery runs a Cypher query and returns its rows.
func (s *Neo4jStore) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]types.Row, error) {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		var rows []types.Row
		for res.Next(ctx) {
			record := res.Record()
			row := make(types.Row, len(record.Keys))
			for i, key := range record.Keys {
				row[key] = normalizeValue(record.Values[i])
			}
			rows = append(rows, row)
		}
		return rows, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}

	return result.([]types.Row), nil
}

// Schema returns a textual summary of the labels and relationship types
// currently present in the store, plus the (label)-[type]->(label) patterns
// in use.
func (s *Neo4jStore) Schema(ctx context.Context) (string, error) {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		labels, err := collectStrings(ctx, tx, "CALL db.labels() YIELD label RETURN label")
		if err != nil {
			return nil, err
		}

		relTypes, err := collectStrings(ctx, tx, "CALL db.relationshipTypes() YIELD relationshipType RETURN relationshipType")
		if err != nil {
			return nil, err
		}

		patterns, err := collectStrings(ctx, tx, `MATCH (a)-[r]->(b)
RETURN DISTINCT '(:' + head(labels(a)) + ')-[:' + type(r) + ']->(:' + head(labels(b)) + ')' AS pattern`)
		if err != nil {
			return nil, err
		}

		return formatSchema(labels, relTypes, patterns), nil
	})
	if err != nil {
		return "", fmt.Errorf("schema read failed: %w", err)
	}

	return result.(string), nil
}

// WriteBatch runs fn inside one managed write transaction.
func (s *Neo4jStore) WriteBatch(ctx context.Context, fn func(tx Tx) error) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(&neo4jTx{tx: tx})
	})
	return err
}

// Close releases the driver.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

// neo4jTx adapts a managed transaction to the Tx interface.
type neo4jTx struct {
	tx neo4j.ManagedTransaction
}

func (t *neo4jTx) MergeEntity(ctx context.Context, label, name string) error {
	if canonical.Name(name) == "" {
		return ErrEmptyName
	}

	query, err := mergeEntityQuery(label)
	if err != nil {
		return err
	}

	_, err = t.tx.Run(ctx, query, map[string]any{"name": name})
	return err
}

func (t *neo4jTx) MergeRelationship(ctx context.Context, source, relType, target string, props map[string]any) error {
	if canonical.Name(source) == "" || canonical.Name(target) == "" {
		return ErrEmptyName
	}

	query, err := mergeRelationshipQuery(relType)
	if err != nil {
		return err
	}

	if props == nil {
		props = map[string]any{}
	}

	_, err = t.tx.Run(ctx, query, map[string]any{
		"source": source,
		"target": target,
		"props":  props,
	})
	return err
}

// collectStrings runs a single-column query and gathers the values.
func collectStrings(ctx context.Context, tx neo4j.ManagedTransaction, query string) ([]string, error) {
	res, err := tx.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var values []string
	for res.Next(ctx) {
		record := res.Record()
		if len(record.Values) == 0 {
			continue
		}
		if s, ok := record.Values[0].(string); ok {
			values = append(values, s)
		}
	}
	return values, res.Err()
}

// normalizeValue flattens driver-specific graph values into plain maps so
// rows serialize cleanly for the answer synthesizer.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case dbtype.Node:
		props := make(map[string]any, len(val.Props)+1)
		for k, p := range val.Props {
			props[k] = p
		}
		if len(val.Labels) > 0 {
			props["labels"] = val.Labels
		}
		return props
	case dbtype.Relationship:
		props := make(map[string]any, len(val.Props)+1)
		for k, p := range val.Props {
			props[k] = p
		}
		props["type"] = val.Type
		return props
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
