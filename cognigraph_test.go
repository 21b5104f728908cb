package cognigraph

import (
	"context"
	"errors"
	"testing"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/graph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

type stubStore struct {
	schema   string
	rows     []types.Row
	closed   bool
	closeErr error
}

func (s *stubStore) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]types.Row, error) {
	return s.rows, nil
}

func (s *stubStore) Schema(ctx context.Context) (string, error) { return s.schema, nil }

func (s *stubStore) WriteBatch(ctx context.Context, fn func(tx graph.Tx) error) error {
	return fn(&stubTx{})
}

func (s *stubStore) Close(ctx context.Context) error {
	s.closed = true
	return s.closeErr
}

type stubTx struct{}

func (t *stubTx) MergeEntity(ctx context.Context, label, name string) error { return nil }
func (t *stubTx) MergeRelationship(ctx context.Context, source, relType, target string, props map[string]any) error {
	return nil
}

type stubModel struct {
	responses []string
	calls     int
	closed    bool
	closeErr  error
}

func (m *stubModel) Chat(ctx context.Context, messages []types.Message) (*types.Response, error) {
	if m.calls >= len(m.responses) {
		return nil, errors.New("unexpected model call")
	}
	content := m.responses[m.calls]
	m.calls++
	return &types.Response{Content: content}, nil
}

func (m *stubModel) ChatWithStructuredOutput(ctx context.Context, messages []types.Message, schema *nlp.JSONSchema) (*types.Response, error) {
	return m.Chat(ctx, messages)
}

func (m *stubModel) Close() error {
	m.closed = true
	return m.closeErr
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(nil, &stubModel{}, nil); !errors.Is(err, ErrStoreRequired) {
		t.Errorf("expected ErrStoreRequired, got %v", err)
	}
	if _, err := NewClient(&stubStore{}, nil, nil); !errors.Is(err, ErrModelRequired) {
		t.Errorf("expected ErrModelRequired, got %v", err)
	}
}

func TestProcessDocumentEndToEnd(t *testing.T) {
	model := &stubModel{responses: []string{
		`[{"name": "Maria Garcia", "label": "Person"}, {"name": "Project Alpha", "label": "Project"}]`,
		`[{"source": "maria garcia", "target": "project alpha", "type": "LEADS", "properties": {}}]`,
	}}
	store := &stubStore{}

	client, err := NewClient(store, model, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := client.ProcessDocument(context.Background(), types.Document{
		Source:  "note.txt",
		Content: "Maria Garcia leads Project Alpha.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EntitiesMerged != 2 || result.RelationshipsMerged != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAnswerEndToEnd(t *testing.T) {
	model := &stubModel{responses: []string{
		"MATCH (p:Person)-[:LEADS]->(pr:Project {name: 'project alpha'}) RETURN p.name",
		"Maria Garcia leads Project Alpha.",
	}}
	store := &stubStore{
		schema: "Node labels: Person, Project",
		rows:   []types.Row{{"p.name": "maria garcia"}},
	}

	client, err := NewClient(store, model, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answer, err := client.Answer(context.Background(), "Who leads Project Alpha?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Maria Garcia leads Project Alpha." {
		t.Errorf("unexpected answer: %q", answer)
	}
}

func TestCloseReleasesBothHandles(t *testing.T) {
	model := &stubModel{closeErr: errors.New("model close failed")}
	store := &stubStore{}

	client, err := NewClient(store, model, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Close(context.Background())
	if err == nil {
		t.Error("expected the model close error to surface")
	}
	if !model.closed || !store.closed {
		t.Error("expected both handles closed")
	}
}
