package graph

import (
	"errors"
	"strings"
	"testing"
)

func TestMergeEntityQuery(t *testing.T) {
	query, err := mergeEntityQuery("Person")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "MERGE (n:Person {name: $name})" {
		t.Errorf("unexpected query: %q", query)
	}
}

func TestMergeEntityQueryRejectsUnknownLabel(t *testing.T) {
	for _, label := range []string{"Animal", "person", "", "Person`) DETACH DELETE n //"} {
		if _, err := mergeEntityQuery(label); !errors.Is(err, ErrInvalidLabel) {
			t.Errorf("label %q: expected ErrInvalidLabel, got %v", label, err)
		}
	}
}

func TestMergeRelationshipQuery(t *testing.T) {
	query, err := mergeRelationshipQuery("IS_CEO_OF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "MERGE (a)-[r:IS_CEO_OF]->(b)") {
		t.Errorf("missing merge clause: %q", query)
	}
	if !strings.Contains(query, "SET r = $props") {
		t.Errorf("property bag must be replaced, not merged: %q", query)
	}
	if strings.Contains(query, "SET r += $props") {
		t.Errorf("property bag must not be combined: %q", query)
	}
}

func TestMergeRelationshipQueryRejectsBadTypes(t *testing.T) {
	bad := []string{"", "leads", "HAS SPACE", "X]->(m) DETACH DELETE m //"}
	for _, relType := range bad {
		if _, err := mergeRelationshipQuery(relType); !errors.Is(err, ErrInvalidRelationshipType) {
			t.Errorf("type %q: expected ErrInvalidRelationshipType, got %v", relType, err)
		}
	}
}

func TestFormatSchema(t *testing.T) {
	schema := formatSchema(
		[]string{"Project", "Person"},
		[]string{"LEADS"},
		[]string{"(:Person)-[:LEADS]->(:Project)"},
	)

	if !strings.Contains(schema, "Node labels: Person, Project") {
		t.Errorf("labels missing or unsorted: %q", schema)
	}
	if !strings.Contains(schema, "Relationship types: LEADS") {
		t.Errorf("relationship types missing: %q", schema)
	}
	if !strings.Contains(schema, "(:Person)-[:LEADS]->(:Project)") {
		t.Errorf("pattern missing: %q", schema)
	}
}

func TestFormatSchemaEmpty(t *testing.T) {
	schema := formatSchema(nil, nil, nil)
	if !strings.Contains(schema, "(none)") {
		t.Errorf("empty schema should say so: %q", schema)
	}
}
