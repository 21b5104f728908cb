package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/canonical"
)

// mergeEntityQuery builds the node upsert for a validated label. The label
// is the only interpolated token; the name travels as a parameter.
func mergeEntityQuery(label string) (string, error) {
	if !canonical.ValidLabel(label) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return fmt.Sprintf("MERGE (n:%s {name: $name})", label), nil
}

// mergeRelationshipQuery builds the edge upsert for a validated
// relationship type. SET r = $props replaces the property bag wholesale;
// repeated merges keep only the latest bag.
func mergeRelationshipQuery(relType string) (string, error) {
	if !canonical.ValidRelationshipType(relType) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRelationshipType, relType)
	}
	return fmt.Sprintf(`MATCH (a), (b)
WHERE a.name = $source AND b.name = $target
MERGE (a)-[r:%s]->(b)
SET r = $props`, relType), nil
}

// formatSchema renders the label and relationship-type inventory as the
// textual summary handed to the Cypher generation prompt.
func formatSchema(labels, relTypes []string, patterns []string) string {
	sort.Strings(labels)
	sort.Strings(relTypes)

	var b strings.Builder
	b.WriteString("Node labels: ")
	if len(labels) == 0 {
		b.WriteString("(none)")
	} else {
		b.WriteString(strings.Join(labels, ", "))
	}
	b.WriteString("\nRelationship types: ")
	if len(relTypes) == 0 {
		b.WriteString("(none)")
	} else {
		b.WriteString(strings.Join(relTypes, ", "))
	}
	if len(patterns) > 0 {
		sort.Strings(patterns)
		b.WriteString("\nRelationships:\n")
		for _, p := range patterns {
			b.WriteString("  ")
			b.WriteString(p)
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return b.String()
}
