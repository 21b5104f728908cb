package types

import "time"

// Label is a node label from the closed entity category set.
type Label string

const (
	LabelPerson       Label = "Person"
	LabelOrganization Label = "Organization"
	LabelProject      Label = "Project"
	LabelProduct      Label = "Product"
	LabelTechnology   Label = "Technology"
	LabelConcept      Label = "Concept"
	LabelMaterial     Label = "Material"
	LabelPlatform     Label = "Platform"
)

// Labels lists every allowed entity label, in prompt order.
var Labels = []Label{
	LabelPerson,
	LabelOrganization,
	LabelProject,
	LabelProduct,
	LabelTechnology,
	LabelConcept,
	LabelMaterial,
	LabelPlatform,
}

// Entity is a candidate entity emitted by the node-extraction step. It is
// transient: it exists only between extraction and merge. Name is free text
// as returned by the model; the merger canonicalizes it before any write.
type Entity struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Relationship is a candidate directed edge emitted by the
// relationship-extraction step. Source and Target are expected to be names
// from the same document's candidate vocabulary. Type is an uppercase
// underscore-joined token. Properties carries the recognized keys value,
// date and description; unrecognized keys are passed through untouched.
type Relationship struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Document is one unit of extraction work: the text content of a loaded
// file plus its provenance metadata. The pipeline never mutates content.
type Document struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Source   string            `json:"source"`
	Metadata map[string]string `json:"metadata,omitempty"`
	LoadedAt time.Time         `json:"loaded_at"`
}

// Row is one tabular result row from a graph query: column name to value.
type Row map[string]any
