package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// NodesSchema is the declared output shape for entity extraction: an array
// of {name, label} objects. The label enum is enforced by prompt
// instruction, not by the schema; the merge layer validates it in code.
func NodesSchema() *nlp.JSONSchema {
	return &nlp.JSONSchema{
		Name: "extracted_entities",
		Schema: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":  map[string]any{"type": "string"},
					"label": map[string]any{"type": "string"},
				},
				"required": []string{"name", "label"},
			},
		},
	}
}

// RelationshipsSchema is the declared output shape for relationship
// extraction: an array of {source, target, type, properties} objects with
// the recognized property keys value, date and description.
func RelationshipsSchema() *nlp.JSONSchema {
	return &nlp.JSONSchema{
		Name: "extracted_relationships",
		Schema: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source": map[string]any{"type": "string"},
					"target": map[string]any{"type": "string"},
					"type":   map[string]any{"type": "string"},
					"properties": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"value":       map[string]any{"type": "string"},
							"date":        map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
						},
					},
				},
				"required": []string{"source", "target", "type"},
			},
		},
	}
}

// ExtractNodes builds the entity-extraction messages for one text span.
func ExtractNodes(text string) []types.Message {
	labels := make([]string, len(types.Labels))
	for i, l := range types.Labels {
		labels[i] = fmt.Sprintf("%q", string(l))
	}

	sysPrompt := `You are an expert entity extractor. You identify the key entities mentioned in text and classify each one with a label from a fixed list. Respond only with JSON matching the requested schema.`

	userPrompt := fmt.Sprintf(`From the text provided, identify all the key entities.
An entity can be a person, organization, project, product, technology, or concept.
For each entity, provide its name and a suitable label from this list:
[%s]

Text:
%q`, strings.Join(labels, ", "), text)

	return []types.Message{
		nlp.NewSystemMessage(sysPrompt),
		nlp.NewUserMessage(userPrompt),
	}
}

// ExtractRelationships builds the relationship-extraction messages for one
// text span. candidates is the closed vocabulary of entity names already
// extracted from the same span; the prompt constrains source and target to
// that list, though the constraint is not structurally enforced.
func ExtractRelationships(text string, candidates []string) ([]types.Message, error) {
	entityList, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidate entities: %w", err)
	}

	sysPrompt := `You are an expert fact extractor. You identify directed, typed relationships between known entities in text. Respond only with JSON matching the requested schema.`

	userPrompt := fmt.Sprintf(`From the text provided, identify the relationships between the entities listed in the "Candidate Entities" section.
A relationship is a triplet of (source_entity_name, relationship_type, target_entity_name).

- The relationship_type MUST be a concise verb phrase in all caps, with words connected by underscores (e.g., "LEADS", "ACQUIRES", "IS_CEO_OF", "COLLABORATES_ON"). IT CANNOT CONTAIN SPACES.
- The source_entity_name is the entity performing the action or being described.
- The target_entity_name is the entity being acted upon or the description.

For example, in "Project Alpha is led by Maria Garcia", the source is "Maria Garcia", the target is "Project Alpha", and the type is "LEADS".
In "The CEO of Global Motors is Elena Petrova", the source is "Elena Petrova", the target is "Global Motors", and the type is "IS_CEO_OF".

Also, identify any properties of the relationship, such as the value or date of a transaction.
The source and target entity names MUST be one of the names from the "Candidate Entities" list.

Candidate Entities:
%s

Text:
%q`, string(entityList), text)

	return []types.Message{
		nlp.NewSystemMessage(sysPrompt),
		nlp.NewUserMessage(userPrompt),
	}, nil
}
