// Package pipeline sequences entity extraction, relationship extraction and
// graph merging for one document at a time.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/canonical"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/graph"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// State is a step in the document extraction lifecycle. States advance
// strictly forward; Failed is terminal and can be entered from any state.
type State string

const (
	StateLoaded                 State = "loaded"
	StateNodesExtracted         State = "nodes_extracted"
	StateNodesMerged            State = "nodes_merged"
	StateRelationshipsExtracted State = "relationships_extracted"
	StateRelationshipsMerged    State = "relationships_merged"
	StateStored                 State = "stored"
	StateFailed                 State = "failed"
)

// EntityExtractor lists candidate entities from a text span.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) ([]types.Entity, error)
}

// RelationshipExtractor lists candidate relationships between entities from
// the candidate vocabulary.
type RelationshipExtractor interface {
	Extract(ctx context.Context, text string, candidates []string) ([]types.Relationship, error)
}

// Result reports what one document's extraction produced.
type Result struct {
	State                State
	EntitiesFound        int
	EntitiesMerged       int
	EntitiesSkipped      int
	RelationshipsFound   int
	RelationshipsMerged  int
	RelationshipsSkipped int
}

// Extraction is the per-document pipeline. Both model calls happen before
// any graph write, and all merges for the document run inside a single
// write transaction, so a failure at any step leaves no partial state.
type Extraction struct {
	entities      EntityExtractor
	relationships RelationshipExtractor
	store         graph.Store
	logger        *slog.Logger
}

// NewExtraction creates an extraction pipeline.
func NewExtraction(entities EntityExtractor, relationships RelationshipExtractor, store graph.Store, logger *slog.Logger) *Extraction {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extraction{
		entities:      entities,
		relationships: relationships,
		store:         store,
		logger:        logger.With("component", "extraction"),
	}
}

// Process runs one document through the pipeline. On error the returned
// Result carries StateFailed and the state reached before failing is
// logged; already-extracted candidates are discarded, never partially
// written.
func (p *Extraction) Process(ctx context.Context, doc types.Document) (*Result, error) {
	result := &Result{State: StateLoaded}
	log := p.logger.With("document", doc.Source)

	log.Info("processing document", "bytes", len(doc.Content))

	entities, err := p.entities.Extract(ctx, doc.Content)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("document %s: %w", doc.Source, err)
	}
	result.State = StateNodesExtracted
	result.EntitiesFound = len(entities)
	log.Info("extracted candidate entities", "count", len(entities))

	vocabulary := candidateVocabulary(entities)

	relationships, err := p.relationships.Extract(ctx, doc.Content, vocabulary)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("document %s: %w", doc.Source, err)
	}
	result.State = StateRelationshipsExtracted
	result.RelationshipsFound = len(relationships)
	log.Info("extracted candidate relationships", "count", len(relationships))

	err = p.store.WriteBatch(ctx, func(tx graph.Tx) error {
		if err := p.mergeEntities(ctx, tx, entities, result); err != nil {
			return err
		}
		result.State = StateNodesMerged
		if err := p.mergeRelationships(ctx, tx, relationships, result); err != nil {
			return err
		}
		result.State = StateRelationshipsMerged
		return nil
	})
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("document %s: graph write: %w", doc.Source, err)
	}

	result.State = StateStored
	log.Info("stored document graph",
		"entities_merged", result.EntitiesMerged,
		"relationships_merged", result.RelationshipsMerged)
	return result, nil
}

// mergeEntities upserts each candidate as a (label, canonical name) node.
// Empty canonical names are skipped silently; labels outside the closed set
// are skipped with a warning instead of reaching query text.
func (p *Extraction) mergeEntities(ctx context.Context, tx graph.Tx, entities []types.Entity, result *Result) error {
	for _, entity := range entities {
		name := canonical.Name(entity.Name)
		if name == "" {
			result.EntitiesSkipped++
			continue
		}
		if !canonical.ValidLabel(entity.Label) {
			p.logger.Warn("skipping entity with disallowed label",
				"name", name, "label", entity.Label)
			result.EntitiesSkipped++
			continue
		}
		if err := tx.MergeEntity(ctx, entity.Label, name); err != nil {
			return fmt.Errorf("merge entity %q: %w", name, err)
		}
		result.EntitiesMerged++
	}
	return nil
}

// mergeRelationships upserts each candidate as a directed typed edge. A
// relationship is skipped whole if either endpoint canonicalizes to empty
// or its type violates the token grammar; there are no partial writes.
func (p *Extraction) mergeRelationships(ctx context.Context, tx graph.Tx, relationships []types.Relationship, result *Result) error {
	for _, rel := range relationships {
		source := canonical.Name(rel.Source)
		target := canonical.Name(rel.Target)
		if source == "" || target == "" {
			result.RelationshipsSkipped++
			continue
		}
		if !canonical.ValidRelationshipType(rel.Type) {
			p.logger.Warn("skipping relationship with invalid type",
				"source", source, "target", target, "type", rel.Type)
			result.RelationshipsSkipped++
			continue
		}
		if err := tx.MergeRelationship(ctx, source, rel.Type, target, rel.Properties); err != nil {
			return fmt.Errorf("merge relationship %s-[%s]->%s: %w", source, rel.Type, target, err)
		}
		result.RelationshipsMerged++
	}
	return nil
}

// candidateVocabulary derives the closed list of canonical names handed to
// the relationship extractor. Entities whose names canonicalize to empty
// contribute nothing.
func candidateVocabulary(entities []types.Entity) []string {
	seen := make(map[string]struct{}, len(entities))
	vocabulary := make([]string, 0, len(entities))
	for _, entity := range entities {
		name := canonical.Name(entity.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		vocabulary = append(vocabulary, name)
	}
	return vocabulary
}
