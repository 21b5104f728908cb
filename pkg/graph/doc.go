// Package graph provides the property-graph store behind CogniGraph: a
// Store interface for query execution, schema reads and per-document write
// batches, plus a Neo4j implementation.
//
// Identifier safety: node labels and relationship types originate from
// model output and are the only strings ever spliced into Cypher text.
// Both are validated against a strict grammar before interpolation; every
// other value travels as a query parameter.
package graph
