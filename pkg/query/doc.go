// Package query answers natural-language questions against the graph: it
// generates a Cypher query from the live schema, executes it, and
// synthesizes a grounded prose answer from the result rows.
package query
