// Package cognigraph turns unstructured documents into a Neo4j property
// graph and answers natural-language questions against it.
//
// Documents are processed by a generative model in two passes: one to
// extract candidate entities from a closed label set, one to extract typed
// relationships restricted to those entities. All merges for a document run
// inside a single write transaction, and every merge is idempotent, so
// reprocessing a document never duplicates graph state.
//
// Questions are answered by handing the live graph schema and the question
// to the model, executing the single Cypher query it returns, and
// synthesizing a grounded prose answer from the result rows.
//
// # Basic Usage
//
// Create a client around shared store and model handles:
//
//	store, err := graph.NewNeo4jStore("bolt://localhost:7687", "neo4j", "password", "neo4j")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	model, err := nlp.NewOpenAIClient(apiKey, nlp.Config{Model: "gpt-4o-mini"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := cognigraph.NewClient(store, model, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close(ctx)
//
// # Processing Documents
//
//	doc, err := loader.Load("reports/q3.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := client.ProcessDocument(ctx, *doc)
//
// # Asking Questions
//
//	answer, err := client.Answer(ctx, "Who leads Project Alpha?")
//
// A question the model declines to translate into Cypher, or result rows it
// declines to summarize, yield fixed fallback answers rather than errors.
//
// # Architecture
//
//   - pkg/graph: Neo4j store with validated merge operations
//   - pkg/nlp: model client interface and OpenAI implementation
//   - pkg/extract: entity and relationship extraction over the model
//   - pkg/pipeline: per-document extraction pipeline
//   - pkg/query: question answering pipeline
//   - pkg/loader, pkg/ingest: document loading and the directory worker
package cognigraph
