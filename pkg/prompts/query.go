package prompts

import (
	"fmt"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// GenerateCypher builds the messages that turn a schema description and a
// natural-language question into a single Cypher query.
func GenerateCypher(schema, question string) []types.Message {
	sysPrompt := `You are an expert Neo4j developer. Your task is to convert a natural language question into a valid Cypher query based on the provided Neo4j graph schema.

CRITICAL RULES:
1. Strictly Adhere to Schema: You MUST use the exact node labels and relationship types provided in the schema. You are FORBIDDEN from using any labels or relationship types not listed in the schema. If the user's question implies a relationship that is not in the schema, you must find the most semantically similar one from the schema and use that.
2. Lowercase all Names: All 'name' properties in the graph are stored in lowercase. When generating a query that filters by a 'name' property, you MUST convert the value from the user's question to lowercase. For example, if the question is about "QuantumLeap", your query's WHERE clause MUST use p.name = 'quantumleap'.
3. Return ONLY the Cypher Query: Your entire response must be only the Cypher query. Do not include any explanations, comments, markdown formatting, or any text other than the query itself.`

	userPrompt := fmt.Sprintf(`Schema:
%s

Question: %s
Cypher Query:`, schema, question)

	return []types.Message{
		nlp.NewSystemMessage(sysPrompt),
		nlp.NewUserMessage(userPrompt),
	}
}

// SynthesizeAnswer builds the messages that turn a question and serialized
// query results into a grounded prose answer.
func SynthesizeAnswer(question, context string) []types.Message {
	sysPrompt := `You are an expert AI assistant. Your task is to provide a concise, natural language answer to a user's question based on the data returned from a database query.
Do not mention the database or the query. Just provide the answer. If the data is empty, say you could not find an answer.`

	userPrompt := fmt.Sprintf(`Question: %s

Query Result Data:
%s

Final Answer:`, question, context)

	return []types.Message{
		nlp.NewSystemMessage(sysPrompt),
		nlp.NewUserMessage(userPrompt),
	}
}
