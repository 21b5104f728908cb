// Package prompts builds the chat messages and declared output schemas for
// every model invocation CogniGraph makes: entity extraction, relationship
// extraction, Cypher generation and answer synthesis.
package prompts
