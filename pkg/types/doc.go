// Package types defines the shared data contracts of CogniGraph: documents,
// extracted entities and relationships, graph query rows, and the message
// shapes exchanged with the generative model.
package types
