// Package nlp provides access to generative language models behind a small
// Client interface. The production implementation speaks the OpenAI chat
// API (and any OpenAI-compatible endpoint); tests substitute struct stubs.
//
// A blocked or empty model response is surfaced as a RefusalError rather
// than a generic failure, so callers can distinguish "the model declined"
// from "the call broke".
package nlp
