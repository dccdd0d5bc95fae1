// Package ai defines the shared, provider-agnostic types used across all LLM
// provider adapters (OpenAI, Anthropic, Gemini, and OpenAI-compatible vendors).
// Each adapter's conversion layer is responsible for mapping these types to its
// own wire format, keeping the rest of the codebase decoupled from
// provider-specific details.
//
// The central pieces are the [Registry] (the catalog of known models), the
// [StreamAdapter] interface implemented by each provider package, and the
// [Dispatcher] which routes a completion request to the right adapter by model
// family. Generated code flows back to the caller one delta at a time through
// a [ChunkHandler]; the outcome of a completion is summarized in a
// [CompletionResult].
package ai
