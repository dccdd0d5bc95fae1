package ai

import "context"

// StreamRequest carries everything an adapter needs to run one completion.
// The credential travels here, per request, rather than living on the adapter:
// adapters are shared across requests while keys arrive from the caller's
// settings dialog. The key is placed in request headers only — it is never
// logged and never used to derive cache or client lookup keys.
type StreamRequest struct {
	// Model is the resolved catalog entry for this request.
	Model ModelSpec

	// Messages is the canonical conversation, system prompt included.
	Messages []Message

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL overrides the endpoint for this call only (proxies, test
	// servers). Empty means the adapter and catalog defaults apply.
	BaseURL string

	// OnChunk receives each text delta as it arrives. May be nil, in which
	// case deltas are discarded and only the final result is reported.
	OnChunk ChunkHandler
}

// StreamAdapter is implemented by each provider package. StreamCompletion
// runs one completion end to end: it converts messages to the provider wire
// format, opens the SSE stream, delivers deltas through req.OnChunk, and
// reports the outcome.
//
// Error contract: conversion failures (e.g. *ImageDecodeError) and context
// cancellation are returned as Go errors. Transport and provider failures are
// folded into the CompletionResult with StatusError and are NOT returned as
// errors, so partial output delivered before the failure stays usable.
type StreamAdapter interface {
	StreamCompletion(ctx context.Context, req StreamRequest) (CompletionResult, error)
}
