package ai

import (
	"context"
	"fmt"
)

// Dispatcher routes completion requests to provider adapters by model family.
// It owns no translation, counting, or caching of its own: lookup, route,
// delegate, and hand the adapter's result back verbatim.
type Dispatcher struct {
	registry *Registry
	adapters map[Family]StreamAdapter
}

// NewDispatcher creates a dispatcher over the given registry. Adapters are
// wired explicitly with [Dispatcher.Register]; a family without an adapter
// fails at dispatch time, not at construction.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		adapters: make(map[Family]StreamAdapter),
	}
}

// Register binds an adapter to a model family, replacing any previous binding.
func (d *Dispatcher) Register(family Family, adapter StreamAdapter) {
	d.adapters[family] = adapter
}

// DispatchOption customizes a single Dispatch call.
type DispatchOption func(*StreamRequest)

// WithBaseURL overrides the provider endpoint for this call only.
func WithBaseURL(baseURL string) DispatchOption {
	return func(req *StreamRequest) {
		req.BaseURL = baseURL
	}
}

// Dispatch resolves modelID against the registry, selects the adapter for the
// model's family, and delegates the completion. Each text delta is delivered
// through onChunk in provider order.
//
// Errors returned: *UnknownModelError for a catalog miss, a routing error for
// a family with no adapter, conversion errors such as *ImageDecodeError, and
// context cancellation. Transport failures arrive inside the returned
// CompletionResult with StatusError instead.
func (d *Dispatcher) Dispatch(ctx context.Context, modelID string, messages []Message, apiKey string, onChunk ChunkHandler, opts ...DispatchOption) (CompletionResult, error) {
	spec, err := d.registry.Lookup(modelID)
	if err != nil {
		return CompletionResult{}, err
	}

	adapter, ok := d.adapters[spec.Family]
	if !ok {
		return CompletionResult{}, fmt.Errorf("no adapter registered for family %q (model %q)", spec.Family, spec.Identifier)
	}

	req := StreamRequest{
		Model:    spec,
		Messages: messages,
		APIKey:   apiKey,
		OnChunk:  onChunk,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return adapter.StreamCompletion(ctx, req)
}
