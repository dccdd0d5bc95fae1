package ai

import (
	"log/slog"

	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
)

// ChunkHandler receives one generated text delta at a time, in the exact order
// the provider emitted them. The handler is awaited before the next SSE event
// is read, so a slow handler naturally applies backpressure to the provider
// connection.
//
// A handler error never aborts the stream: generation continues and the error
// is logged. Return an error only to flag a downstream delivery problem (e.g.
// a disconnected websocket); cancel the request context to actually stop
// generation.
type ChunkHandler func(chunk string) error

// DeliverChunk invokes handler with chunk, isolating the stream from handler
// failures. Errors and panics raised by the handler are logged and swallowed;
// the chunk is considered delivered either way. Adapters must route every
// chunk through this function so a broken consumer cannot kill an in-flight
// completion.
func DeliverChunk(handler ChunkHandler, chunk string) {
	if handler == nil {
		return
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("chunk handler panicked", "panic", recovered)
		}
	}()

	if err := handler(chunk); err != nil {
		slog.Warn("chunk handler failed", "error", err.Error(), "chunk", utils.TruncateString(chunk, 120))
	}
}
