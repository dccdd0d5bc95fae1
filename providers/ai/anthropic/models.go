package anthropic

import (
	"encoding/json"
	"fmt"
)

/*
	ANTHROPIC MESSAGES API - WIRE TYPES

	Request types for the /v1/messages endpoint plus the SSE event envelope
	for stream=true. Anthropic streaming uses SSE with "event:" lines to
	identify event types followed by "data:" lines containing JSON payloads.
	The SSEScanner only processes "data:" lines, so the "type" field inside
	the JSON payload discriminates events.

	Event lifecycle:
	  message_start → content_block_start → content_block_delta → content_block_stop →
	  message_delta → message_stop
*/

// messagesRequest is the request body for /v1/messages.
type messagesRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"` // Extracted from the leading system message
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"` // Nil = omit, provider default applies
	Stream      bool               `json:"stream,omitempty"`
}

type anthropicMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

// contentBlock is a discriminated union: Type "text" populates Text,
// Type "image" populates Source.
type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

// imageSource carries a base64-encoded image. Data holds the raw base64
// payload extracted from the data URL, without the data:...;base64, prefix.
type imageSource struct {
	Type      string `json:"type"` // "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// streamEvent is the top-level envelope for all Anthropic SSE events.
// The Type field discriminates which optional fields are populated.
type streamEvent struct {
	Type  string          `json:"type"`            // Event discriminator
	Index int             `json:"index,omitempty"` // For content_block_start/delta/stop
	Delta *streamDelta    `json:"delta,omitempty"` // For "content_block_delta" and "message_delta"
	Error *anthropicError `json:"error,omitempty"` // For "error" events
}

// streamDelta carries incremental content within a content_block_delta or
// message_delta event. The Type field discriminates the kind of delta:
//   - "text_delta": Text field is populated
//   - "thinking_delta": Thinking field is populated
//   - (no type on message_delta): StopReason is populated
type streamDelta struct {
	Type       string `json:"type,omitempty"`
	Text       string `json:"text,omitempty"`
	Thinking   string `json:"thinking,omitempty"`
	StopReason string `json:"stop_reason,omitempty"`
}

// anthropicError represents an error event in the Anthropic SSE stream.
type anthropicError struct {
	Type    string `json:"type"`    // Error type (e.g., "overloaded_error", "api_error")
	Message string `json:"message"` // Human-readable error description
}

// unmarshalStreamEvent parses a JSON payload string into a streamEvent.
// Returns an error if the JSON is invalid or the type field is missing.
func unmarshalStreamEvent(payload string) (*streamEvent, error) {
	var event streamEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, err
	}
	if event.Type == "" {
		return nil, fmt.Errorf("missing type field in stream event")
	}
	return &event, nil
}
