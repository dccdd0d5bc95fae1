package openai

import "encoding/json"

/*
	CHAT COMPLETIONS API - WIRE TYPES

	Request and response types for the /v1/chat/completions endpoint, both
	stream=true (SSE chunks) and synchronous. Message content is always sent
	as an array of typed parts so text and image_url parts can be mixed in a
	single turn.
*/

// chatCompletionRequest is the request body for /v1/chat/completions.
type chatCompletionRequest struct {
	Model               string         `json:"model"`
	Messages            []chatMessage  `json:"messages"`
	MaxTokens           *int           `json:"max_tokens,omitempty"`            // Standard models
	MaxCompletionTokens *int           `json:"max_completion_tokens,omitempty"` // Reasoning models (o1) reject max_tokens
	Temperature         *float64       `json:"temperature,omitempty"`           // Nil = omit, provider default applies
	Stream              *bool          `json:"stream,omitempty"`
	StreamOptions       *streamOptions `json:"stream_options,omitempty"`
}

// streamOptions configures streaming behavior in the request.
type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatContentPart `json:"content"`
}

// chatContentPart is a discriminated union: Type "text" populates Text,
// Type "image_url" populates ImageURL.
type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL    string `json:"url"` // Data URL or remote https URL, passed through unchanged
	Detail string `json:"detail,omitempty"`
}

// chatCompletionStreamChunk represents a single SSE chunk from the streaming
// chat completions endpoint.
type chatCompletionStreamChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"` // "chat.completion.chunk"
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []streamChoice `json:"choices"`
	Usage   *chatUsage     `json:"usage,omitempty"` // Present only in final chunk when stream_options.include_usage is true
	Error   *apiError      `json:"error,omitempty"` // Some OpenAI-compatible vendors report mid-stream failures inline
}

// streamChoice represents a single choice in a streaming chunk.
// Unlike the non-streaming chatChoice, it uses Delta instead of Message.
type streamChoice struct {
	Index        int         `json:"index"`
	Delta        streamDelta `json:"delta"`
	FinishReason *string     `json:"finish_reason"` // Nullable; nil until the final chunk for this choice
}

// streamDelta carries the incremental content for a streaming chunk.
type streamDelta struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content,omitempty"` // Nullable to distinguish empty string from absent
}

// apiError is the error object OpenAI-compatible endpoints embed in error payloads.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    any    `json:"code,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// chatCompletionResponse is the synchronous (non-streaming) response body,
// used for models that do not support SSE streaming.
type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason,omitempty"`
}

type chatResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// unmarshalStreamChunk parses a raw SSE data payload into a chatCompletionStreamChunk.
func unmarshalStreamChunk(data string) (*chatCompletionStreamChunk, error) {
	var chunk chatCompletionStreamChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return nil, err
	}
	return &chunk, nil
}
