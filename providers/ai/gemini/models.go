package gemini

import "encoding/json"

/*
	GEMINI API - WIRE TYPES

	Request and response types for the generateContent family of endpoints.
	With alt=sse each streaming event carries a full generateContentResponse
	rather than a delta envelope; candidates in consecutive events hold the
	incremental text for that event.
*/

// generateContentRequest is the request body for
// models/{model}:streamGenerateContent.
type generateContentRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"; empty for systemInstruction
	Parts []geminiPart `json:"parts"`
}

// geminiPart is a discriminated union: exactly one of Text, InlineData, or
// FileData is populated.
type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
	FileData   *fileData   `json:"fileData,omitempty"`
}

// inlineData embeds a base64-encoded image directly in the request.
type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // Base64 payload without the data URL prefix
}

// fileData references a remotely hosted image by URI.
type fileData struct {
	MimeType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri"`
}

type generationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"` // Nil = omit, provider default applies
}

// generateContentResponse is one SSE event payload (and the full synchronous
// response shape).
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content      *candidateContent `json:"content"`
	FinishReason string            `json:"finishReason,omitempty"`
}

type candidateContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// apiError is the error object Gemini embeds in failure payloads.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// unmarshalResponse parses a raw SSE data payload into a generateContentResponse.
func unmarshalResponse(payload string) (*generateContentResponse, error) {
	var response generateContentResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return nil, err
	}
	return &response, nil
}
