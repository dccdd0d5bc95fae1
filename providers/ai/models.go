package ai

import "time"

/*
	##### CANONICAL MESSAGES #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// Message represents a single message in a conversation. Content is a list of
// typed parts so a single user turn can mix instruction text with screenshot
// images. Adapters translate parts into each provider's wire format.
type Message struct {
	Role    MessageRole   `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart is a discriminated union of message content kinds. The Type
// field selects which of the payload fields is populated:
//   - "text": Text is populated
//   - "image_url": ImageURL is populated (data URL or remote https URL)
type ContentPart struct {
	Type     PartType  `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// PartType discriminates ContentPart payloads.
type PartType string

const (
	PartText  PartType = "text"
	PartImage PartType = "image_url"
)

// ImageURL carries an image reference. URL may be a base64 data URL
// (data:image/png;base64,....) or a remote URI, depending on what the
// front-end captured.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// TextMessage is a convenience constructor for a single-part text message.
func TextMessage(role MessageRole, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentPart{{Type: PartText, Text: text}},
	}
}

// Text concatenates all text parts of the message, joined by newlines between
// parts. Image parts are skipped.
func (m Message) Text() string {
	var out string
	for _, part := range m.Content {
		if part.Type != PartText || part.Text == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += part.Text
	}
	return out
}

/*
	##### COMPLETION OUTCOME #####
*/

// CompletionStatus reports how a completion ended.
type CompletionStatus string

const (
	// StatusCompleted means the provider stream was consumed to exhaustion.
	StatusCompleted CompletionStatus = "completed"
	// StatusError means transport or the provider failed mid-flight. The
	// chunks delivered before the failure remain valid partial output.
	StatusError CompletionStatus = "error"
)

// CompletionResult summarizes a finished completion attempt. Adapters return
// it for every non-cancelled call: transport and provider failures are folded
// into Status/Detail rather than surfaced as Go errors, so a caller that got
// partial output still gets a result describing what happened.
type CompletionResult struct {
	Duration time.Duration    `json:"duration"`
	Status   CompletionStatus `json:"status"`
	Detail   string           `json:"detail,omitempty"`
}

// DurationSeconds returns the elapsed wall-clock time in seconds, the unit
// reported on the HTTP surface.
func (r CompletionResult) DurationSeconds() float64 {
	return r.Duration.Seconds()
}

// CompletedResult builds the result for a stream consumed to exhaustion.
func CompletedResult(duration time.Duration) CompletionResult {
	return CompletionResult{Duration: duration, Status: StatusCompleted}
}

// ErrorResult folds a transport or provider failure into a StatusError result.
// The error text lands in Detail; the credential never appears in these
// messages because it is only ever set on request headers.
func ErrorResult(duration time.Duration, err error) CompletionResult {
	return CompletionResult{Duration: duration, Status: StatusError, Detail: err.Error()}
}
