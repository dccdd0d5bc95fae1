package anthropic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

const (
	// defaultBaseURL is the canonical base URL for Anthropic's Messages API.
	defaultBaseURL = "https://api.anthropic.com/v1"

	// messagesEndpoint is the path for the Messages API endpoint.
	messagesEndpoint = "/messages"

	// anthropicVersion is the required anthropic-version header value.
	// Anthropic uses this to version-lock response formats independently of the URL.
	anthropicVersion = "2023-06-01"

	// completionTimeout bounds a full completion, not a single read.
	completionTimeout = 600 * time.Second
)

// Adapter implements [ai.StreamAdapter] for Anthropic's Messages API.
// A single Adapter is shared across requests; the credential arrives per
// request inside [ai.StreamRequest] and is never stored on the adapter.
// Use [New] to construct a ready-to-use instance.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New returns an [Adapter] initialized from environment variables. It reads
// ANTHROPIC_BASE_URL for the endpoint base (defaulting to
// https://api.anthropic.com/v1 when unset).
func New() *Adapter {
	baseURL := os.Getenv("ANTHROPIC_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: completionTimeout},
	}
}

// WithBaseURL overrides the API base URL and returns the adapter so calls can
// be chained. Use this when targeting a proxy or local testing endpoint.
func (a *Adapter) WithBaseURL(baseURL string) *Adapter {
	a.baseURL = baseURL
	return a
}

// WithHttpClient replaces the default [http.Client] used for API calls and
// returns the adapter so calls can be chained.
func (a *Adapter) WithHttpClient(httpClient *http.Client) *Adapter {
	a.client = httpClient
	return a
}

// buildHeaders constructs the HTTP headers required for every Anthropic
// request. x-api-key carries the credential (Anthropic does not use Bearer
// tokens) and anthropic-version pins the wire format.
func buildHeaders(apiKey string) []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: apiKey},
		{Key: "anthropic-version", Value: anthropicVersion},
	}
}

// StreamCompletion implements [ai.StreamAdapter]. It sends a streaming
// Messages API request and delivers each text delta through req.OnChunk in
// arrival order.
//
// Anthropic SSE lifecycle:
//
//	message_start → content_block_start → content_block_delta(s) →
//	content_block_stop → message_delta → message_stop
//
// Only text_delta events produce chunks; thinking deltas and usage counters
// are consumed silently. Transport and provider failures are folded into the
// returned [ai.CompletionResult] with [ai.StatusError]; conversion failures
// (*ai.ImageDecodeError) and context cancellation surface as Go errors.
func (a *Adapter) StreamCompletion(ctx context.Context, req ai.StreamRequest) (ai.CompletionResult, error) {
	if req.APIKey == "" {
		return ai.CompletionResult{}, fmt.Errorf("Anthropic API key is not set")
	}

	// Convert before starting the clock: a conversion failure is a caller
	// error, not a completion attempt.
	body, err := requestToMessages(req)
	if err != nil {
		return ai.CompletionResult{}, err
	}
	body.Stream = true

	timer := utils.NewTimer()
	baseURL := a.baseURL
	if req.BaseURL != "" {
		baseURL = req.BaseURL
	}

	// Pass empty apiKey so DoPostStream does not inject a Bearer token;
	// Anthropic authenticates via x-api-key (set inside buildHeaders).
	httpResponse, err := utils.DoPostStream(ctx, a.client, baseURL+messagesEndpoint, "", body, buildHeaders(req.APIKey)...)
	if err != nil {
		if ctx.Err() != nil {
			return ai.CompletionResult{}, ctx.Err()
		}
		timer.Stop()
		return ai.ErrorResult(timer.GetDuration(), err), nil
	}
	// Ensure the response body is closed on every exit path.
	defer utils.CloseWithLog(httpResponse.Body)

	sseScanner := utils.NewSSEScanner(httpResponse.Body)

	for {
		// Respect context cancellation between SSE reads.
		if ctx.Err() != nil {
			return ai.CompletionResult{}, ctx.Err()
		}

		payload, sseErr := sseScanner.Next()
		if sseErr == io.EOF {
			break
		}
		if sseErr != nil {
			if ctx.Err() != nil {
				return ai.CompletionResult{}, ctx.Err()
			}
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("SSE read error: %w", sseErr)), nil
		}

		event, parseErr := unmarshalStreamEvent(payload)
		if parseErr != nil {
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("failed to parse stream event: %w", parseErr)), nil
		}

		switch event.Type {
		case "content_block_delta":
			if event.Delta != nil && event.Delta.Type == "text_delta" && event.Delta.Text != "" {
				ai.DeliverChunk(req.OnChunk, event.Delta.Text)
			}

		case "message_stop":
			timer.Stop()
			return ai.CompletedResult(timer.GetDuration()), nil

		case "error":
			errMsg := "unknown stream error"
			if event.Error != nil {
				errMsg = event.Error.Message
			}
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("anthropic stream error: %s", errMsg)), nil

		case "message_start", "content_block_start", "content_block_stop", "message_delta", "ping":
			// Lifecycle and keep-alive events carry no text to deliver.

		default:
			// Unknown event types are silently skipped for forward-compatibility
			// with future Anthropic SSE additions.
		}
	}

	// EOF without message_stop still counts as a completed stream; the
	// provider closed the connection after its final event.
	timer.Stop()
	return ai.CompletedResult(timer.GetDuration()), nil
}
