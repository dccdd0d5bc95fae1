package openai

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
	// defaultBaseURL is the canonical base URL for OpenAI's API.
	defaultBaseURL = "https://api.openai.com/v1"

	// chatCompletionsEndpoint is the path for the chat completions endpoint.
	chatCompletionsEndpoint = "/chat/completions"

	// completionTimeout bounds a full completion, not a single read. Code
	// generation for a complex screenshot can stream for several minutes.
	completionTimeout = 600 * time.Second
)

// Adapter implements [ai.StreamAdapter] for OpenAI's chat completions API.
// A single Adapter is shared across requests; the credential arrives per
// request inside [ai.StreamRequest] and is never stored on the adapter.
// Use [New] to construct a ready-to-use instance.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New returns an [Adapter] initialized from environment variables. It reads
// OPENAI_BASE_URL for the endpoint base (defaulting to the public API when
// unset). Use [Adapter.WithBaseURL] to override after construction.
func New() *Adapter {
	baseURL := os.Getenv("OPENAI_BASE_URL")
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

// StreamCompletion implements [ai.StreamAdapter]. It sends a streaming chat
// completions request and delivers each content delta through req.OnChunk in
// arrival order. Models without streaming support fall back to a synchronous
// request whose full text is delivered as one chunk.
//
// Transport and provider failures are folded into the returned
// [ai.CompletionResult] with [ai.StatusError]; only conversion problems and
// context cancellation surface as Go errors.
func (a *Adapter) StreamCompletion(ctx context.Context, req ai.StreamRequest) (ai.CompletionResult, error) {
	if req.APIKey == "" {
		return ai.CompletionResult{}, fmt.Errorf("OpenAI API key is not set")
	}

	timer := utils.NewTimer()
	baseURL := a.resolveBaseURL(req)
	body := requestToChatCompletion(req)

	if !req.Model.SupportsStreaming {
		return a.completeSync(ctx, baseURL, req, body, timer)
	}

	body.Stream = utils.Ptr(true)
	body.StreamOptions = &streamOptions{IncludeUsage: true}

	httpResponse, err := utils.DoPostStream(ctx, a.client, baseURL+chatCompletionsEndpoint, req.APIKey, body)
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

		chunk, parseErr := unmarshalStreamChunk(payload)
		if parseErr != nil {
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("failed to parse streaming chunk: %w", parseErr)), nil
		}

		if chunk.Error != nil {
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("provider stream error: %s", chunk.Error.Message)), nil
		}

		for _, choice := range chunk.Choices {
			if choice.Delta.Content != nil && *choice.Delta.Content != "" {
				ai.DeliverChunk(req.OnChunk, *choice.Delta.Content)
			}
		}
	}

	timer.Stop()
	return ai.CompletedResult(timer.GetDuration()), nil
}

// completeSync handles models that reject stream=true (o1). The full response
// text is delivered as a single chunk so callers see the same delivery
// contract as a streaming model, just with one large delta.
func (a *Adapter) completeSync(ctx context.Context, baseURL string, req ai.StreamRequest, body chatCompletionRequest, timer *utils.Timer) (ai.CompletionResult, error) {
	_, response, err := utils.DoPostSync[chatCompletionResponse](ctx, a.client, baseURL+chatCompletionsEndpoint, req.APIKey, body)
	if err != nil {
		if ctx.Err() != nil {
			return ai.CompletionResult{}, ctx.Err()
		}
		timer.Stop()
		return ai.ErrorResult(timer.GetDuration(), err), nil
	}

	if response == nil || len(response.Choices) == 0 {
		timer.Stop()
		return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("empty completion response")), nil
	}

	if content := response.Choices[0].Message.Content; content != "" {
		ai.DeliverChunk(req.OnChunk, content)
	}

	timer.Stop()
	return ai.CompletedResult(timer.GetDuration()), nil
}

// resolveBaseURL picks the endpoint for this call: per-call override first,
// then the catalog base URL (OpenAI-compatible third parties), then the
// adapter default.
func (a *Adapter) resolveBaseURL(req ai.StreamRequest) string {
	if req.BaseURL != "" {
		return req.BaseURL
	}
	if req.Model.BaseURL != "" {
		return req.Model.BaseURL
	}
	return a.baseURL
}
