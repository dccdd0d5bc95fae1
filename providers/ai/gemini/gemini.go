package gemini

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
	// defaultBaseURL is the canonical base URL for the Gemini API.
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// completionTimeout bounds a full completion, not a single read.
	completionTimeout = 600 * time.Second
)

// Adapter implements [ai.StreamAdapter] for Google's Gemini API.
// A single Adapter is shared across requests; the credential arrives per
// request inside [ai.StreamRequest] and is never stored on the adapter.
// Use [New] to construct a ready-to-use instance.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New returns an [Adapter] initialized from environment variables. It reads
// GEMINI_BASE_URL for the endpoint base (defaulting to the public API when
// unset).
func New() *Adapter {
	baseURL := os.Getenv("GEMINI_BASE_URL")
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

// StreamCompletion implements [ai.StreamAdapter]. It posts to
// streamGenerateContent with alt=sse and delivers each event's candidate text
// through req.OnChunk in arrival order. With alt=sse Gemini sends each event's
// new text in that event's parts, so part text is forwarded directly without
// cumulative-length bookkeeping.
//
// Transport and provider failures are folded into the returned
// [ai.CompletionResult] with [ai.StatusError]; conversion failures
// (*ai.ImageDecodeError) and context cancellation surface as Go errors.
func (a *Adapter) StreamCompletion(ctx context.Context, req ai.StreamRequest) (ai.CompletionResult, error) {
	if req.APIKey == "" {
		return ai.CompletionResult{}, fmt.Errorf("Gemini API key is not set")
	}

	body, err := requestToGenerateContent(req)
	if err != nil {
		return ai.CompletionResult{}, err
	}

	timer := utils.NewTimer()
	baseURL := a.baseURL
	if req.BaseURL != "" {
		baseURL = req.BaseURL
	}

	streamURL := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", baseURL, req.Model.Identifier)

	// Pass empty apiKey so DoPostStream does not inject a Bearer token;
	// Gemini authenticates via x-goog-api-key.
	httpResponse, err := utils.DoPostStream(
		ctx,
		a.client,
		streamURL,
		"",
		body,
		utils.HeaderOption{Key: "x-goog-api-key", Value: req.APIKey},
	)
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

		response, parseErr := unmarshalResponse(payload)
		if parseErr != nil {
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("failed to parse streaming chunk: %w", parseErr)), nil
		}

		if response.Error != nil {
			timer.Stop()
			return ai.ErrorResult(timer.GetDuration(), fmt.Errorf("gemini stream error: %s", response.Error.Message)), nil
		}

		for _, text := range candidateText(response) {
			ai.DeliverChunk(req.OnChunk, text)
		}
	}

	timer.Stop()
	return ai.CompletedResult(timer.GetDuration()), nil
}

// candidateText extracts the text parts of the first candidate, in order.
func candidateText(response *generateContentResponse) []string {
	if len(response.Candidates) == 0 {
		return nil
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return nil
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return texts
}
