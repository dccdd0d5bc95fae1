package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

// generateRequest is the POST /api/generate payload. Message content accepts
// either a bare string or the typed part list, matching both front-end
// versions in the wild.
type generateRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	APIKey   string       `json:"api_key,omitempty"`
	BaseURL  string       `json:"base_url,omitempty"`
}

type apiMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// toMessage resolves the dual-shape content field into canonical parts.
func (m apiMessage) toMessage() (ai.Message, error) {
	var text string
	if err := json.Unmarshal(m.Content, &text); err == nil {
		return ai.TextMessage(ai.MessageRole(m.Role), text), nil
	}

	var parts []ai.ContentPart
	if err := json.Unmarshal(m.Content, &parts); err != nil {
		return ai.Message{}, fmt.Errorf("message content must be a string or a part list: %w", err)
	}
	return ai.Message{Role: ai.MessageRole(m.Role), Content: parts}, nil
}

// Stream event types emitted on the /api/generate SSE channel.
type chunkEvent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type resultEvent struct {
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	DurationSeconds float64 `json:"duration_seconds"`
	Detail          string  `json:"detail,omitempty"`
}

type errorEvent struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

func (s *Server) handleGenerate(c echo.Context) error {
	var body generateRequest
	if err := decodeRequestBody(c, &body); err != nil {
		return err
	}
	if body.Model == "" {
		return requestError{Status: http.StatusBadRequest, Message: "model is required"}
	}
	if len(body.Messages) == 0 {
		return requestError{Status: http.StatusBadRequest, Message: "messages must not be empty"}
	}

	messages := make([]ai.Message, 0, len(body.Messages))
	for index, msg := range body.Messages {
		converted, err := msg.toMessage()
		if err != nil {
			return requestError{Status: http.StatusBadRequest, Message: fmt.Sprintf("message %d: %v", index, err)}
		}
		messages = append(messages, converted)
	}

	// Resolve the model before committing to a streaming response so a
	// catalog miss is still a plain 400.
	spec, err := s.registry.Lookup(body.Model)
	if err != nil {
		return toHTTPError(err)
	}

	apiKey := body.APIKey
	if apiKey == "" {
		apiKey = s.cfg.FallbackKey(string(spec.Family))
	}
	if apiKey == "" {
		return requestError{Status: http.StatusBadRequest, Message: fmt.Sprintf("no API key provided and no server key configured for %s", spec.Family)}
	}

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)

	flusher, canFlush := response.Writer.(http.Flusher)

	onChunk := func(chunk string) error {
		if err := writeSSEEvent(response, chunkEvent{Type: "chunk", Content: chunk}); err != nil {
			return err
		}
		if canFlush {
			flusher.Flush()
		}
		return nil
	}

	var opts []ai.DispatchOption
	if body.BaseURL != "" {
		opts = append(opts, ai.WithBaseURL(body.BaseURL))
	}

	result, err := s.dispatcher.Dispatch(c.Request().Context(), body.Model, messages, apiKey, onChunk, opts...)
	if err != nil {
		// The stream is already committed; the failure travels as a
		// terminal event instead of a status code.
		_ = writeSSEEvent(response, errorEvent{Type: "error", Detail: err.Error()})
		if canFlush {
			flusher.Flush()
		}
		s.trackGenerate(c, body.Model, string(ai.StatusError))
		return nil
	}

	if err := writeSSEEvent(response, resultEvent{
		Type:            "result",
		Status:          string(result.Status),
		DurationSeconds: result.DurationSeconds(),
		Detail:          result.Detail,
	}); err != nil {
		return nil
	}
	if canFlush {
		flusher.Flush()
	}

	s.trackGenerate(c, body.Model, string(result.Status))
	return nil
}

// trackGenerate records the attempt in the event log, keyed by session id.
// Logging failures must not disturb the response.
func (s *Server) trackGenerate(c echo.Context, model, status string) {
	if s.events == nil {
		return
	}
	data := utils.ToString(map[string]string{"model": model, "status": status})
	if err := s.events.Track(sessionID(c), "generate", data); err != nil {
		slog.Warn("failed to record generate event", "error", err)
	}
}

// writeSSEEvent writes one data-only server-sent event.
func writeSSEEvent(w io.Writer, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sse payload: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", encoded); err != nil {
		return fmt.Errorf("write sse event: %w", err)
	}
	return nil
}

// toHTTPError maps domain errors onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ai.ErrUnknownModel):
		return requestError{Status: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, ai.ErrImageDecode):
		return requestError{Status: http.StatusBadRequest, Message: err.Error()}
	default:
		return err
	}
}
