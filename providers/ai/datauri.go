package ai

import (
	"fmt"
	"strings"
)

// DataURL holds the media type and raw base64 payload extracted from a
// data:<media-type>;base64,<payload> URL. The payload is kept base64-encoded
// because every provider wire format that needs it (Anthropic image source,
// Gemini inlineData) transports base64 text, not raw bytes.
type DataURL struct {
	MediaType string
	Data      string
}

// ParseDataURL splits a base64 data URL into its media type and payload.
// Only the base64 encoding is accepted; percent-encoded data URLs are not
// produced by the front-end and are rejected here.
func ParseDataURL(url string) (DataURL, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return DataURL{}, fmt.Errorf("not a data URL")
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURL{}, fmt.Errorf("data URL has no payload separator")
	}

	mediaType, encoding, ok := strings.Cut(header, ";")
	if !ok || encoding != "base64" {
		return DataURL{}, fmt.Errorf("data URL is not base64-encoded")
	}
	if mediaType == "" {
		return DataURL{}, fmt.Errorf("data URL has empty media type")
	}
	if payload == "" {
		return DataURL{}, fmt.Errorf("data URL has empty payload")
	}

	return DataURL{MediaType: mediaType, Data: payload}, nil
}

// IsDataURL reports whether url uses the data: scheme.
func IsDataURL(url string) bool {
	return strings.HasPrefix(url, "data:")
}
