// Package anthropic implements the [ai.StreamAdapter] for Anthropic's
// Messages API. Its conversion layer extracts the system prompt into the
// top-level system field and transcodes data-URL images into base64 image
// source blocks, the two places where the Messages API diverges from the
// canonical message shape.
package anthropic
