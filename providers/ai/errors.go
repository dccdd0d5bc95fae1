package ai

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned when a model identifier has no catalog entry.
// Lookups are exact: there is no fuzzy matching and no fallback to a default
// model, so a typo'd identifier always fails loudly instead of silently
// running against the wrong model.
var ErrUnknownModel = errors.New("unknown model")

// ErrImageDecode is returned when an image content part cannot be decoded
// into a provider wire format (malformed data URL, missing base64 payload).
var ErrImageDecode = errors.New("image decode failed")

// UnknownModelError reports a registry lookup miss for a specific identifier.
type UnknownModelError struct {
	Identifier string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownModel, e.Identifier)
}

func (e *UnknownModelError) Unwrap() error {
	return ErrUnknownModel
}

// ImageDecodeError reports which message carried the undecodable image so the
// caller can point at the offending turn in the conversation.
type ImageDecodeError struct {
	MessageIndex int
	Reason       string
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("%v: message %d: %s", ErrImageDecode, e.MessageIndex, e.Reason)
}

func (e *ImageDecodeError) Unwrap() error {
	return ErrImageDecode
}
