// Package gemini implements the [ai.StreamAdapter] for Google's Gemini API
// using the streamGenerateContent endpoint with alt=sse. Its conversion layer
// forwards only the first image of the final message, inline for data URLs
// and by reference for remote URIs.
package gemini
