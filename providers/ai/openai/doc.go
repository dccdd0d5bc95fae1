// Package openai implements the [ai.StreamAdapter] for OpenAI's chat
// completions API and for OpenAI-compatible third parties (DeepSeek) reached
// through a catalog base URL override.
package openai
