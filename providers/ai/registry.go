package ai

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
)

// Family identifies which provider adapter serves a model.
type Family string

const (
	FamilyOpenAI    Family = "openai"
	FamilyAnthropic Family = "anthropic"
	FamilyGemini    Family = "gemini"
)

// ModelSpec describes one catalog entry. Specs are immutable after
// registration; the dispatcher reads them but never mutates them.
type ModelSpec struct {
	// Identifier is the exact model name sent to the provider API.
	Identifier string `yaml:"identifier"`

	// Family selects the adapter (and therefore the wire format).
	Family Family `yaml:"family"`

	// MaxOutputTokens caps the completion length requested from the provider.
	MaxOutputTokens int `yaml:"max_output_tokens"`

	// DefaultTemperature is the sampling temperature sent with every request.
	// A nil value means "no preference": the temperature field is omitted from
	// the request body entirely and the provider default applies.
	DefaultTemperature *float64 `yaml:"temperature"`

	// SupportsStreaming reports whether the provider streams this model over
	// SSE. Models without streaming fall back to a synchronous request whose
	// full text is delivered as a single chunk.
	SupportsStreaming bool `yaml:"supports_streaming"`

	// Reasoning marks models that use the reasoning-token request shape
	// (max_completion_tokens instead of max_tokens, no temperature).
	Reasoning bool `yaml:"reasoning"`

	// Deprecated hides the model from default listings while keeping it
	// addressable for old saved projects.
	Deprecated bool `yaml:"deprecated"`

	// BaseURL overrides the adapter's endpoint for OpenAI-compatible third
	// parties (e.g. DeepSeek). Empty for first-party models.
	BaseURL string `yaml:"base_url"`
}

// Registry is the model catalog. Lookup is exact-match only.
type Registry struct {
	mu     sync.RWMutex
	models map[string]ModelSpec
}

// NewRegistry returns a registry pre-populated with the built-in catalog.
func NewRegistry() *Registry {
	registry := &Registry{models: make(map[string]ModelSpec, len(builtinCatalog))}
	for _, spec := range builtinCatalog {
		registry.models[spec.Identifier] = spec
	}
	return registry
}

// Lookup resolves an identifier to its ModelSpec. An unknown identifier
// returns an *UnknownModelError wrapping ErrUnknownModel; no fuzzy matching
// or default substitution is performed.
func (r *Registry) Lookup(identifier string) (ModelSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.models[identifier]
	if !ok {
		return ModelSpec{}, &UnknownModelError{Identifier: identifier}
	}
	return spec, nil
}

// Register adds or replaces a catalog entry.
func (r *Registry) Register(spec ModelSpec) error {
	if spec.Identifier == "" {
		return fmt.Errorf("model spec has empty identifier")
	}
	if spec.Family == "" {
		return fmt.Errorf("model spec %q has empty family", spec.Identifier)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[spec.Identifier] = spec
	return nil
}

// List returns all catalog entries sorted by identifier. When
// includeDeprecated is false, deprecated models are filtered out.
func (r *Registry) List(includeDeprecated bool) []ModelSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]ModelSpec, 0, len(r.models))
	for _, spec := range r.models {
		if spec.Deprecated && !includeDeprecated {
			continue
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Identifier < specs[j].Identifier
	})
	return specs
}

// catalogFile is the YAML document shape for a catalog overlay file.
type catalogFile struct {
	Models []ModelSpec `yaml:"models"`
}

// LoadOverlay reads a YAML catalog file and registers every entry, adding new
// models and replacing built-in ones with the same identifier. It is used to
// ship model updates without a new binary.
func (r *Registry) LoadOverlay(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog overlay: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse catalog overlay: %w", err)
	}

	for _, spec := range file.Models {
		if err := r.Register(spec); err != nil {
			return fmt.Errorf("catalog overlay: %w", err)
		}
	}
	return nil
}

// deepseekBaseURL is the OpenAI-compatible endpoint for DeepSeek models.
const deepseekBaseURL = "https://api.deepseek.com/v1"

// builtinCatalog lists every model the service knows out of the box.
// Temperature 0 is pinned for code generation determinism; o1 carries no
// temperature at all because the API rejects the parameter.
var builtinCatalog = []ModelSpec{
	{Identifier: "gpt-4-vision-preview", Family: FamilyOpenAI, MaxOutputTokens: 4096, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true, Deprecated: true},
	{Identifier: "gpt-4-turbo-2024-04-09", Family: FamilyOpenAI, MaxOutputTokens: 4096, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "gpt-4o-2024-05-13", Family: FamilyOpenAI, MaxOutputTokens: 4096, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "gpt-4o-2024-08-06", Family: FamilyOpenAI, MaxOutputTokens: 16384, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "gpt-4o-2024-11-20", Family: FamilyOpenAI, MaxOutputTokens: 16384, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "o1-2024-12-17", Family: FamilyOpenAI, MaxOutputTokens: 20000, Reasoning: true},

	{Identifier: "claude-3-sonnet-20240229", Family: FamilyAnthropic, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true, Deprecated: true},
	{Identifier: "claude-3-opus-20240229", Family: FamilyAnthropic, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "claude-3-haiku-20240307", Family: FamilyAnthropic, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "claude-3-5-sonnet-20240620", Family: FamilyAnthropic, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "claude-3-5-sonnet-20241022", Family: FamilyAnthropic, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "claude-3-7-sonnet-20250219", Family: FamilyAnthropic, MaxOutputTokens: 20000, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},

	{Identifier: "gemini-2.0-flash-exp", Family: FamilyGemini, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "gemini-2.0-flash", Family: FamilyGemini, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},
	{Identifier: "gemini-2.0-pro-exp-02-05", Family: FamilyGemini, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true},

	{Identifier: "deepseek-chat", Family: FamilyOpenAI, MaxOutputTokens: 8192, DefaultTemperature: utils.Ptr(0.0), SupportsStreaming: true, BaseURL: deepseekBaseURL},
}
