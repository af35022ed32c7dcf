package openrouter

import (
	"fmt"
	"strings"
)

// Architecture describes a model's input/output modalities.
type Architecture struct {
	Modality         string   `json:"modality"`
	InputModalities  []string `json:"input_modalities"`
	OutputModalities []string `json:"output_modalities"`
	Tokenizer        string   `json:"tokenizer"`
	InstructType     string   `json:"instruct_type,omitempty"`
}

// Pricing lists per-unit prices as decimal strings, as reported by the
// API. Optional entries are empty when the provider does not charge
// for them.
type Pricing struct {
	Prompt            string `json:"prompt"`
	Completion        string `json:"completion"`
	Request           string `json:"request,omitempty"`
	Image             string `json:"image,omitempty"`
	WebSearch         string `json:"web_search,omitempty"`
	InternalReasoning string `json:"internal_reasoning,omitempty"`
	InputCacheRead    string `json:"input_cache_read,omitempty"`
	InputCacheWrite   string `json:"input_cache_write,omitempty"`
}

// String renders the pricing for human display.
func (p Pricing) String() string {
	parts := []string{
		fmt.Sprintf("prompt=%s", p.Prompt),
		fmt.Sprintf("completion=%s", p.Completion),
	}
	if p.Request != "" {
		parts = append(parts, fmt.Sprintf("request=%s", p.Request))
	}
	if p.Image != "" {
		parts = append(parts, fmt.Sprintf("image=%s", p.Image))
	}
	if p.WebSearch != "" {
		parts = append(parts, fmt.Sprintf("web_search=%s", p.WebSearch))
	}
	if p.InternalReasoning != "" {
		parts = append(parts, fmt.Sprintf("internal_reasoning=%s", p.InternalReasoning))
	}
	return strings.Join(parts, ", ")
}

// TopProvider describes the limits of the model's primary provider.
type TopProvider struct {
	ContextLength       int64 `json:"context_length,omitempty"`
	MaxCompletionTokens int64 `json:"max_completion_tokens,omitempty"`
	IsModerated         bool  `json:"is_moderated"`
}

// Model is one entry of the provider's model listing.
type Model struct {
	ID                  string            `json:"id"`
	HuggingFaceID       string            `json:"hugging_face_id,omitempty"`
	Name                string            `json:"name"`
	Created             int64             `json:"created"`
	Description         string            `json:"description"`
	ContextLength       int64             `json:"context_length"`
	Architecture        Architecture      `json:"architecture"`
	Pricing             Pricing           `json:"pricing"`
	TopProvider         TopProvider       `json:"top_provider"`
	PerRequestLimits    map[string]string `json:"per_request_limits,omitempty"`
	SupportedParameters []string          `json:"supported_parameters"`
}

// Supports reports whether the model advertises the given capability,
// e.g. "tools", "tool_choice", or "structured_outputs".
func (m *Model) Supports(param string) bool {
	for _, p := range m.SupportedParameters {
		if p == param {
			return true
		}
	}
	return false
}

// ModelList is the model catalog as fetched, in listing order. The
// catalog performs no filtering itself; callers filter by name or
// capability as needed.
type ModelList struct {
	Models []Model `json:"data"`
}
