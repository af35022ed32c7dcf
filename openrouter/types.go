// Package openrouter implements a typed client for the OpenRouter
// chat-completions API (OpenAI-compatible wire format).
package openrouter

import (
	"encoding/json"
	"fmt"

	"github.com/sraesch/go-ai/schema"
)

// Role identifies the sender of a message.
type Role string

// Role constants.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single chat turn in a request or response.
// ToolCallID is set only on tool-role replies and ToolCalls only on
// assistant messages that request tool invocations; both are omitted
// from the wire format when empty.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolMessage creates a tool-role reply for the given tool call.
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	Index    int64        `json:"index"`
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names the function being called. Arguments is an opaque
// JSON-encoded string; no client-side validation against the tool's
// schema is performed.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// DecodeArguments unmarshals the call's arguments into v, which should
// be a pointer to the tool's parameter type.
func (c ToolCall) DecodeArguments(v any) error {
	if err := json.Unmarshal([]byte(c.Function.Arguments), v); err != nil {
		return fmt.Errorf("decoding arguments of %q: %w", c.Function.Name, err)
	}
	return nil
}

// JSONTool is the wire form of a tool definition.
type JSONTool struct {
	// Type of the tool. Must be "function".
	Type string `json:"type"`

	// Function holds the function definition of the tool.
	Function FunctionInfo `json:"function"`
}

// FunctionInfo is the function definition carried by a JSONTool.
type FunctionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Strict requires the model to produce arguments that conform
	// exactly to the parameter schema.
	Strict bool `json:"strict"`

	// Parameters is the JSON Schema of the function's parameters.
	Parameters json.RawMessage `json:"parameters"`
}

// ResponseFormat constrains the shape of the model's output.
type ResponseFormat struct {
	// Type of the constraint. Must be "json_schema".
	Type string `json:"type"`

	JSONSchema *JSONSchemaDescription `json:"json_schema,omitempty"`
}

// JSONSchemaDescription names a schema the model output must conform to.
type JSONSchemaDescription struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

// NewJSONSchemaFormat builds a strict json_schema response format from
// the Go type T.
func NewJSONSchemaFormat[T any](name string) (ResponseFormat, error) {
	s, err := schema.Generate[T]()
	if err != nil {
		return ResponseFormat{}, err
	}

	return ResponseFormat{
		Type: "json_schema",
		JSONSchema: &JSONSchemaDescription{
			Name:   name,
			Strict: true,
			Schema: s,
		},
	}, nil
}

// ChatCompletionResponse is the envelope returned by the
// chat-completions endpoint.
type ChatCompletionResponse struct {
	ID                string   `json:"id"`
	Provider          string   `json:"provider,omitempty"`
	Model             string   `json:"model,omitempty"`
	Object            string   `json:"object,omitempty"`
	SystemFingerprint string   `json:"system_fingerprint,omitempty"`
	Usage             Usage    `json:"usage"`
	Created           int64    `json:"created"`
	Choices           []Choice `json:"choices"`
}

// Choice is one candidate response returned by the completion API.
type Choice struct {
	Index              int64   `json:"index"`
	FinishReason       string  `json:"finish_reason"`
	NativeFinishReason string  `json:"native_finish_reason"`
	Message            Message `json:"message"`
}

// Finish reasons reported by the API.
const (
	FinishReasonStop      = "stop"
	FinishReasonToolCalls = "tool_calls"
	FinishReasonLength    = "length"
)

// Usage contains token usage statistics for one completion.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}
