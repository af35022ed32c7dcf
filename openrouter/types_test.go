package openrouter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageConstructors(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		wantRole Role
		wantID   string
	}{
		{
			name:     "system message",
			message:  SystemMessage("You are a helpful assistant."),
			wantRole: RoleSystem,
		},
		{
			name:     "user message",
			message:  UserMessage("What is the weather like in Paris today?"),
			wantRole: RoleUser,
		},
		{
			name:     "assistant message",
			message:  AssistantMessage("It is sunny."),
			wantRole: RoleAssistant,
		},
		{
			name:     "tool message",
			message:  ToolMessage("call_123", "The current temperature is 21°C"),
			wantRole: RoleTool,
			wantID:   "call_123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRole, tt.message.Role)
			assert.Equal(t, tt.wantID, tt.message.ToolCallID)
			assert.Empty(t, tt.message.ToolCalls)
		})
	}
}

func TestMessage_OmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(UserMessage("hello"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "role")
	assert.Contains(t, decoded, "content")
	assert.NotContains(t, decoded, "tool_call_id")
	assert.NotContains(t, decoded, "tool_calls")
}

func TestToolChoice_Marshal(t *testing.T) {
	tests := []struct {
		name   string
		choice ToolChoice
		want   string
	}{
		{
			name:   "auto",
			choice: ToolChoiceAuto,
			want:   `"auto"`,
		},
		{
			name:   "required",
			choice: ToolChoiceRequired,
			want:   `"required"`,
		},
		{
			name:   "function",
			choice: ToolChoiceFunction("get_weather"),
			want:   `{"function":{"name":"get_weather"},"type":"function"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.choice)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestToolChoice_MarshalZeroValue(t *testing.T) {
	var zero ToolChoice
	_, err := json.Marshal(zero)
	assert.Error(t, err)
}

func TestToolChoice_FunctionName(t *testing.T) {
	name, ok := ToolChoiceFunction("get_weather").FunctionName()
	assert.True(t, ok)
	assert.Equal(t, "get_weather", name)

	_, ok = ToolChoiceRequired.FunctionName()
	assert.False(t, ok)
}

// toolCallResponse is a real response to a tool-calling request.
const toolCallResponse = `{
	"id": "gen-1747167300-Qc7IgPZUPoopdSABk5KA",
	"provider": "OpenAI",
	"model": "openai/gpt-4.1",
	"object": "chat.completion",
	"created": 1747167300,
	"choices": [
		{
			"logprobs": null,
			"finish_reason": "tool_calls",
			"native_finish_reason": "tool_calls",
			"index": 0,
			"message": {
				"role": "assistant",
				"content": "",
				"refusal": null,
				"tool_calls": [
					{
						"index": 0,
						"id": "call_L8RNjCRpMAxGkCAy5ovJxkw9",
						"type": "function",
						"function": {
							"name": "get_weather",
							"arguments": "{\"location\":\"London, United Kingdom\"}"
						}
					}
				]
			}
		}
	],
	"system_fingerprint": null,
	"usage": {
		"prompt_tokens": 42,
		"completion_tokens": 18,
		"total_tokens": 60
	}
}`

func TestChatCompletionResponse_DecodeToolCalls(t *testing.T) {
	var resp ChatCompletionResponse
	require.NoError(t, json.Unmarshal([]byte(toolCallResponse), &resp))

	assert.Equal(t, "gen-1747167300-Qc7IgPZUPoopdSABk5KA", resp.ID)
	assert.Equal(t, "OpenAI", resp.Provider)
	assert.Equal(t, int64(60), resp.Usage.TotalTokens)

	require.Len(t, resp.Choices, 1)
	choice := resp.Choices[0]
	assert.Equal(t, FinishReasonToolCalls, choice.FinishReason)

	require.Len(t, choice.Message.ToolCalls, 1)
	call := choice.Message.ToolCalls[0]
	assert.Equal(t, "call_L8RNjCRpMAxGkCAy5ovJxkw9", call.ID)
	assert.Equal(t, "function", call.Type)
	assert.Equal(t, "get_weather", call.Function.Name)

	var args struct {
		Location string `json:"location"`
	}
	require.NoError(t, call.DecodeArguments(&args))
	assert.Equal(t, "London, United Kingdom", args.Location)
}

func TestToolCall_DecodeArgumentsInvalid(t *testing.T) {
	call := ToolCall{
		ID:   "call_1",
		Type: "function",
		Function: FunctionCall{
			Name:      "get_weather",
			Arguments: "not json",
		},
	}

	var args map[string]any
	err := call.DecodeArguments(&args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get_weather")
}

func TestNewJSONSchemaFormat(t *testing.T) {
	type answer struct {
		Topic   string `json:"topic" jsonschema:"description=Topic of the answer"`
		Summary string `json:"summary" jsonschema:"description=Short summary"`
	}

	format, err := NewJSONSchemaFormat[answer]("answer")
	require.NoError(t, err)

	assert.Equal(t, "json_schema", format.Type)
	require.NotNil(t, format.JSONSchema)
	assert.Equal(t, "answer", format.JSONSchema.Name)
	assert.True(t, format.JSONSchema.Strict)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(format.JSONSchema.Schema, &parsed))
	assert.Equal(t, "object", parsed["type"])
}

const modelListing = `{
	"data": [
		{
			"id": "openai/gpt-4.1",
			"name": "OpenAI: GPT-4.1",
			"created": 1744823457,
			"description": "Flagship model",
			"context_length": 1047576,
			"architecture": {
				"modality": "text+image->text",
				"input_modalities": ["text", "image"],
				"output_modalities": ["text"],
				"tokenizer": "GPT",
				"instruct_type": null
			},
			"pricing": {
				"prompt": "0.000002",
				"completion": "0.000008",
				"request": "0"
			},
			"top_provider": {
				"context_length": 1047576,
				"max_completion_tokens": 32768,
				"is_moderated": true
			},
			"per_request_limits": null,
			"supported_parameters": ["tools", "tool_choice", "structured_outputs"]
		},
		{
			"id": "mistralai/mistral-7b-instruct",
			"hugging_face_id": "mistralai/Mistral-7B-Instruct-v0.3",
			"name": "Mistral: Mistral 7B Instruct",
			"created": 1716768000,
			"description": "A high-performing 7.3B parameter model",
			"context_length": 32768,
			"architecture": {
				"modality": "text->text",
				"input_modalities": ["text"],
				"output_modalities": ["text"],
				"tokenizer": "Mistral",
				"instruct_type": "mistral"
			},
			"pricing": {
				"prompt": "0.000000028",
				"completion": "0.000000054"
			},
			"top_provider": {
				"context_length": 32768,
				"max_completion_tokens": 16384,
				"is_moderated": false
			},
			"supported_parameters": ["tools"]
		}
	]
}`

func TestModelList_Decode(t *testing.T) {
	var models ModelList
	require.NoError(t, json.Unmarshal([]byte(modelListing), &models))

	require.Len(t, models.Models, 2)

	gpt := models.Models[0]
	assert.Equal(t, "openai/gpt-4.1", gpt.ID)
	assert.Equal(t, int64(1047576), gpt.ContextLength)
	assert.Equal(t, "GPT", gpt.Architecture.Tokenizer)
	assert.True(t, gpt.TopProvider.IsModerated)
	assert.True(t, gpt.Supports("structured_outputs"))
	assert.False(t, gpt.Supports("logprobs"))

	mistral := models.Models[1]
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", mistral.HuggingFaceID)
	assert.Equal(t, "mistral", mistral.Architecture.InstructType)
	assert.False(t, mistral.Supports("structured_outputs"))
}

func TestPricing_String(t *testing.T) {
	p := Pricing{Prompt: "0.000002", Completion: "0.000008", Request: "0.01"}
	s := p.String()

	assert.Contains(t, s, "prompt=0.000002")
	assert.Contains(t, s, "completion=0.000008")
	assert.Contains(t, s, "request=0.01")
	assert.NotContains(t, s, "image")
}
