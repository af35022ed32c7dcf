package openrouter

import "encoding/json"

// ChatRequest accumulates the state of one chat-completion exchange:
// the model, the ordered message sequence, and optionally tools, a tool
// choice, and a response format. A ChatRequest is mutated across the
// turns of a tool-calling conversation and is not safe for concurrent
// use; create one per logical conversation.
type ChatRequest struct {
	model          string
	messages       []Message
	tools          []JSONTool
	toolChoice     *ToolChoice
	responseFormat *ResponseFormat
}

// NewChatRequest starts a request for the given model with the initial
// messages, zero tools, no response format, and no tool choice.
func NewChatRequest(model string, messages []Message) *ChatRequest {
	return &ChatRequest{
		model:    model,
		messages: messages,
	}
}

// Model returns the model identifier of the request.
func (r *ChatRequest) Model() string {
	return r.model
}

// Messages returns the ordered message sequence.
func (r *ChatRequest) Messages() []Message {
	return r.messages
}

// Tools returns the tools added so far.
func (r *ChatRequest) Tools() []JSONTool {
	return r.tools
}

// AddMessage appends a message to the conversation. The caller is
// responsible for conversation coherence, e.g. appending the
// assistant's tool-call message before the corresponding tool reply.
func (r *ChatRequest) AddMessage(msg Message) {
	r.messages = append(r.messages, msg)
}

// AddTool appends a tool definition. Duplicate names are not rejected;
// the API reports them with a 400 response.
func (r *ChatRequest) AddTool(tool JSONTool) {
	r.tools = append(r.tools, tool)
}

// SetToolChoice stores the tool-choice policy. A function choice is
// validated against the already-added tools, so tools must be added
// before a function tool-choice that references them; a missing
// function yields a ToolNotFoundError before any network call.
func (r *ChatRequest) SetToolChoice(choice ToolChoice) error {
	if name, ok := choice.FunctionName(); ok {
		found := false
		for _, tool := range r.tools {
			if tool.Function.Name == name {
				found = true
				break
			}
		}
		if !found {
			return &ToolNotFoundError{Name: name}
		}
	}

	r.toolChoice = &choice
	return nil
}

// SetResponseFormat replaces any previously set response format.
func (r *ChatRequest) SetResponseFormat(format ResponseFormat) {
	r.responseFormat = &format
}

// chatRequestEnvelope is the wire form of a request. Optional fields
// are omitted entirely when unset rather than sent as null or empty,
// to match provider expectations.
type chatRequestEnvelope struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Tools          []JSONTool      `json:"tools,omitempty"`
	ToolChoice     *ToolChoice     `json:"tool_choice,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// MarshalJSON serializes the request into the wire envelope.
func (r *ChatRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(chatRequestEnvelope{
		Model:          r.model,
		Messages:       r.messages,
		Tools:          r.tools,
		ToolChoice:     r.toolChoice,
		ResponseFormat: r.responseFormat,
	})
}
