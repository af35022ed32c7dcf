package openrouter

import (
	"encoding/json"
	"fmt"
)

// ToolChoice controls whether and which tool the model must invoke.
// Use ToolChoiceAuto, ToolChoiceRequired, or ToolChoiceFunction.
type ToolChoice struct {
	kind     string
	function string
}

// ToolChoiceAuto lets the model decide whether to call a tool.
var ToolChoiceAuto = ToolChoice{kind: "auto"}

// ToolChoiceRequired forces the model to call at least one tool.
var ToolChoiceRequired = ToolChoice{kind: "required"}

// ToolChoiceFunction forces the model to call the named function. The
// function must already be present in the request's tool list when the
// choice is set.
func ToolChoiceFunction(name string) ToolChoice {
	return ToolChoice{kind: "function", function: name}
}

// FunctionName returns the forced function name and true when the
// choice is the function variant.
func (tc ToolChoice) FunctionName() (string, bool) {
	return tc.function, tc.kind == "function"
}

// MarshalJSON emits "auto", "required", or the function selector object.
func (tc ToolChoice) MarshalJSON() ([]byte, error) {
	switch tc.kind {
	case "auto", "required":
		return json.Marshal(tc.kind)
	case "function":
		return json.Marshal(map[string]any{
			"type": "function",
			"function": map[string]string{
				"name": tc.function,
			},
		})
	default:
		return nil, fmt.Errorf("invalid tool choice %q", tc.kind)
	}
}
