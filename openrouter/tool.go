package openrouter

import (
	"github.com/sraesch/go-ai/schema"
)

// Tool describes a callable function the model may request, with its
// parameter shape carried by the type parameter P. The caller executes
// the function out-of-band and feeds the result back as a tool message.
//
// Example:
//
//	type WeatherParameter struct {
//	    Latitude  float64 `json:"latitude" jsonschema:"description=The latitude of the location"`
//	    Longitude float64 `json:"longitude" jsonschema:"description=The longitude of the location"`
//	}
//
//	tool := openrouter.NewTool[WeatherParameter](
//	    "get_weather",
//	    "Get current temperature for a given location.",
//	)
//	req.AddTool(tool.MustJSON())
type Tool[P any] struct {
	name        string
	description string
}

// NewTool creates a tool descriptor with the given name and description.
func NewTool[P any](name, description string) Tool[P] {
	return Tool[P]{name: name, description: description}
}

// Name returns the tool's name as seen by the model.
func (t Tool[P]) Name() string {
	return t.name
}

// Description returns the tool's description for the model.
func (t Tool[P]) Description() string {
	return t.description
}

// JSON converts the descriptor into its wire form, generating the
// parameter schema from P. Strict mode is always enabled.
func (t Tool[P]) JSON() (JSONTool, error) {
	parameters, err := schema.Generate[P]()
	if err != nil {
		return JSONTool{}, err
	}

	return JSONTool{
		Type: "function",
		Function: FunctionInfo{
			Name:        t.name,
			Description: t.description,
			Strict:      true,
			Parameters:  parameters,
		},
	}, nil
}

// MustJSON is like JSON but panics on error. Useful for package-level
// tool definitions.
func (t Tool[P]) MustJSON() JSONTool {
	tool, err := t.JSON()
	if err != nil {
		panic(err)
	}
	return tool
}
