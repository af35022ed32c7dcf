// Package schema provides JSON Schema generation from Go types.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Reflector is configured for structured-output and tool-parameter schemas.
// DoNotReference inlines all definitions to avoid $ref, which strict mode
// cannot resolve. The reflector defaults already match what the API expects:
// every field without omitempty is required, and object schemas carry
// additionalProperties:false.
var Reflector = &jsonschema.Reflector{
	DoNotReference: true,
}

// Generate creates a JSON Schema from a Go type.
// The type should be a struct with json and jsonschema tags.
//
// Example:
//
//	type WeatherParameter struct {
//	    Latitude  float64 `json:"latitude" jsonschema:"description=The latitude of the location"`
//	    Longitude float64 `json:"longitude" jsonschema:"description=The longitude of the location"`
//	}
//
//	schema, err := schema.Generate[WeatherParameter]()
func Generate[T any]() (json.RawMessage, error) {
	var zero T
	schema := Reflector.Reflect(&zero)
	return json.Marshal(schema)
}

// GenerateFromValue creates a JSON Schema from a value.
// This is useful when you have a value instead of a type.
func GenerateFromValue(v any) (json.RawMessage, error) {
	schema := Reflector.Reflect(v)
	return json.Marshal(schema)
}

// MustGenerate is like Generate but panics on error.
// Useful for package-level schema definitions.
func MustGenerate[T any]() json.RawMessage {
	schema, err := Generate[T]()
	if err != nil {
		panic(err)
	}
	return schema
}
