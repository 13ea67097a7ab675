package mcp

import (
	"github.com/invopop/jsonschema"
)

// ReflectToolInputSchema derives a ToolInputSchema from the Go struct type
// A, so tool authors declare arguments once as a struct with json tags and
// jsonschema tags instead of hand-writing schema maps. Non-object types
// reflect as an empty object schema, matching the protocol's restriction
// of inputSchema to object shapes.
func ReflectToolInputSchema[A any]() ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference: true, // inline defs
		ExpandedStruct: true, // put struct at root
	}
	s := r.Reflect(new(A))

	if s == nil || s.Type != "object" {
		return ToolInputSchema{
			Type:       "object",
			Properties: map[string]SchemaProperty{},
		}
	}

	props := make(map[string]SchemaProperty)
	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			props[el.Key] = toSchemaProperty(el.Value)
		}
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}

	return ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// toSchemaProperty recursively maps a jsonschema node onto the simplified
// SchemaProperty shape this contract carries on the wire.
func toSchemaProperty(s *jsonschema.Schema) SchemaProperty {
	if s == nil {
		return SchemaProperty{}
	}

	out := SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
	}
	if len(s.Enum) > 0 {
		out.Enum = append(out.Enum, s.Enum...)
	}
	if s.Items != nil {
		items := toSchemaProperty(s.Items)
		out.Items = &items
	}
	if s.Properties != nil {
		out.Properties = make(map[string]SchemaProperty)
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			out.Properties[el.Key] = toSchemaProperty(el.Value)
		}
	}
	return out
}
