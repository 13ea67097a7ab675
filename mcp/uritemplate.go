package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/yosida95/uritemplate/v3"
)

// URITemplate is an RFC 6570 URI template, parsed and validated at decode
// time so a ResourceTemplate listing never carries an unexpandable pattern.
type URITemplate struct {
	tmpl *uritemplate.Template
}

// ParseURITemplate validates and compiles the template string.
func ParseURITemplate(raw string) (URITemplate, error) {
	tmpl, err := uritemplate.New(raw)
	if err != nil {
		return URITemplate{}, fmt.Errorf("invalid uri template %q: %w", raw, err)
	}
	return URITemplate{tmpl: tmpl}, nil
}

// MustURITemplate is ParseURITemplate for templates known at compile time.
func MustURITemplate(raw string) URITemplate {
	t, err := ParseURITemplate(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Raw returns the template source string.
func (t URITemplate) Raw() string {
	if t.tmpl == nil {
		return ""
	}
	return t.tmpl.Raw()
}

// Expand substitutes the given variables into the template.
func (t URITemplate) Expand(vars map[string]string) (string, error) {
	if t.tmpl == nil {
		return "", fmt.Errorf("empty uri template")
	}
	values := uritemplate.Values{}
	for k, v := range vars {
		values.Set(k, uritemplate.String(v))
	}
	uri, err := t.tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expand uri template %q: %w", t.Raw(), err)
	}
	return uri, nil
}

// MarshalJSON emits the raw template string.
func (t URITemplate) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Raw())
}

// UnmarshalJSON parses and validates the template string.
func (t *URITemplate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseURITemplate(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
