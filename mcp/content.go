package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Content is a closed tagged union over text and image message content.
// The wire discriminant is the "type" field, which UnmarshalContent checks
// before reading anything else.
type Content interface {
	contentType() string
}

// TextContent is a plain-text content block.
type TextContent struct {
	Text string `json:"text"`
}

func (TextContent) contentType() string { return "text" }

// MarshalJSON emits the tagged wire form {"type":"text",...}.
func (c TextContent) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	return json.Marshal(wire{Type: "text", Text: c.Text})
}

// ImageContent is a base64-encoded image content block.
type ImageContent struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

func (ImageContent) contentType() string { return "image" }

// MarshalJSON emits the tagged wire form {"type":"image",...}.
func (c ImageContent) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type     string `json:"type"`
		Data     string `json:"data"`
		MimeType string `json:"mimeType"`
	}
	return json.Marshal(wire{Type: "image", Data: c.Data, MimeType: c.MimeType})
}

// UnmarshalContent decodes one content block, resolving the variant from
// the mandatory "type" discriminant. Unknown discriminants fail: the union
// is closed.
func UnmarshalContent(raw json.RawMessage) (Content, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("content block is not an object: %w", err)
	}

	switch tag.Type {
	case "text":
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("text content: %w", err)
		}
		return c, nil
	case "image":
		var c ImageContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("image content: %w", err)
		}
		if c.Data == "" || c.MimeType == "" {
			return nil, errors.New("image content requires data and mimeType")
		}
		return c, nil
	case "":
		return nil, errors.New("content block missing type discriminant")
	default:
		return nil, fmt.Errorf("unknown content type %q", tag.Type)
	}
}

// SamplingMessage is one turn of model input or output.
type SamplingMessage struct {
	Role    Role    `json:"role"`
	Content Content `json:"content"`
}

// UnmarshalJSON resolves the content union and checks the role enum.
func (m *SamplingMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    Role            `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !IsValidRole(raw.Role) {
		return fmt.Errorf("invalid sampling role %q", raw.Role)
	}
	content, err := UnmarshalContent(raw.Content)
	if err != nil {
		return err
	}
	m.Role = raw.Role
	m.Content = content
	return nil
}

// ResourceContents is the value of a resource read: textual or binary,
// discriminated by which of text/blob is present. Exactly one must be set.
type ResourceContents struct {
	URI      string  `json:"uri"`
	MimeType string  `json:"mimeType,omitzero"`
	Text     *string `json:"text,omitempty"`
	Blob     *string `json:"blob,omitempty"`
}

// NewTextResourceContents builds textual resource contents.
func NewTextResourceContents(uri, mimeType, text string) ResourceContents {
	return ResourceContents{URI: uri, MimeType: mimeType, Text: &text}
}

// NewBlobResourceContents builds binary resource contents. Blob must be
// base64-encoded.
func NewBlobResourceContents(uri, mimeType, blob string) ResourceContents {
	return ResourceContents{URI: uri, MimeType: mimeType, Blob: &blob}
}

// IsText reports whether the contents are textual.
func (rc ResourceContents) IsText() bool { return rc.Text != nil }

// Validate enforces the one-of invariant: text or blob, never both or
// neither.
func (rc ResourceContents) Validate() error {
	if (rc.Text != nil) == (rc.Blob != nil) {
		return errors.New("resource contents require exactly one of text or blob")
	}
	return nil
}

// UnmarshalJSON decodes and applies the one-of check so malformed contents
// never reach application code.
func (rc *ResourceContents) UnmarshalJSON(data []byte) error {
	type plain ResourceContents
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*rc = ResourceContents(decoded)
	return rc.Validate()
}
