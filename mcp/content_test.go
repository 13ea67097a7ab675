package mcp

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnmarshalContentVariants(t *testing.T) {
	c, err := UnmarshalContent(json.RawMessage(`{"type":"text","text":"hello"}`))
	if err != nil {
		t.Fatal(err)
	}
	text, ok := c.(TextContent)
	if !ok || text.Text != "hello" {
		t.Errorf("decoded %T %+v", c, c)
	}

	c, err = UnmarshalContent(json.RawMessage(`{"type":"image","data":"aGk=","mimeType":"image/png"}`))
	if err != nil {
		t.Fatal(err)
	}
	img, ok := c.(ImageContent)
	if !ok || img.MimeType != "image/png" {
		t.Errorf("decoded %T %+v", c, c)
	}
}

func TestUnmarshalContentClosedUnion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unknown discriminant", `{"type":"audio","data":"aGk="}`},
		{"missing discriminant", `{"text":"hello"}`},
		{"image without data", `{"type":"image","mimeType":"image/png"}`},
		{"not an object", `"hello"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalContent(json.RawMessage(tc.raw)); err == nil {
				t.Errorf("decode %s: expected failure", tc.raw)
			}
		})
	}
}

func TestContentMarshalCarriesTag(t *testing.T) {
	b, err := json.Marshal(TextContent{Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"text","text":"hi"}` {
		t.Errorf("marshal = %s", b)
	}

	round, err := UnmarshalContent(b)
	if err != nil {
		t.Fatal(err)
	}
	if round.(TextContent).Text != "hi" {
		t.Errorf("round trip lost text: %+v", round)
	}
}

func TestSamplingMessageDecode(t *testing.T) {
	var m SamplingMessage
	if err := json.Unmarshal([]byte(`{"role":"assistant","content":{"type":"text","text":"ok"}}`), &m); err != nil {
		t.Fatal(err)
	}
	if m.Role != RoleAssistant {
		t.Errorf("role = %q", m.Role)
	}

	err := json.Unmarshal([]byte(`{"role":"system","content":{"type":"text","text":"ok"}}`), &m)
	if err == nil || !strings.Contains(err.Error(), "invalid sampling role") {
		t.Errorf("err = %v, want role rejection", err)
	}
}

func TestResourceContentsOneOf(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"text only", `{"uri":"file:///a","text":"body"}`, false},
		{"empty text is still text", `{"uri":"file:///a","text":""}`, false},
		{"blob only", `{"uri":"file:///a","blob":"aGk="}`, false},
		{"both", `{"uri":"file:///a","text":"body","blob":"aGk="}`, true},
		{"neither", `{"uri":"file:///a"}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rc ResourceContents
			err := json.Unmarshal([]byte(tc.raw), &rc)
			if tc.wantErr != (err != nil) {
				t.Errorf("decode %s: err = %v, wantErr = %t", tc.raw, err, tc.wantErr)
			}
		})
	}

	if !NewTextResourceContents("file:///a", "text/plain", "body").IsText() {
		t.Error("text constructor should produce text contents")
	}
	blob := NewBlobResourceContents("file:///a", "application/octet-stream", "aGk=")
	if err := blob.Validate(); err != nil {
		t.Errorf("blob constructor invalid: %v", err)
	}
}
