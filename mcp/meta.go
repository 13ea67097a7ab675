package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ProgressToken correlates out-of-band progress notifications with the
// request that supplied it. Like a request id it is a string or a number;
// unlike a request id, a token the receiver does not recognize is tolerated,
// never a protocol error.
type ProgressToken struct {
	value any
}

// NewStringToken builds a ProgressToken holding a string.
func NewStringToken(s string) *ProgressToken {
	return &ProgressToken{value: s}
}

// NewIntToken builds a ProgressToken holding an integer.
func NewIntToken(n int64) *ProgressToken {
	return &ProgressToken{value: n}
}

// Value returns the underlying string, int64 or float64, or nil when unset.
func (t *ProgressToken) Value() any {
	if t == nil {
		return nil
	}
	return t.value
}

// String renders the token for logging and map keys.
func (t *ProgressToken) String() string {
	if t == nil || t.value == nil {
		return ""
	}
	switch v := t.value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		panic("mcp: ProgressToken holds unsupported type")
	}
}

// MarshalJSON implements json.Marshaler. The value receiver keeps the
// codec reachable when the token is held by value, as in
// ProgressNotification.
func (t ProgressToken) MarshalJSON() ([]byte, error) {
	if t.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ProgressToken) UnmarshalJSON(data []byte) error {
	// Unmarshal into *float64 treats null as a no-op, so catch it first.
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.New("progress token must be a string or number, got null")
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num == float64(int64(num)) {
			t.value = int64(num)
		} else {
			t.value = num
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		t.value = str
		return nil
	}

	return fmt.Errorf("progress token must be a string or number, got %s", string(data))
}

// Meta models the reserved _meta key. On requests it may carry a
// progressToken; everything else is opaque metadata the protocol reserves
// for implementations. Unrecognized keys survive a round trip via Extra.
type Meta struct {
	ProgressToken *ProgressToken
	Extra         map[string]any
}

// MarshalJSON flattens the known token and the extra keys back into one
// object.
func (m Meta) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(m.Extra)+1)
	for k, v := range m.Extra {
		raw[k] = v
	}
	if m.ProgressToken != nil {
		raw["progressToken"] = m.ProgressToken
	}
	return json.Marshal(raw)
}

// UnmarshalJSON extracts progressToken and keeps every other key verbatim.
func (m *Meta) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("_meta must be an object: %w", err)
	}

	if tok, ok := raw["progressToken"]; ok {
		pt := &ProgressToken{}
		if err := pt.UnmarshalJSON(tok); err != nil {
			return err
		}
		m.ProgressToken = pt
		delete(raw, "progressToken")
	}

	if len(raw) > 0 {
		m.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			m.Extra[k] = val
		}
	}
	return nil
}
