package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// RequestID is a JSON-RPC request id: a string or a number. Uniqueness among
// outstanding requests on a connection is a caller invariant enforced by the
// dispatcher, not by this type.
type RequestID struct {
	value any
}

// NewStringID builds a RequestID holding a string value.
func NewStringID(s string) *RequestID {
	return &RequestID{value: s}
}

// NewIntID builds a RequestID holding an integer value.
func NewIntID(n int64) *RequestID {
	return &RequestID{value: n}
}

// Value returns the underlying string, int64 or float64, or nil for an
// unset id.
func (id *RequestID) Value() any {
	if id == nil {
		return nil
	}
	return id.value
}

// IsNil reports whether the id carries no value.
func (id *RequestID) IsNil() bool {
	return id == nil || id.value == nil
}

// String renders the id for logging and map keys. Distinct ids of the same
// kind render distinctly; the empty string means unset.
func (id *RequestID) String() string {
	if id.IsNil() {
		return ""
	}
	switch v := id.value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		panic("jsonrpc: RequestID holds unsupported type")
	}
}

// Equal reports whether two ids hold the same value.
func (id *RequestID) Equal(other *RequestID) bool {
	if id.IsNil() || other.IsNil() {
		return id.IsNil() && other.IsNil()
	}
	return id.value == other.value
}

// MarshalJSON implements json.Marshaler.
func (id *RequestID) MarshalJSON() ([]byte, error) {
	if id.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler. Integral numbers decode as
// int64 so they re-encode without a fractional part.
func (id *RequestID) UnmarshalJSON(data []byte) error {
	// Unmarshal into *float64 treats null as a no-op, so catch it first.
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.New("request id must be a string or number, got null")
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num == float64(int64(num)) {
			id.value = int64(num)
		} else {
			id.value = num
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		id.value = str
		return nil
	}

	return fmt.Errorf("request id must be a string or number, got %s", string(data))
}
