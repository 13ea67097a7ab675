package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/ucarion/jcs"
)

// Canonical encodes v as RFC 8785 canonical JSON: identical content yields
// identical bytes regardless of struct field order or map iteration. Useful
// for hashing, deduplication and comparing messages after a round trip.
func Canonical(v any) ([]byte, error) {
	// Marshal first to apply any custom encoders, then decode into a plain
	// value tree that jcs knows how to order.
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal for canonicalization: %w", err)
	}

	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, fmt.Errorf("reparse for canonicalization: %w", err)
	}

	s, err := jcs.Format(tree)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return []byte(s), nil
}
