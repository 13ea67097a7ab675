// Package jsonrpc implements the JSON-RPC 2.0 envelope model used by the
// Model Context Protocol: the four wire shapes (request, notification,
// success response, error response), the string-or-number request id, and
// the protocol error taxonomy.
//
// The package is deliberately transport-agnostic and stateless. Decoding an
// AnyMessage classifies an arbitrary JSON value as exactly one envelope
// variant or fails; it never resolves an ambiguous message to one branch.
// Correlating responses to requests, enforcing id uniqueness, timeouts and
// retries all belong to the dispatcher consuming these types.
//
// Params and result payloads stay json.RawMessage at this layer so that
// keys the local implementation does not understand survive a round trip
// untouched. Narrowing params into concrete shapes is the job of the method
// catalog in the mcp package.
package jsonrpc
