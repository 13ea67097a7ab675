// Package mcp defines the Model Context Protocol message contract: the
// domain entities (resources, prompts, tools, content), the per-method
// request/result shapes, the capability model negotiated at initialize time,
// and the method catalog that narrows raw JSON-RPC params into those shapes.
//
// The package carries no transport or dispatch logic. Transports frame
// bytes into jsonrpc envelopes; dispatchers correlate responses, apply
// timeouts and decide how to answer failures. Everything here is a pure
// function of its input and safe for concurrent use.
//
// # Method Names
//
// JSON-RPC method and notification names are enumerated as Method constants
// (e.g. ResourcesListMethod). The catalog keyed by those constants knows
// each method's params shape, result shape and which side of the connection
// may originate it.
//
// # Forward compatibility
//
// Params, results, _meta and capability objects are open maps on the wire.
// Decoding never fails on keys it does not recognize, and the Meta and
// capability types keep unrecognized keys in side maps so a round trip
// drops nothing the application didn't understand.
package mcp
