// Package wire frames Model Context Protocol messages as newline-delimited
// UTF-8 JSON over arbitrary byte streams. It is the thinnest possible layer
// between an io.Reader/io.Writer pair and the jsonrpc envelope model:
// Decoder yields one validated envelope per line, Encoder writes one
// message per line.
//
// The codec deliberately stops at framing and envelope validation. Method
// dispatch, response correlation and capability policy belong to the caller.
package wire
