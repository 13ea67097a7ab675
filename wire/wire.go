package wire

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/contextwire/mcp-wire-go/jsonrpc"
)

// DefaultMaxFrameSize bounds a single newline-delimited frame. Frames are
// whole JSON-RPC messages; anything larger than this is far more likely a
// framing bug than a legitimate message.
const DefaultMaxFrameSize = 4 * 1024 * 1024

// ErrFrameTooLarge reports a frame exceeding the decoder's limit.
var ErrFrameTooLarge = errors.New("wire: frame exceeds maximum size")

// Decoder reads newline-delimited JSON-RPC messages from a stream.
type Decoder struct {
	s       *bufio.Scanner
	log     *slog.Logger
	maxSize int
	sawData bool
}

// DecoderOption customizes a Decoder.
type DecoderOption func(*Decoder)

// WithMaxFrameSize overrides the per-frame size limit.
func WithMaxFrameSize(n int) DecoderOption {
	return func(d *Decoder) {
		if n > 0 {
			d.maxSize = n
		}
	}
}

// WithLogger overrides the logger used for discarded frames.
func WithLogger(l *slog.Logger) DecoderOption {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDecoder wraps r in a frame decoder.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		log:     slog.Default(),
		maxSize: DefaultMaxFrameSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.s = bufio.NewScanner(r)
	// The initial buffer must not exceed the limit: the scanner only
	// reports ErrTooLong once it needs to grow past maxSize.
	d.s.Buffer(make([]byte, 0, min(64*1024, d.maxSize)), d.maxSize)
	return d
}

// Next returns the next validated envelope. It returns io.EOF when the
// stream ends cleanly at a frame boundary, and a jsonrpc.Error with
// ErrorCodeConnectionClosed when the stream dies mid-conversation. A frame
// that is not valid JSON or not a valid envelope yields a jsonrpc.Error
// with ErrorCodeParseError or ErrorCodeInvalidRequest respectively; the
// decoder stays usable, the caller decides whether to answer or hang up.
func (d *Decoder) Next() (*jsonrpc.AnyMessage, error) {
	for {
		if !d.s.Scan() {
			if err := d.s.Err(); err != nil {
				if errors.Is(err, bufio.ErrTooLong) {
					return nil, ErrFrameTooLarge
				}
				if d.sawData {
					closed := jsonrpc.NewError(jsonrpc.ErrorCodeConnectionClosed, "connection closed: "+err.Error())
					return nil, closed
				}
				return nil, fmt.Errorf("wire: read frame: %w", err)
			}
			return nil, io.EOF
		}

		line := bytes.TrimSpace(d.s.Bytes())
		if len(line) == 0 {
			continue
		}
		d.sawData = true

		if !json.Valid(line) {
			d.log.Debug("wire: discarding frame", slog.String("err", "invalid JSON"))
			return nil, jsonrpc.NewError(jsonrpc.ErrorCodeParseError, "frame is not valid JSON")
		}

		var msg jsonrpc.AnyMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			d.log.Debug("wire: discarding frame", slog.String("err", err.Error()))
			return nil, jsonrpc.NewError(jsonrpc.ErrorCodeInvalidRequest, err.Error())
		}
		return &msg, nil
	}
}

// Encoder writes one JSON-RPC message per line.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder wraps w in a frame encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode serializes msg, appends the frame delimiter and flushes, so a
// message is either fully on the wire or not at all.
func (e *Encoder) Encode(msg any) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("wire: marshal frame: %w", err)
	}
	if _, err := e.w.Write(b); err != nil {
		return fmt.Errorf("wire: write frame: %w", err)
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("wire: write frame delimiter: %w", err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("wire: flush frame: %w", err)
	}
	return nil
}
