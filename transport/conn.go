// Package transport provides the connection and session layer built on top
// of the frame codec and stream framer: a framed net.Conn wrapper, a
// keepalive- and lease-aware Session, and an interceptor chain for
// cross-cutting concerns around frame handling.
//
// Generalized from the teacher's single-file ClientTransport (multiplexed
// TCP connection with a recvLoop goroutine and a heartbeat ticker) into the
// RSocket frame model: instead of a fixed 14-byte header and a seq-keyed
// pending map, Conn speaks the 24-bit length-prefixed frame stream via
// package framer, and Session replaces the request/response pending map
// with stream-oriented dispatch to a caller-supplied handler.
package transport

import (
	"fmt"
	"io"
	"net"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
	"rsocket-codec/framer"
)

// readChunkSize is how much we attempt to read from the connection on each
// underlying Read call while accumulating a partial frame.
const readChunkSize = 4096

// Conn wraps a net.Conn and speaks whole frame.Frame values, maintaining the
// read-accumulation buffer that framer.DeserializeFrames requires a caller
// to drive in a loop (§4.6 of the frame stream format).
type Conn struct {
	raw   net.Conn
	enc   *encoding.Set
	queue []*frame.Frame // frames parsed from a previous Read that haven't been consumed yet
	buf   []byte         // unparsed tail bytes carried across reads
}

// NewConn wraps raw with the given encoder set. A nil set defaults to the
// Text standard set, matching package codec's convention.
func NewConn(raw net.Conn, enc *encoding.Set) *Conn {
	return &Conn{raw: raw, enc: enc}
}

// LocalAddr and RemoteAddr expose the underlying connection's endpoints.
func (c *Conn) LocalAddr() net.Addr  { return c.raw.LocalAddr() }
func (c *Conn) RemoteAddr() net.Addr { return c.raw.RemoteAddr() }

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.raw.Close() }

// ReadFrame returns the next complete frame from the connection, reading
// and accumulating bytes from raw as needed. It is not safe to call
// ReadFrame concurrently from multiple goroutines.
func (c *Conn) ReadFrame() (*frame.Frame, error) {
	for {
		if len(c.queue) > 0 {
			f := c.queue[0]
			c.queue = c.queue[1:]
			return f, nil
		}

		chunk := make([]byte, readChunkSize)
		n, err := c.raw.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
			frames, leftover, perr := framer.DeserializeFrames(c.buf, c.enc)
			c.buf = leftover
			if len(frames) > 0 {
				c.queue = frames
			}
			if perr != nil {
				return nil, fmt.Errorf("transport: malformed frame: %w", perr)
			}
		}
		if err != nil {
			if len(c.queue) > 0 {
				continue
			}
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("transport: read: %w", err)
		}
	}
}

// WriteFrame serializes f and writes it to the connection as a single
// length-prefixed frame. Safe to call concurrently only if the caller
// otherwise serializes writes (see Session, which owns a write mutex).
func (c *Conn) WriteFrame(f *frame.Frame) error {
	buf, err := framer.SerializeFrameWithLength(f, c.enc)
	if err != nil {
		return fmt.Errorf("transport: encode: %w", err)
	}
	_, err = c.raw.Write(buf)
	if err != nil {
		return fmt.Errorf("transport: write: %w", err)
	}
	return nil
}
