// Package framer implements the RSocket length-prefix stream framing: it
// turns a continuously-accumulating byte buffer from a transport into
// zero or more complete frames plus whatever unparsed tail remains,
// and the reverse — wrapping a single frame in its 24-bit length prefix
// for emission.
//
// Like package codec, the framer is a pure function of its input buffer.
// It never reads from or blocks on I/O; the caller (see package
// transport for a reference implementation) is responsible for feeding
// it bytes as they arrive and re-submitting the returned leftover
// alongside the next chunk.
package framer

import (
	"rsocket-codec/byteutil"
	"rsocket-codec/codec"
	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// SerializeFrameWithLength encodes f and prefixes it with its 24-bit
// big-endian byte length (§6.2, §4.6).
func SerializeFrameWithLength(f *frame.Frame, enc *encoding.Set) ([]byte, error) {
	body, err := codec.EmitFrame(f, enc)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, byteutil.UINT24_SIZE+len(body))
	byteutil.WriteUint24(buf, uint32(len(body)), 0)
	copy(buf[byteutil.UINT24_SIZE:], body)
	return buf, nil
}

// DeserializeFrameWithLength reads the leading 24-bit length and decodes
// the frame that follows it (§6.1, §4.6). buf must contain exactly one
// length-prefixed frame; use DeserializeFrames to parse a buffer that may
// contain many frames and a partial tail.
func DeserializeFrameWithLength(buf []byte, enc *encoding.Set) (*frame.Frame, error) {
	n := int(byteutil.ReadUint24(buf, 0))
	return codec.ParseFrame(buf[byteutil.UINT24_SIZE:byteutil.UINT24_SIZE+n], enc)
}

// DeserializeFrames iteratively peels complete length-prefixed frames off
// the front of buf. It returns every frame it could fully parse and the
// remaining bytes that must be prepended to the next chunk the caller
// receives (§4.6).
//
// A declared frame length that doesn't yet fully fit in buf is not an
// error — it means the frame hasn't finished arriving, and the
// unconsumed bytes (length prefix included) are returned as leftover
// untouched. A malformed *complete* frame — one whose body fails codec
// validation — is fatal and aborts the loop immediately, per §4.7: the
// frames parsed so far are still returned, but the error takes
// precedence and the caller should treat the whole read as failed.
func DeserializeFrames(buf []byte, enc *encoding.Set) ([]*frame.Frame, []byte, error) {
	var frames []*frame.Frame
	offset := 0
	limit := len(buf)

	for {
		if limit-offset < byteutil.UINT24_SIZE {
			break
		}
		n := int(byteutil.ReadUint24(buf, offset))
		if offset+byteutil.UINT24_SIZE+n > limit {
			break
		}
		bodyStart := offset + byteutil.UINT24_SIZE
		bodyEnd := bodyStart + n
		f, err := codec.ParseFrame(buf[bodyStart:bodyEnd], enc)
		if err != nil {
			return frames, buf[offset:], err
		}
		frames = append(frames, f)
		offset = bodyEnd
	}

	return frames, buf[offset:], nil
}
