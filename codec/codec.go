// Package codec implements the per-frame-type serializer and
// deserializer for RSocket frames: the 6-byte header, the eleven
// per-variant body layouts, and the metadata/data payload section shared
// by the frame kinds that carry both. It is a pure function of its
// inputs — no I/O, no goroutines, no retained state (§5).
package codec

import (
	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// byteLength returns the number of bytes EmitFrame will write for f,
// excluding the 6-byte header, dispatching on f.Type.
func byteLength(f *frame.Frame, enc *encoding.Set) (int, error) {
	switch f.Type {
	case frame.TypeSetup:
		return setupByteLength(f, enc), nil
	case frame.TypeError:
		return errorByteLength(f, enc), nil
	case frame.TypeKeepalive:
		return keepaliveByteLength(f, enc), nil
	case frame.TypeLease:
		return leaseByteLength(f, enc), nil
	case frame.TypeRequestFNF, frame.TypeRequestResponse, frame.TypePayload:
		return payloadOnlyByteLength(f, enc), nil
	case frame.TypeRequestStream, frame.TypeRequestChannel:
		return requestWithNByteLength(f, enc), nil
	case frame.TypeRequestN:
		return requestNByteLength(), nil
	case frame.TypeCancel:
		return 0, nil
	default:
		return 0, invariant("type", f.Type, "unsupported frame type")
	}
}

func writeBody(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	switch f.Type {
	case frame.TypeSetup:
		writeSetup(buf, offset, f, enc)
	case frame.TypeError:
		writeError(buf, offset, f, enc)
	case frame.TypeKeepalive:
		writeKeepalive(buf, offset, f, enc)
	case frame.TypeLease:
		writeLease(buf, offset, f, enc)
	case frame.TypeRequestFNF, frame.TypeRequestResponse, frame.TypePayload:
		writePayloadOnly(buf, offset, f, enc)
	case frame.TypeRequestStream, frame.TypeRequestChannel:
		writeRequestWithN(buf, offset, f, enc)
	case frame.TypeRequestN:
		writeRequestN(buf, offset, f)
	case frame.TypeCancel:
		// header only
	}
}

// EmitFrame serializes f into a freshly allocated buffer containing the
// 6-byte header followed by the per-type body, with no length prefix
// (§6.2). enc selects the field encoders to use; nil defaults to the
// Text set.
func EmitFrame(f *frame.Frame, enc *encoding.Set) (buf []byte, err error) {
	enc = enc.OrDefault()

	if err := validateEmit(f); err != nil {
		return nil, err
	}

	bodyLen, err := byteLength(f, enc)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			mismatch, ok := r.(*encoding.Mismatch)
			if !ok {
				panic(r)
			}
			buf = nil
			err = &frame.EncoderMismatch{Field: mismatch.Field, Reason: mismatch.Reason}
		}
	}()

	buf = make([]byte, FRAME_HEADER_SIZE+bodyLen)
	writeHeader(buf, 0, f)
	writeBody(buf, FRAME_HEADER_SIZE, f, enc)
	return buf, nil
}

// ParseFrame decodes a single complete frame from buf, which the caller
// must have already stripped of any length prefix (§6.1). enc must match
// the Set used to emit the frame; nil defaults to the Text set.
//
// Passing a truncated buffer is undefined behavior per §7 — the caller
// is contractually required to supply exactly one complete frame, which
// is what the stream framer (package framer) guarantees.
func ParseFrame(buf []byte, enc *encoding.Set) (*frame.Frame, error) {
	enc = enc.OrDefault()

	streamID, typ, flags := readHeader(buf, 0)
	if streamID < 0 {
		return nil, invariant("streamId", streamID, "must not be negative")
	}
	offset := FRAME_HEADER_SIZE
	end := len(buf)

	switch typ {
	case frame.TypeSetup:
		return readSetup(buf, offset, end, streamID, flags, enc)
	case frame.TypeError:
		return readError(buf, offset, end, streamID, flags, enc)
	case frame.TypeKeepalive:
		return readKeepalive(buf, offset, end, streamID, flags, enc)
	case frame.TypeLease:
		return readLease(buf, offset, end, streamID, flags, enc)
	case frame.TypeRequestFNF, frame.TypeRequestResponse, frame.TypePayload:
		return readPayloadOnly(buf, offset, end, streamID, typ, flags, enc)
	case frame.TypeRequestStream, frame.TypeRequestChannel:
		return readRequestWithN(buf, offset, end, streamID, typ, flags, enc)
	case frame.TypeRequestN:
		return readRequestN(buf, offset, streamID, flags)
	case frame.TypeCancel:
		return readCancel(streamID, flags)
	default:
		return nil, invariant("type", typ, "unsupported frame type")
	}
}
