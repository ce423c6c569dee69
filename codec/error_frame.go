package codec

import (
	"encoding/binary"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

const errorFixedSize = 4

func errorByteLength(f *frame.Frame, enc *encoding.Set) int {
	return errorFixedSize + enc.Message.ByteLength(f.Message)
}

func writeError(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	binary.BigEndian.PutUint32(buf[offset:offset+4], f.Code)
	offset += 4
	enc.Message.Encode(f.Message, buf, offset)
}

func readError(buf []byte, offset, end int, streamID int32, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID == 0 {
		return nil, invariant("streamId", streamID, "ERROR frames require a stream id > 0")
	}
	code := binary.BigEndian.Uint32(buf[offset : offset+4])
	offset += 4
	if code > frame.MaxCode {
		return nil, invariant("code", code, "must be in [0, MAX_CODE]")
	}
	message := enc.Message.Decode(buf, offset, end)
	return &frame.Frame{
		Type:     frame.TypeError,
		StreamID: uint32(streamID),
		Flags:    flags,
		Code:     code,
		Message:  message,
	}, nil
}
