package codec

import (
	"encoding/binary"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

const keepaliveFixedSize = 8

// keepaliveByteLength ignores the METADATA flag entirely — KEEPALIVE has
// no metadata section regardless of flags (§3.1/§4.4).
func keepaliveByteLength(f *frame.Frame, enc *encoding.Set) int {
	return keepaliveFixedSize + enc.Data.ByteLength(f.Data)
}

func writeKeepalive(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	binary.BigEndian.PutUint64(buf[offset:offset+8], f.LastReceivedPosition)
	offset += 8
	enc.Data.Encode(f.Data, buf, offset)
}

func readKeepalive(buf []byte, offset, end int, streamID int32, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID != 0 {
		return nil, invariant("streamId", streamID, "KEEPALIVE frames must use stream id 0")
	}
	pos := binary.BigEndian.Uint64(buf[offset : offset+8])
	offset += 8
	var data []byte
	if offset != end {
		data = enc.Data.Decode(buf, offset, end)
	}
	return &frame.Frame{
		Type:                 frame.TypeKeepalive,
		StreamID:             uint32(streamID),
		Flags:                flags,
		LastReceivedPosition: pos,
		Data:                 data,
	}, nil
}
