// Package codec implements the per-frame-type serializer and
// deserializer for RSocket frames: the 6-byte header, the eleven
// per-variant body layouts, and the metadata/data payload section shared
// by the frame kinds that carry both. It is a pure function of its
// inputs — no I/O, no goroutines, no retained state (§5).
package codec

import (
	"encoding/binary"

	"rsocket-codec/frame"
)

// FRAME_HEADER_SIZE is the fixed size, in bytes, of every frame's header:
// a 4-byte signed stream id followed by a 2-byte packed type+flags word.
const FRAME_HEADER_SIZE = 6

// writeHeader packs f.StreamID, f.Type and f.Flags into buf[offset:offset+6].
func writeHeader(buf []byte, offset int, f *frame.Frame) {
	binary.BigEndian.PutUint32(buf[offset:offset+4], f.StreamID)
	word := uint16(f.Type)<<frame.FRAME_TYPE_OFFSET | uint16(f.Flags)&frame.FLAGS_MASK
	binary.BigEndian.PutUint16(buf[offset+4:offset+6], word)
}

// readHeader unpacks the streamId, frame type and flags from
// buf[offset:offset+6]. The stream id is read as a signed int32 so a
// negative value — which is invalid on the wire — can be rejected by
// the caller instead of silently wrapping into a large unsigned value.
func readHeader(buf []byte, offset int) (streamID int32, typ frame.Type, flags frame.Flags) {
	streamID = int32(binary.BigEndian.Uint32(buf[offset : offset+4]))
	word := binary.BigEndian.Uint16(buf[offset+4 : offset+6])
	typ = frame.Type(word >> frame.FRAME_TYPE_OFFSET)
	flags = frame.Flags(word & frame.FLAGS_MASK)
	return
}
