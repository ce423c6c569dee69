package codec

import (
	"encoding/binary"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

const leaseFixedSize = 8

// LEASE carries its metadata directly, without the 24-bit length prefix
// used by every other metadata-bearing frame kind — the trailing bytes
// are simply "the rest of the frame is metadata". This is a deliberate
// bug-for-bug compatibility choice (§9 Open Question), not an oversight:
// implementers must match it rather than "fix" it to use the shared
// payload-section helper.
func leaseByteLength(f *frame.Frame, enc *encoding.Set) int {
	return leaseFixedSize + enc.Metadata.ByteLength(f.Metadata)
}

func writeLease(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	binary.BigEndian.PutUint32(buf[offset:offset+4], f.TTL)
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:offset+4], f.RequestCount)
	offset += 4
	enc.Metadata.Encode(f.Metadata, buf, offset)
}

func readLease(buf []byte, offset, end int, streamID int32, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID != 0 {
		return nil, invariant("streamId", streamID, "LEASE frames must use stream id 0")
	}
	ttl := binary.BigEndian.Uint32(buf[offset : offset+4])
	offset += 4
	requestCount := binary.BigEndian.Uint32(buf[offset : offset+4])
	offset += 4
	var metadata []byte
	if offset != end {
		metadata = enc.Metadata.Decode(buf, offset, end)
	}
	return &frame.Frame{
		Type:         frame.TypeLease,
		StreamID:     uint32(streamID),
		Flags:        flags,
		TTL:          ttl,
		RequestCount: requestCount,
		Metadata:     metadata,
	}, nil
}
