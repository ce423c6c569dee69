package codec

import (
	"rsocket-codec/byteutil"
	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// payloadSectionLength returns the encoded size of the metadata+data
// payload section for a frame whose METADATA flag is withMetadata, per
// §4.5: data.byteLength + 3 + metadata.byteLength when METADATA is set,
// data.byteLength alone when it is clear. An absent field contributes 0.
func payloadSectionLength(f *frame.Frame, enc *encoding.Set, withMetadata bool) int {
	n := enc.Data.ByteLength(f.Data)
	if withMetadata {
		n += byteutil.UINT24_SIZE + enc.Metadata.ByteLength(f.Metadata)
	}
	return n
}

// writePayloadSection writes the metadata length prefix (if withMetadata)
// followed by the metadata bytes, then the data bytes, starting at
// offset. Per §4.5: if the METADATA flag is set but Metadata is absent on
// emit, a zero-length block is written; if the flag is clear, Metadata is
// silently dropped regardless of whether it is populated.
func writePayloadSection(buf []byte, offset int, f *frame.Frame, enc *encoding.Set, withMetadata bool) int {
	if withMetadata {
		metaLen := enc.Metadata.ByteLength(f.Metadata)
		byteutil.WriteUint24(buf, uint32(metaLen), offset)
		offset += byteutil.UINT24_SIZE
		offset = enc.Metadata.Encode(f.Metadata, buf, offset)
	}
	return enc.Data.Encode(f.Data, buf, offset)
}

// readPayloadSection reads the metadata (if withMetadata) and data
// sections from buf[offset:end], returning them as the decoded
// (metadata, data) values. A nil metadata return means the METADATA flag
// was clear (field absent); a nil data return means no trailing bytes
// remained (field absent).
func readPayloadSection(buf []byte, offset, end int, enc *encoding.Set, withMetadata bool) (metadata, data []byte, newOffset int) {
	if withMetadata {
		metaLen := int(byteutil.ReadUint24(buf, offset))
		offset += byteutil.UINT24_SIZE
		metadata = enc.Metadata.Decode(buf, offset, offset+metaLen)
		offset += metaLen
	}
	if offset == end {
		data = nil
	} else {
		data = enc.Data.Decode(buf, offset, end)
	}
	return metadata, data, end
}
