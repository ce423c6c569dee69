package codec

import (
	"encoding/binary"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// setupFixedSize is the 16 fixed bytes after the header: majorVersion(2)
// + minorVersion(2) + keepAlive(4) + lifetime(4) + resumeTokenLen(2) +
// metadataMimeLen(1) + dataMimeLen(1).
const setupFixedSize = 2 + 2 + 4 + 4 + 2 + 1 + 1

func setupByteLength(f *frame.Frame, enc *encoding.Set) int {
	n := setupFixedSize
	n += enc.ResumeToken.ByteLength(f.ResumeToken)
	n += enc.MetadataMimeType.ByteLength(f.MetadataMimeType)
	n += enc.DataMimeType.ByteLength(f.DataMimeType)
	n += payloadSectionLength(f, enc, f.Flags.Has(frame.FlagMetadata))
	return n
}

func writeSetup(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	binary.BigEndian.PutUint16(buf[offset:offset+2], f.MajorVersion)
	offset += 2
	binary.BigEndian.PutUint16(buf[offset:offset+2], f.MinorVersion)
	offset += 2
	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(f.KeepAlive))
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(f.Lifetime))
	offset += 4

	// Omitted resume token (nil) is written as a zero-length token, §4.4.
	tokenLen := enc.ResumeToken.ByteLength(f.ResumeToken)
	binary.BigEndian.PutUint16(buf[offset:offset+2], uint16(tokenLen))
	offset += 2
	offset = enc.ResumeToken.Encode(f.ResumeToken, buf, offset)

	// An absent mime string is written as a zero-length byte without
	// invoking the encoder, §9 Open Question.
	metaMimeLen := enc.MetadataMimeType.ByteLength(f.MetadataMimeType)
	buf[offset] = byte(metaMimeLen)
	offset++
	if metaMimeLen > 0 {
		offset = enc.MetadataMimeType.Encode(f.MetadataMimeType, buf, offset)
	}

	dataMimeLen := enc.DataMimeType.ByteLength(f.DataMimeType)
	buf[offset] = byte(dataMimeLen)
	offset++
	if dataMimeLen > 0 {
		offset = enc.DataMimeType.Encode(f.DataMimeType, buf, offset)
	}

	writePayloadSection(buf, offset, f, enc, f.Flags.Has(frame.FlagMetadata))
}

func readSetup(buf []byte, offset, end int, streamID int32, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID != 0 {
		return nil, invariant("streamId", streamID, "SETUP frames must use stream id 0")
	}

	f := &frame.Frame{Type: frame.TypeSetup, StreamID: uint32(streamID), Flags: flags}
	f.MajorVersion = binary.BigEndian.Uint16(buf[offset : offset+2])
	offset += 2
	f.MinorVersion = binary.BigEndian.Uint16(buf[offset : offset+2])
	offset += 2

	keepAlive := int32(binary.BigEndian.Uint32(buf[offset : offset+4]))
	offset += 4
	if keepAlive < 0 || keepAlive > frame.MaxKeepAlive {
		return nil, invariant("keepAlive", keepAlive, "must be in [0, MAX_KEEPALIVE]")
	}
	f.KeepAlive = keepAlive

	lifetime := int32(binary.BigEndian.Uint32(buf[offset : offset+4]))
	offset += 4
	if lifetime < 0 || lifetime > frame.MaxLifetime {
		return nil, invariant("lifetime", lifetime, "must be in [0, MAX_LIFETIME]")
	}
	f.Lifetime = lifetime

	tokenLen := int(binary.BigEndian.Uint16(buf[offset : offset+2]))
	offset += 2
	if tokenLen < 0 || tokenLen > frame.MaxResumeLength {
		return nil, invariant("resumeToken.length", tokenLen, "must be in [0, MAX_RESUME_LENGTH]")
	}
	f.ResumeToken = enc.ResumeToken.Decode(buf, offset, offset+tokenLen)
	offset += tokenLen

	metaMimeLen := int(buf[offset])
	offset++
	f.MetadataMimeType = enc.MetadataMimeType.Decode(buf, offset, offset+metaMimeLen)
	offset += metaMimeLen

	dataMimeLen := int(buf[offset])
	offset++
	f.DataMimeType = enc.DataMimeType.Decode(buf, offset, offset+dataMimeLen)
	offset += dataMimeLen

	metadata, data, _ := readPayloadSection(buf, offset, end, enc, flags.Has(frame.FlagMetadata))
	f.Metadata = metadata
	f.Data = data
	return f, nil
}
