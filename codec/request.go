package codec

import (
	"encoding/binary"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// payloadOnlyByteLength covers REQUEST_FNF, REQUEST_RESPONSE and PAYLOAD:
// header, then the shared metadata+data payload section, nothing else.
func payloadOnlyByteLength(f *frame.Frame, enc *encoding.Set) int {
	return payloadSectionLength(f, enc, f.Flags.Has(frame.FlagMetadata))
}

func writePayloadOnly(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	writePayloadSection(buf, offset, f, enc, f.Flags.Has(frame.FlagMetadata))
}

func readPayloadOnly(buf []byte, offset, end int, streamID int32, typ frame.Type, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID == 0 {
		return nil, invariant("streamId", streamID, typ.String()+" frames require a stream id > 0")
	}
	metadata, data, _ := readPayloadSection(buf, offset, end, enc, flags.Has(frame.FlagMetadata))
	return &frame.Frame{
		Type:     typ,
		StreamID: uint32(streamID),
		Flags:    flags,
		Metadata: metadata,
		Data:     data,
	}, nil
}

const requestNFieldSize = 4

// requestWithNByteLength covers REQUEST_STREAM and REQUEST_CHANNEL:
// header, requestN, then the shared payload section.
func requestWithNByteLength(f *frame.Frame, enc *encoding.Set) int {
	return requestNFieldSize + payloadSectionLength(f, enc, f.Flags.Has(frame.FlagMetadata))
}

func writeRequestWithN(buf []byte, offset int, f *frame.Frame, enc *encoding.Set) {
	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(f.RequestN))
	offset += 4
	writePayloadSection(buf, offset, f, enc, f.Flags.Has(frame.FlagMetadata))
}

func readRequestWithN(buf []byte, offset, end int, streamID int32, typ frame.Type, flags frame.Flags, enc *encoding.Set) (*frame.Frame, error) {
	if streamID == 0 {
		return nil, invariant("streamId", streamID, typ.String()+" frames require a stream id > 0")
	}
	requestN := int32(binary.BigEndian.Uint32(buf[offset : offset+4]))
	offset += 4
	if requestN <= 0 {
		return nil, invariant("requestN", requestN, "must be > 0")
	}
	metadata, data, _ := readPayloadSection(buf, offset, end, enc, flags.Has(frame.FlagMetadata))
	return &frame.Frame{
		Type:     typ,
		StreamID: uint32(streamID),
		Flags:    flags,
		RequestN: requestN,
		Metadata: metadata,
		Data:     data,
	}, nil
}

// requestNByteLength covers REQUEST_N: header plus a single requestN
// field, no payload section.
func requestNByteLength() int {
	return requestNFieldSize
}

func writeRequestN(buf []byte, offset int, f *frame.Frame) {
	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(f.RequestN))
}

func readRequestN(buf []byte, offset int, streamID int32, flags frame.Flags) (*frame.Frame, error) {
	if streamID == 0 {
		return nil, invariant("streamId", streamID, "REQUEST_N frames require a stream id > 0")
	}
	requestN := int32(binary.BigEndian.Uint32(buf[offset : offset+4]))
	if requestN <= 0 {
		return nil, invariant("requestN", requestN, "must be > 0")
	}
	return &frame.Frame{
		Type:     frame.TypeRequestN,
		StreamID: uint32(streamID),
		Flags:    flags,
		RequestN: requestN,
	}, nil
}

// readCancel covers CANCEL: header only, no body.
func readCancel(streamID int32, flags frame.Flags) (*frame.Frame, error) {
	if streamID == 0 {
		return nil, invariant("streamId", streamID, "CANCEL frames require a stream id > 0")
	}
	return &frame.Frame{
		Type:     frame.TypeCancel,
		StreamID: uint32(streamID),
		Flags:    flags,
	}, nil
}
