// Package encoding implements the pluggable, per-field payload encoders
// the frame codec uses for the six string/binary-bearing fields of an
// RSocket frame (data, metadata, the two MIME types, the error message,
// and the resume token).
//
// There is no runtime registry — an encoding.Set is a plain configuration
// value threaded through every codec call (codec.EmitFrame, codec.ParseFrame,
// and the framer entry points all take an optional *Set; nil means Text).
package encoding

import (
	"fmt"
	"unicode/utf8"
)

// ByteEncoder is the capability triple for a []byte-valued field.
type ByteEncoder struct {
	ByteLength func(v []byte) int
	Encode     func(v []byte, buf []byte, offset int) int
	Decode     func(buf []byte, start, end int) []byte
}

// StringEncoder is the capability triple for a string-valued field.
type StringEncoder struct {
	ByteLength func(v string) int
	Encode     func(v string, buf []byte, offset int) int
	Decode     func(buf []byte, start, end int) string
}

// Set binds one encoder to each of the six payload-bearing fields.
type Set struct {
	Data             ByteEncoder
	Metadata         ByteEncoder
	ResumeToken      ByteEncoder
	DataMimeType     StringEncoder
	MetadataMimeType StringEncoder
	Message          StringEncoder
}

// Mismatch is raised (via panic, recovered by the codec package in
// EmitFrame) when an encoder rejects a value it is
// handed — e.g. the Text set's byte encoder given a blob that is not
// valid UTF-8.
type Mismatch struct {
	Field  string
	Reason string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("encoding: field %q: %s", m.Field, m.Reason)
}

func copyBytes(v []byte, buf []byte, offset int) int {
	return offset + copy(buf[offset:], v)
}

func copyString(v string, buf []byte, offset int) int {
	return offset + copy(buf[offset:], v)
}

func decodeBytes(buf []byte, start, end int) []byte {
	if start == end {
		return []byte{}
	}
	out := make([]byte, end-start)
	copy(out, buf[start:end])
	return out
}

func decodeString(buf []byte, start, end int) string {
	return string(buf[start:end])
}

// utf8ByteEncoder is a ByteEncoder whose Encode step rejects input that is
// not valid UTF-8, panicking with *Mismatch. field names the frame field
// for the resulting error message.
func utf8ByteEncoder(field string) ByteEncoder {
	return ByteEncoder{
		ByteLength: func(v []byte) int { return len(v) },
		Encode: func(v []byte, buf []byte, offset int) int {
			if !utf8.Valid(v) {
				panic(&Mismatch{Field: field, Reason: "value is not valid UTF-8"})
			}
			return copyBytes(v, buf, offset)
		},
		Decode: decodeBytes,
	}
}

// rawByteEncoder passes bytes through unchanged, with no validation.
func rawByteEncoder() ByteEncoder {
	return ByteEncoder{
		ByteLength: func(v []byte) int { return len(v) },
		Encode:     copyBytes,
		Decode:     decodeBytes,
	}
}

// utf8StringEncoder writes a Go string as its UTF-8 byte representation.
// Go strings carry no encoding guarantee, but every string literal and
// every conversion from valid UTF-8 bytes already is UTF-8, so there is
// nothing to validate here — mirrored in both the Text and Binary sets.
func utf8StringEncoder() StringEncoder {
	return StringEncoder{
		ByteLength: func(v string) int { return len(v) },
		Encode:     copyString,
		Decode:     decodeString,
	}
}

// Text is the standard encoder set: every field is encoded/decoded as
// UTF-8, and the byte-valued fields (data, metadata, resumeToken) reject
// non-UTF-8 input at encode time.
var Text = Set{
	Data:             utf8ByteEncoder("data"),
	Metadata:         utf8ByteEncoder("metadata"),
	ResumeToken:      utf8ByteEncoder("resumeToken"),
	DataMimeType:     utf8StringEncoder(),
	MetadataMimeType: utf8StringEncoder(),
	Message:          utf8StringEncoder(),
}

// Binary is the standard encoder set: data, metadata, and resumeToken are
// raw byte blobs with no validation; the MIME-type fields and the error
// message remain UTF-8 strings, same as Text.
var Binary = Set{
	Data:             rawByteEncoder(),
	Metadata:         rawByteEncoder(),
	ResumeToken:      rawByteEncoder(),
	DataMimeType:     utf8StringEncoder(),
	MetadataMimeType: utf8StringEncoder(),
	Message:          utf8StringEncoder(),
}

// OrDefault returns s if non-nil, else the Text set — every codec entry
// point threads its optional *Set argument through this so the default
// never needs to be special-cased at each call site.
func (s *Set) OrDefault() *Set {
	if s == nil {
		return &Text
	}
	return s
}
