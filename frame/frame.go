// Package frame defines the in-memory representation of an RSocket frame:
// the eleven frame kinds, the header fields every frame carries, and the
// per-kind fields a specific frame may carry. It is a pure data model —
// no parsing or serialization lives here (see package codec).
package frame

// Type identifies which of the eleven RSocket frame kinds a Frame is.
// The numeric values match the RSocket 1.0 wire specification.
type Type uint8

const (
	TypeSetup           Type = 0x01
	TypeLease           Type = 0x02
	TypeKeepalive       Type = 0x03
	TypeRequestResponse Type = 0x04
	TypeRequestFNF      Type = 0x05
	TypeRequestStream   Type = 0x06
	TypeRequestChannel  Type = 0x07
	TypeRequestN        Type = 0x08
	TypeCancel          Type = 0x09
	TypePayload         Type = 0x0A
	TypeError           Type = 0x0B
)

func (t Type) String() string {
	switch t {
	case TypeSetup:
		return "SETUP"
	case TypeLease:
		return "LEASE"
	case TypeKeepalive:
		return "KEEPALIVE"
	case TypeRequestResponse:
		return "REQUEST_RESPONSE"
	case TypeRequestFNF:
		return "REQUEST_FNF"
	case TypeRequestStream:
		return "REQUEST_STREAM"
	case TypeRequestChannel:
		return "REQUEST_CHANNEL"
	case TypeRequestN:
		return "REQUEST_N"
	case TypeCancel:
		return "CANCEL"
	case TypePayload:
		return "PAYLOAD"
	case TypeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Flags is the 10-bit frame flag field. Unknown bits are preserved
// verbatim on round-trip — the codec never masks Flags against the set
// of bits it recognizes.
type Flags uint16

const (
	FlagMetadata Flags = 1 << 8 // frame carries a metadata block
	FlagFollows  Flags = 1 << 7 // more fragments of this frame follow
	FlagComplete Flags = 1 << 6 // stream terminated normally
	FlagNext     Flags = 1 << 5 // payload carries data (PAYLOAD's NEXT bit)
	FlagLease    Flags = 1 << 6 // SETUP: lease mode enabled (shares a bit position with COMPLETE; context-dependent per frame type)
	FlagRespond  Flags = 1 << 7 // KEEPALIVE: peer should echo this frame back
)

// Has reports whether every bit set in want is also set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

const (
	// FLAGS_MASK isolates the 10 flag bits from a packed header word.
	FLAGS_MASK = 0x3FF
	// FRAME_TYPE_OFFSET is the bit position the frame type is packed at.
	FRAME_TYPE_OFFSET = 10
)

// Numeric bounds from §6.4.
const (
	MaxCode         = 1<<31 - 1
	MaxKeepAlive    = 1<<31 - 1
	MaxLifetime     = 1<<31 - 1
	MaxResumeLength = 65535
)

// Frame is a tagged variant carrying every field any of the eleven frame
// kinds may use. Only the fields relevant to Type are meaningful; codec
// encode/decode dispatches on Type and reads/writes only those fields.
//
// Optional fields (Metadata, Data, ResumeToken, Message) use nil to mean
// "absent" and a non-nil (possibly zero-length) slice/non-empty-check to
// mean "present" — absence means no bytes are written for that field,
// independent of whether a length-prefix flag is set for it.
type Frame struct {
	StreamID uint32
	Type     Type
	Flags    Flags

	// SETUP
	MajorVersion     uint16
	MinorVersion     uint16
	KeepAlive        int32
	Lifetime         int32
	ResumeToken      []byte
	MetadataMimeType string
	DataMimeType     string

	// ERROR
	Code    uint32
	Message string

	// KEEPALIVE
	LastReceivedPosition uint64

	// LEASE
	TTL          uint32
	RequestCount uint32

	// REQUEST_STREAM, REQUEST_CHANNEL, REQUEST_N
	RequestN int32

	// Shared payload section: SETUP, REQUEST_FNF, REQUEST_RESPONSE,
	// REQUEST_STREAM, REQUEST_CHANNEL, PAYLOAD.
	Metadata []byte
	Data     []byte
}
