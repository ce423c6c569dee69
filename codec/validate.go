package codec

import "rsocket-codec/frame"

// validateEmit enforces the same invariants at emit time that readHeader's
// callers enforce at parse time (§8.2): a frame built with an
// out-of-range field would otherwise either silently wrap on the wire (a
// stream id that doesn't fit) or produce bytes that no conformant parser
// could represent (a resume token longer than the wire's 16-bit length
// field can count). Emitting such a frame is rejected up front rather
// than producing bytes that don't round-trip.
func validateEmit(f *frame.Frame) error {
	switch f.Type {
	case frame.TypeSetup, frame.TypeKeepalive, frame.TypeLease:
		if f.StreamID != 0 {
			return invariant("streamId", f.StreamID, f.Type.String()+" frames must use stream id 0")
		}
	case frame.TypeRequestResponse, frame.TypeRequestFNF, frame.TypeRequestStream,
		frame.TypeRequestChannel, frame.TypeRequestN, frame.TypeCancel, frame.TypePayload, frame.TypeError:
		if f.StreamID == 0 {
			return invariant("streamId", f.StreamID, f.Type.String()+" frames require a stream id > 0")
		}
	default:
		return invariant("type", f.Type, "unsupported frame type")
	}
	if f.StreamID > 1<<31-1 {
		return invariant("streamId", f.StreamID, "must fit in 31 bits")
	}

	switch f.Type {
	case frame.TypeRequestStream, frame.TypeRequestChannel, frame.TypeRequestN:
		if f.RequestN <= 0 {
			return invariant("requestN", f.RequestN, "must be > 0")
		}
	}

	switch f.Type {
	case frame.TypeSetup:
		if f.KeepAlive < 0 || f.KeepAlive > frame.MaxKeepAlive {
			return invariant("keepAlive", f.KeepAlive, "must be in [0, MAX_KEEPALIVE]")
		}
		if f.Lifetime < 0 || f.Lifetime > frame.MaxLifetime {
			return invariant("lifetime", f.Lifetime, "must be in [0, MAX_LIFETIME]")
		}
		if len(f.ResumeToken) > frame.MaxResumeLength {
			return invariant("resumeToken.length", len(f.ResumeToken), "must be in [0, MAX_RESUME_LENGTH]")
		}
	case frame.TypeError:
		if f.Code > frame.MaxCode {
			return invariant("code", f.Code, "must be in [0, MAX_CODE]")
		}
	}

	return nil
}
