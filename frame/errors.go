package frame

import "fmt"

// InvariantViolation reports a malformed or out-of-range field detected
// at parse time, or an unsupported frame type encountered at parse or
// emit time (§7). It is fatal: the codec never returns a partial Frame
// alongside one of these.
type InvariantViolation struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("rsocket frame: invariant violation on %s=%v: %s", e.Field, e.Value, e.Reason)
}

func invariant(field string, value any, reason string) error {
	return &InvariantViolation{Field: field, Value: value, Reason: reason}
}

// EncoderMismatch reports that an Encoder rejected a value at emit time
// (§7), e.g. the Text set handed a non-UTF-8 blob. The codec package
// converts an encoding.Mismatch panic raised during Emit into one of
// these so callers see a single error family regardless of which layer
// rejected the frame.
type EncoderMismatch struct {
	Field  string
	Reason string
}

func (e *EncoderMismatch) Error() string {
	return fmt.Sprintf("rsocket frame: encoder rejected field %s: %s", e.Field, e.Reason)
}
