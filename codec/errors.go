package codec

import "rsocket-codec/frame"

// invariant builds the error every emit/parse boundary check in this
// package returns on a malformed or out-of-range field (§7). It mirrors
// frame/errors.go's own unexported constructor of the same name, which
// package frame does not export — codec gets its own
// copy wrapping the same *frame.InvariantViolation type so callers across
// package boundaries still see one error family.
func invariant(field string, value any, reason string) error {
	return &frame.InvariantViolation{Field: field, Value: value, Reason: reason}
}
