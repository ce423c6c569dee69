package transport

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rsocket-codec/frame"
)

// HandlerFunc handles one inbound frame and optionally produces a reply
// frame to write back (nil if none, e.g. for FNF or N frames).
type HandlerFunc func(ctx context.Context, f *frame.Frame) (*frame.Frame, error)

// Interceptor wraps a HandlerFunc to add cross-cutting behavior without
// touching the handler itself, the same onion model the teacher's
// middleware.Middleware used for RPC request/response pairs, generalized
// here from *message.RPCMessage to *frame.Frame.
//
//	Chain(A, B, C)(handler)  →  A(B(C(handler)))
//	Request:   A.before → B.before → C.before → handler
//	Response:  handler → C.after → B.after → A.after
type Interceptor func(next HandlerFunc) HandlerFunc

// Chain composes interceptors so the first one is outermost: executed
// first on the way in, last on the way out.
func Chain(interceptors ...Interceptor) Interceptor {
	return func(next HandlerFunc) HandlerFunc {
		for i := len(interceptors) - 1; i >= 0; i-- {
			next = interceptors[i](next)
		}
		return next
	}
}

// LoggingInterceptor logs frame type, stream id, and handling duration for
// every frame that reaches the handler, plus any error it returns.
// Grounded on middleware.LoggingMiddleware, rewired to zap's structured
// logger in place of the standard library's log package.
func LoggingInterceptor(logger *zap.Logger) Interceptor {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
			start := time.Now()
			reply, err := next(ctx, f)
			fields := []zap.Field{
				zap.Stringer("type", f.Type),
				zap.Uint32("streamId", f.StreamID),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("frame handling failed", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("frame handled", fields...)
			}
			return reply, err
		}
	}
}

// RecoverInterceptor converts a panic inside the handler chain into an
// error instead of crashing the session's read loop. Confined recover
// pattern, the same shape package codec uses at the EmitFrame boundary to
// turn an encoding.Mismatch panic into a returned error.
func RecoverInterceptor() Interceptor {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, f *frame.Frame) (reply *frame.Frame, err error) {
			defer func() {
				if r := recover(); r != nil {
					reply = nil
					err = panicError{r}
				}
			}()
			return next(ctx, f)
		}
	}
}

type panicError struct{ v any }

func (p panicError) Error() string { return "transport: panic in frame handler: " + errString(p.v) }

func errString(v any) string {
	if e, ok := v.(error); ok {
		return e.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "non-error panic value"
}
