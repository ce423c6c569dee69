package transport

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"rsocket-codec/frame"
)

// Lease gates outbound request frames the way an RSocket LEASE frame
// grants the peer a budget of requestCount requests over ttl. It is
// implemented as a token bucket sized and refilled by the most recently
// received LEASE frame, the same rate.Limiter mechanism the teacher's
// rate_limit_middleware.go used for a fixed local rate, adapted here to a
// budget the remote peer controls and periodically renews.
type Lease struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	enabled bool
}

// NewLease returns a Lease that allows everything until the first LEASE
// frame is received, matching RSocket's behavior for peers that never
// negotiate leasing.
func NewLease() *Lease {
	return &Lease{}
}

// Grant applies a received LEASE frame, resetting the token bucket to
// requestCount tokens refilled evenly over ttl.
func (l *Lease) Grant(f *frame.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f.TTL <= 0 || f.RequestCount <= 0 {
		return
	}
	ratePerSecond := float64(f.RequestCount) / (time.Duration(f.TTL) * time.Millisecond).Seconds()
	l.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), int(f.RequestCount))
	l.enabled = true
}

// Allow reports whether a request may be sent right now without blocking.
func (l *Lease) Allow() bool {
	l.mu.Lock()
	limiter := l.limiter
	l.mu.Unlock()
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// Wait blocks until the lease permits one more request or ctx is done.
func (l *Lease) Wait(ctx context.Context) error {
	l.mu.Lock()
	limiter := l.limiter
	l.mu.Unlock()
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}
