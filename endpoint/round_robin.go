package endpoint

import "sync/atomic"

// RoundRobin cycles through the candidate list in order, wrapping back to
// the start. Ported from the teacher's loadbalance.RoundRobinBalancer;
// ConsistentHashBalancer and WeightedRandomBalancer were not carried
// forward (see the project's grounding ledger).
type RoundRobin struct {
	counter uint64
}

// NewRoundRobin returns a RoundRobin balancer starting at index 0.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Pick returns addrs[n % len(addrs)] where n increments on every call,
// shared atomically across concurrent callers.
func (r *RoundRobin) Pick(addrs []string) string {
	n := atomic.AddUint64(&r.counter, 1) - 1
	return addrs[n%uint64(len(addrs))]
}
