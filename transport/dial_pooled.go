package transport

import (
	"context"
	"fmt"

	"rsocket-codec/endpoint"
	"rsocket-codec/frame"
)

// DialPooled resolves name through registry, picks one address with
// balancer, and dials it. It replaces the teacher's client.Client +
// transport.ConnPool combination (discover, then borrow-or-create a
// pooled connection) with a single-shot discover-then-dial: this
// repository's transport layer is a reference implementation of the
// frame protocol, not a connection-pooling client, so no pool is kept —
// see the project's grounding ledger for why ConnPool wasn't ported.
func DialPooled(ctx context.Context, registry endpoint.Registry, balancer endpoint.Balancer, name string, setup *frame.Frame, cfg SessionConfig) (*Session, error) {
	addrs, err := registry.Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %q: %w", name, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("transport: no addresses registered for %q", name)
	}

	addr := balancer.Pick(addrs)
	return Dial("tcp", addr, setup, cfg)
}
