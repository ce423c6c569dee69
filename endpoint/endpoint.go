// Package endpoint implements service discovery and load balancing for
// dialing RSocket endpoints: a Registry that lists the live addresses for
// a service name, and a Balancer that picks one of them per dial.
//
// Grounded on the teacher's registry and loadbalance packages (a
// Registry/EtcdRegistry pair for discovery, a Balancer/RoundRobinBalancer
// pair for selection), generalized from RPC service addresses to RSocket
// endpoint addresses.
package endpoint

import "context"

// Address identifies one dialable endpoint instance.
type Address struct {
	Name string // service/endpoint name, e.g. "payments"
	Addr string // host:port
}

// Registry discovers the live addresses registered for a service name.
type Registry interface {
	// Register advertises addr as serving name. EtcdRegistry stops renewing
	// the registration once ctx is canceled, so it expires after its lease
	// TTL; MemRegistry ignores ctx and keeps the address until Deregister
	// is called.
	Register(ctx context.Context, name, addr string) error
	// Deregister removes addr from name's address list.
	Deregister(ctx context.Context, name, addr string) error
	// Resolve returns the currently known live addresses for name.
	Resolve(ctx context.Context, name string) ([]string, error)
	// Close releases resources held by the registry.
	Close() error
}

// Balancer picks one address out of a candidate set.
type Balancer interface {
	// Pick selects one address from addrs. addrs is guaranteed non-empty
	// by callers; implementations need not handle the empty case.
	Pick(addrs []string) string
}
