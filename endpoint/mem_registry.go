package endpoint

import (
	"context"
	"sync"
)

// MemRegistry is an in-process Registry, useful for tests and for
// single-process deployments that don't run etcd.
type MemRegistry struct {
	mu   sync.Mutex
	data map[string]map[string]struct{} // name -> set of addrs
}

// NewMemRegistry returns an empty MemRegistry.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{data: make(map[string]map[string]struct{})}
}

func (m *MemRegistry) Register(ctx context.Context, name, addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[name] == nil {
		m.data[name] = make(map[string]struct{})
	}
	m.data[name][addr] = struct{}{}
	return nil
}

func (m *MemRegistry) Deregister(ctx context.Context, name, addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[name], addr)
	return nil
}

func (m *MemRegistry) Resolve(ctx context.Context, name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	addrs := make([]string, 0, len(m.data[name]))
	for addr := range m.data[name] {
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func (m *MemRegistry) Close() error { return nil }
