package endpoint

import (
	"context"
	"fmt"

	clientv3 "go.etcd.io/etcd/client/v3"
)

const registryPrefix = "/rsocket/endpoints/"

// EtcdRegistry implements Registry on top of etcd, keeping each
// registration alive with a lease that is renewed until the ctx passed to
// Register is canceled — ported from the
// teacher's etcd_registry.go, which used clientv3.Grant + WithLease +
// KeepAlive the same way to keep a service's key from expiring.
type EtcdRegistry struct {
	client *clientv3.Client
	ttlSec int64
}

// NewEtcdRegistry returns a Registry backed by client. ttlSec is the lease
// TTL in seconds; Register refreshes it automatically until ctx ends.
func NewEtcdRegistry(client *clientv3.Client, ttlSec int64) *EtcdRegistry {
	return &EtcdRegistry{client: client, ttlSec: ttlSec}
}

func (r *EtcdRegistry) key(name, addr string) string {
	return fmt.Sprintf("%s%s/%s", registryPrefix, name, addr)
}

// Register advertises addr under name and keeps its lease alive until ctx
// is canceled, matching the teacher's pattern of a background goroutine
// consuming the KeepAlive response channel for the lifetime of the
// registration.
func (r *EtcdRegistry) Register(ctx context.Context, name, addr string) error {
	lease, err := r.client.Grant(ctx, r.ttlSec)
	if err != nil {
		return fmt.Errorf("endpoint: grant lease: %w", err)
	}

	if _, err := r.client.Put(ctx, r.key(name, addr), addr, clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("endpoint: put: %w", err)
	}

	keepAlive, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return fmt.Errorf("endpoint: keepalive: %w", err)
	}

	go func() {
		for range keepAlive {
			// drain responses; etcd requires the channel be consumed for
			// KeepAlive to keep firing.
		}
	}()
	return nil
}

// Deregister removes addr's key for name immediately.
func (r *EtcdRegistry) Deregister(ctx context.Context, name, addr string) error {
	_, err := r.client.Delete(ctx, r.key(name, addr))
	if err != nil {
		return fmt.Errorf("endpoint: delete: %w", err)
	}
	return nil
}

// Resolve lists every address currently registered under name.
func (r *EtcdRegistry) Resolve(ctx context.Context, name string) ([]string, error) {
	prefix := fmt.Sprintf("%s%s/", registryPrefix, name)
	resp, err := r.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("endpoint: get: %w", err)
	}

	addrs := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		addrs = append(addrs, string(kv.Value))
	}
	return addrs, nil
}

// Close releases the underlying etcd client.
func (r *EtcdRegistry) Close() error {
	return r.client.Close()
}
