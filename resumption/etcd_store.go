package resumption

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
)

const defaultKeyPrefix = "/rsocket/resume/"

// EtcdStore persists resume positions in etcd, each key held alive by a
// lease so abandoned resume state expires on its own instead of
// accumulating forever. Grounded on the teacher's etcd_registry.go, which
// used clientv3.Grant + WithLease + KeepAlive to keep a service
// registration's key alive for as long as the process runs; here the
// lease is deliberately NOT kept alive forever — it expires ttl after the
// last Save, so a client that never reconnects loses its resume window.
type EtcdStore struct {
	client *clientv3.Client
	prefix string
	ttl    time.Duration
}

// NewEtcdStore returns a Store backed by client. ttl bounds how long a
// saved position survives without being refreshed by another Save.
func NewEtcdStore(client *clientv3.Client, ttl time.Duration) *EtcdStore {
	return &EtcdStore{client: client, prefix: defaultKeyPrefix, ttl: ttl}
}

func (s *EtcdStore) key(token string) string {
	return s.prefix + token
}

// Save grants a fresh lease for pos and writes it under token's key,
// replacing whatever lease (and expiry) the previous Save held.
func (s *EtcdStore) Save(ctx context.Context, token string, pos Position) error {
	body, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("resumption: marshal position: %w", err)
	}

	lease, err := s.client.Grant(ctx, int64(s.ttl.Seconds()))
	if err != nil {
		return fmt.Errorf("resumption: grant lease: %w", err)
	}

	_, err = s.client.Put(ctx, s.key(token), string(body), clientv3.WithLease(lease.ID))
	if err != nil {
		return fmt.Errorf("resumption: put: %w", err)
	}
	return nil
}

// Load fetches the position stored under token, if any and not expired.
func (s *EtcdStore) Load(ctx context.Context, token string) (Position, bool, error) {
	resp, err := s.client.Get(ctx, s.key(token))
	if err != nil {
		return Position{}, false, fmt.Errorf("resumption: get: %w", err)
	}
	if len(resp.Kvs) == 0 {
		return Position{}, false, nil
	}

	var pos Position
	if err := json.Unmarshal(resp.Kvs[0].Value, &pos); err != nil {
		return Position{}, false, fmt.Errorf("resumption: unmarshal position: %w", err)
	}
	return pos, true, nil
}

// Delete removes token's entry immediately rather than waiting on lease
// expiry, used when a client explicitly closes its session.
func (s *EtcdStore) Delete(ctx context.Context, token string) error {
	_, err := s.client.Delete(ctx, s.key(token))
	if err != nil {
		return fmt.Errorf("resumption: delete: %w", err)
	}
	return nil
}

// Close releases the underlying etcd client.
func (s *EtcdStore) Close() error {
	return s.client.Close()
}
