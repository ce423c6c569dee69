package endpoint

import (
	"context"
	"sort"
	"testing"
)

func TestMemRegistryRegisterResolveDeregister(t *testing.T) {
	ctx := context.Background()
	reg := NewMemRegistry()
	defer reg.Close()

	if err := reg.Register(ctx, "payments", "10.0.0.1:7000"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(ctx, "payments", "10.0.0.2:7000"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	addrs, err := reg.Resolve(ctx, "payments")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	sort.Strings(addrs)
	want := []string{"10.0.0.1:7000", "10.0.0.2:7000"}
	if len(addrs) != len(want) || addrs[0] != want[0] || addrs[1] != want[1] {
		t.Fatalf("got %v, want %v", addrs, want)
	}

	if err := reg.Deregister(ctx, "payments", "10.0.0.1:7000"); err != nil {
		t.Fatalf("Deregister: %v", err)
	}
	addrs, _ = reg.Resolve(ctx, "payments")
	if len(addrs) != 1 || addrs[0] != "10.0.0.2:7000" {
		t.Fatalf("got %v, want [10.0.0.2:7000]", addrs)
	}
}

func TestMemRegistryResolveUnknownServiceIsEmpty(t *testing.T) {
	reg := NewMemRegistry()
	defer reg.Close()
	addrs, err := reg.Resolve(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(addrs) != 0 {
		t.Errorf("expected no addrs, got %v", addrs)
	}
}
