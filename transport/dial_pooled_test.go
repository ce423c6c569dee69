package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"rsocket-codec/endpoint"
	"rsocket-codec/frame"
)

func TestDialPooledResolvesAndDials(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	accepted := make(chan *frame.Frame, 1)
	go func() {
		listener := Listen(ln, ListenerConfig{})
		session, setup, err := listener.Accept()
		if err != nil {
			return
		}
		defer session.Close()
		accepted <- setup
	}()

	registry := endpoint.NewMemRegistry()
	defer registry.Close()
	if err := registry.Register(context.Background(), "svc", ln.Addr().String()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	setup := &frame.Frame{
		Type:         frame.TypeSetup,
		MajorVersion: 1,
		MinorVersion: 0,
	}
	session, err := DialPooled(context.Background(), registry, endpoint.NewRoundRobin(), "svc", setup, SessionConfig{})
	if err != nil {
		t.Fatalf("DialPooled: %v", err)
	}
	defer session.Close()

	select {
	case got := <-accepted:
		if got.Type != frame.TypeSetup {
			t.Errorf("got type %s, want SETUP", got.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to accept SETUP")
	}
}

func TestDialPooledNoAddressesIsError(t *testing.T) {
	registry := endpoint.NewMemRegistry()
	defer registry.Close()
	_, err := DialPooled(context.Background(), registry, endpoint.NewRoundRobin(), "missing", &frame.Frame{Type: frame.TypeSetup}, SessionConfig{})
	if err == nil {
		t.Fatal("expected an error when no addresses are registered")
	}
}
