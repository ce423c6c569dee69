package transport

import (
	"context"
	"errors"
	"testing"

	"rsocket-codec/frame"
)

func TestChainOrdering(t *testing.T) {
	var order []string
	mark := func(name string) Interceptor {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
				order = append(order, name+":before")
				reply, err := next(ctx, f)
				order = append(order, name+":after")
				return reply, err
			}
		}
	}

	handler := func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
		order = append(order, "handler")
		return nil, nil
	}

	chained := Chain(mark("A"), mark("B"))(handler)
	_, err := chained(context.Background(), &frame.Frame{Type: frame.TypeCancel, StreamID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A:before", "B:before", "handler", "B:after", "A:after"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestRecoverInterceptorCatchesPanic(t *testing.T) {
	handler := func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
		panic("boom")
	}
	wrapped := RecoverInterceptor()(handler)
	_, err := wrapped(context.Background(), &frame.Frame{Type: frame.TypeCancel, StreamID: 1})
	if err == nil {
		t.Fatal("expected error from recovered panic, got nil")
	}
}

func TestRecoverInterceptorPassesThroughNormalError(t *testing.T) {
	want := errors.New("handler failed")
	handler := func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
		return nil, want
	}
	wrapped := RecoverInterceptor()(handler)
	_, err := wrapped(context.Background(), &frame.Frame{Type: frame.TypeCancel, StreamID: 1})
	if !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
}
