package transport

import (
	"io"
	"net"
	"testing"

	"rsocket-codec/frame"
	"rsocket-codec/framer"
)

func TestConnWriteReadRoundTrip(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	sc := NewConn(server, nil)
	cc := NewConn(client, nil)

	want := &frame.Frame{Type: frame.TypeCancel, StreamID: 9}

	errCh := make(chan error, 1)
	go func() { errCh <- sc.WriteFrame(want) }()

	got, err := cc.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if got.Type != want.Type || got.StreamID != want.StreamID {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestConnReadFrameMultipleFramesOneRead(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	sc := NewConn(server, nil)
	cc := NewConn(client, nil)

	frames := []*frame.Frame{
		{Type: frame.TypeCancel, StreamID: 1},
		{Type: frame.TypeCancel, StreamID: 2},
	}

	// Both frames go out in a single Write, so the reader receives them in
	// one Read and must serve the second from its queue.
	done := make(chan struct{})
	go func() {
		defer close(done)
		var both []byte
		for _, f := range frames {
			buf, err := framer.SerializeFrameWithLength(f, nil)
			if err != nil {
				t.Errorf("SerializeFrameWithLength: %v", err)
				return
			}
			both = append(both, buf...)
		}
		if _, err := sc.raw.Write(both); err != nil {
			t.Errorf("Write: %v", err)
		}
	}()

	for _, want := range frames {
		got, err := cc.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		if got.StreamID != want.StreamID {
			t.Errorf("got streamId %d, want %d", got.StreamID, want.StreamID)
		}
	}
	<-done
}

func TestConnReadFrameReturnsEOFOnClose(t *testing.T) {
	server, client := net.Pipe()
	cc := NewConn(client, nil)

	server.Close()
	_, err := cc.ReadFrame()
	if err != io.EOF {
		t.Errorf("got err %v, want io.EOF", err)
	}
}
