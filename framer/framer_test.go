package framer

import (
	"bytes"
	"testing"

	"rsocket-codec/frame"
)

func cancelFrame(streamID uint32) *frame.Frame {
	return &frame.Frame{Type: frame.TypeCancel, StreamID: streamID}
}

func TestSerializeDeserializeFrameWithLengthRoundTrip(t *testing.T) {
	f := cancelFrame(7)
	buf, err := SerializeFrameWithLength(f, nil)
	if err != nil {
		t.Fatalf("SerializeFrameWithLength: %v", err)
	}
	got, err := DeserializeFrameWithLength(buf, nil)
	if err != nil {
		t.Fatalf("DeserializeFrameWithLength: %v", err)
	}
	if got.StreamID != f.StreamID || got.Type != f.Type {
		t.Errorf("got %+v, want %+v", got, f)
	}
}

func TestDeserializeFramesCompleteConcatenation(t *testing.T) {
	var all []byte
	for _, id := range []uint32{1, 2, 3} {
		buf, err := SerializeFrameWithLength(cancelFrame(id), nil)
		if err != nil {
			t.Fatalf("SerializeFrameWithLength: %v", err)
		}
		all = append(all, buf...)
	}

	frames, leftover, err := DeserializeFrames(all, nil)
	if err != nil {
		t.Fatalf("DeserializeFrames: %v", err)
	}
	if len(leftover) != 0 {
		t.Errorf("expected empty leftover, got %d bytes", len(leftover))
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, id := range []uint32{1, 2, 3} {
		if frames[i].StreamID != id {
			t.Errorf("frame %d: streamId = %d, want %d", i, frames[i].StreamID, id)
		}
	}
}

func TestDeserializeFramesChunking(t *testing.T) {
	var all []byte
	for _, id := range []uint32{10, 20, 30} {
		buf, _ := SerializeFrameWithLength(cancelFrame(id), nil)
		all = append(all, buf...)
	}

	// Split arbitrarily mid-stream and feed in two chunks, plumbing
	// leftover back in as the spec requires.
	for split := 1; split < len(all); split++ {
		p1, p2 := all[:split], all[split:]

		frames1, leftover1, err := DeserializeFrames(p1, nil)
		if err != nil {
			t.Fatalf("split %d: first DeserializeFrames: %v", split, err)
		}
		frames2, leftover2, err := DeserializeFrames(append(append([]byte{}, leftover1...), p2...), nil)
		if err != nil {
			t.Fatalf("split %d: second DeserializeFrames: %v", split, err)
		}
		if len(leftover2) != 0 {
			t.Fatalf("split %d: expected empty final leftover, got %d bytes", split, len(leftover2))
		}
		got := append(frames1, frames2...)
		if len(got) != 3 {
			t.Fatalf("split %d: got %d frames, want 3", split, len(got))
		}
		for i, id := range []uint32{10, 20, 30} {
			if got[i].StreamID != id {
				t.Errorf("split %d: frame %d streamId = %d, want %d", split, i, got[i].StreamID, id)
			}
		}
	}
}

func TestDeserializeFramesFewerThan3Bytes(t *testing.T) {
	for n := 0; n < 3; n++ {
		input := make([]byte, n)
		frames, leftover, err := DeserializeFrames(input, nil)
		if err != nil {
			t.Fatalf("n=%d: unexpected error %v", n, err)
		}
		if len(frames) != 0 {
			t.Errorf("n=%d: expected no frames, got %d", n, len(frames))
		}
		if !bytes.Equal(leftover, input) {
			t.Errorf("n=%d: leftover = % x, want % x", n, leftover, input)
		}
	}
}

func TestDeserializeFramesTruncatedBody(t *testing.T) {
	buf, err := SerializeFrameWithLength(cancelFrame(1), nil)
	if err != nil {
		t.Fatalf("SerializeFrameWithLength: %v", err)
	}
	truncated := buf[:len(buf)-1] // declared length N, only N-1 body bytes present
	frames, leftover, err := DeserializeFrames(truncated, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("expected no frames from a truncated body, got %d", len(frames))
	}
	if !bytes.Equal(leftover, truncated) {
		t.Errorf("expected entire input retained as leftover")
	}
}

func TestDeserializeFramesPartialExample(t *testing.T) {
	// §8.3 scenario 4: [len=8][8 bytes of frame A][len=11][3 bytes of frame B]
	a, err := SerializeFrameWithLength(&frame.Frame{Type: frame.TypePayload, StreamID: 1, Data: []byte("ab")}, nil)
	if err != nil {
		t.Fatalf("SerializeFrameWithLength a: %v", err)
	}
	b, err := SerializeFrameWithLength(&frame.Frame{Type: frame.TypePayload, StreamID: 2, Data: []byte("cdefg")}, nil)
	if err != nil {
		t.Fatalf("SerializeFrameWithLength b: %v", err)
	}

	partial := append(append([]byte{}, a...), b[:6]...)
	frames, leftover, err := DeserializeFrames(partial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 1 || frames[0].StreamID != 1 {
		t.Fatalf("expected only frame A parsed, got %+v", frames)
	}
	if !bytes.Equal(leftover, b[:6]) {
		t.Errorf("leftover = % x, want % x", leftover, b[:6])
	}

	rest := append(append([]byte{}, leftover...), b[6:]...)
	frames2, leftover2, err := DeserializeFrames(rest, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leftover2) != 0 {
		t.Errorf("expected empty leftover, got %d bytes", len(leftover2))
	}
	if len(frames2) != 1 || frames2[0].StreamID != 2 {
		t.Fatalf("expected frame B parsed, got %+v", frames2)
	}
}
