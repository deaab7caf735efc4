package grpcframe

import (
	"bytes"
	"testing"
)

func TestBufferAppendAndDiscard(t *testing.T) {
	var b buffer
	b.Append([]byte("hello"))
	if b.Len() != 5 {
		t.Fatalf("len=%d want=5", b.Len())
	}
	b.Discard(2)
	if !bytes.Equal(b.Bytes(), []byte("llo")) {
		t.Fatalf("bytes=%q want=llo", b.Bytes())
	}
	b.Discard(3)
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer after full discard, got len=%d", b.Len())
	}
	if b.data != nil {
		t.Fatalf("expected backing array released after full discard")
	}
}

func TestBufferAppendAdoptsFirstChunkWithoutCopy(t *testing.T) {
	var b buffer
	chunk := []byte("first chunk")
	compacted, discarded := b.Append(chunk)
	if compacted || discarded != 0 {
		t.Fatalf("first append onto empty buffer should never compact")
	}
	if &b.data[0] != &chunk[0] {
		t.Fatalf("expected buffer to adopt the chunk's backing array")
	}
}

func TestBufferCompactsOnlyAboveFloorAndHalfCapacity(t *testing.T) {
	var b buffer
	// Build up a consumed prefix just below the floor: no compaction yet.
	b.Append(bytes.Repeat([]byte{'x'}, compactionFloor))
	b.Discard(compactionFloor - 1)
	compacted, _ := b.Append([]byte("y"))
	if compacted {
		t.Fatalf("did not expect compaction below the floor")
	}
}

func TestBufferCompactsWhenOverFloorAndOverHalfCapacity(t *testing.T) {
	var b buffer
	data := bytes.Repeat([]byte{'x'}, compactionFloor*3)
	b.Append(data)
	b.Discard(compactionFloor*2 + 1) // > floor and > half of cap

	pending := append([]byte{}, b.Bytes()...)
	compacted, discarded := b.Append([]byte("z"))
	if !compacted {
		t.Fatalf("expected compaction once consumed prefix exceeds floor and half capacity")
	}
	if discarded != compactionFloor*2+1 {
		t.Fatalf("discarded=%d want=%d", discarded, compactionFloor*2+1)
	}
	if b.off != 0 {
		t.Fatalf("expected cursor reset to 0 after compaction, got %d", b.off)
	}
	want := append(append([]byte{}, pending...), 'z')
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("bytes after compaction=%q want=%q", b.Bytes(), want)
	}
}

func TestBufferAppendEmptyChunkIsNoop(t *testing.T) {
	var b buffer
	b.Append([]byte("existing"))
	compacted, discarded := b.Append(nil)
	if compacted || discarded != 0 {
		t.Fatalf("appending an empty chunk must never compact")
	}
	if b.Len() != len("existing") {
		t.Fatalf("len changed after appending empty chunk")
	}
}
