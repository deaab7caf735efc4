package grpcframe

// compactionFloor is the absolute minimum consumed-prefix size (bytes)
// before compaction is even considered. Below this, a memmove costs more
// than the memory it would reclaim.
const compactionFloor = 1024

// buffer is the Deframer's rolling accumulator: an owned byte slice plus a
// read cursor. Bytes before off are consumed and logically discarded;
// bytes at or after off are pending decode.
//
// bytes.Buffer is deliberately not used here: it exposes no way to compare
// consumed-prefix size against total capacity (the two-part compaction
// trigger below needs exactly that), and its Read/Next semantics drop
// bytes immediately rather than supporting the peek-then-maybe-rollback
// discipline FrameDecoder.Decode relies on.
type buffer struct {
	data []byte
	off  int
}

// Len reports the number of pending (unconsumed) bytes.
func (b *buffer) Len() int {
	return len(b.data) - b.off
}

// Bytes returns the pending region. The slice is only valid until the next
// call to Append or Discard.
func (b *buffer) Bytes() []byte {
	return b.data[b.off:]
}

// Discard advances the read cursor past n consumed bytes. Once every byte
// has been consumed, the backing array is released so a subsequent Append
// starts fresh rather than growing forever.
func (b *buffer) Discard(n int) {
	b.off += n
	if b.off >= len(b.data) {
		b.data = nil
		b.off = 0
	}
}

// Append adds chunk to the buffer, compacting first if the consumed prefix
// has grown past both the absolute floor and half of the current capacity.
// It reports whether compaction ran and how many consumed bytes it
// discarded, so callers can surface that to metrics.
func (b *buffer) Append(chunk []byte) (compacted bool, discarded int) {
	if len(chunk) == 0 {
		return false, 0
	}
	if b.Len() == 0 {
		// Nothing pending: adopt the chunk as-is, no copy, and drop any
		// stale backing array along with it.
		b.data = chunk
		b.off = 0
		return false, 0
	}
	if b.off > compactionFloor && b.off*2 > cap(b.data) {
		discarded = b.off
		n := copy(b.data, b.data[b.off:])
		b.data = b.data[:n]
		b.off = 0
		compacted = true
	}
	b.data = append(b.data, chunk...)
	return compacted, discarded
}
