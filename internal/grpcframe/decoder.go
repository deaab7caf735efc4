package grpcframe

import "fmt"

// Limits bounds the decoder's memory use.
type Limits struct {
	// MaxPayloadSize is the hard upper bound on a single frame's declared
	// (pre-decompression) payload length, and also the bound applied to a
	// decompressor's output. Enforced before any payload buffer is
	// allocated.
	MaxPayloadSize uint32
}

// DefaultLimits returns the limits used when none are supplied: 4 MiB,
// matching the default max receive message size most gRPC implementations
// ship with.
func DefaultLimits() Limits {
	return Limits{MaxPayloadSize: 4 << 20}
}

// FrameDecoder performs a single-step decode of one gRPC frame at the head
// of a byte buffer. It carries no mutable state between calls; all state
// lives in the buffer the caller passes in.
type FrameDecoder struct {
	limits       Limits
	decompressor Decompressor
}

// NewFrameDecoder builds a decoder with the given limits. decompressor may
// be nil; frames that advertise compression will then fail with
// ErrNoDecompressor.
func NewFrameDecoder(limits Limits, decompressor Decompressor) *FrameDecoder {
	return &FrameDecoder{limits: limits, decompressor: decompressor}
}

// Decode attempts to parse exactly one frame from the head of buf.
//
// It returns (nil, 0, nil) when buf does not yet hold a complete frame —
// the caller must not advance its read cursor on that result. On success
// it returns the frame's (decompressed) payload and the number of bytes
// consumed from buf's head. On error, consumed is always 0: framing
// errors are terminal for the stream, so there is nothing to roll back to.
func (d *FrameDecoder) Decode(buf []byte) (payload []byte, consumed int, err error) {
	if len(buf) < HeaderSize {
		return nil, 0, nil
	}

	h := decodeHeader(buf)
	if h.Length > d.limits.MaxPayloadSize {
		return nil, 0, fmt.Errorf("%w: frame declares %d bytes, max is %d", ErrResourceExhausted, h.Length, d.limits.MaxPayloadSize)
	}

	total := HeaderSize + int(h.Length)
	if len(buf) < total {
		return nil, 0, nil
	}
	raw := buf[HeaderSize:total]

	if !h.Compressed {
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, total, nil
	}

	if d.decompressor == nil {
		return nil, 0, fmt.Errorf("%w: frame flagged compressed", ErrNoDecompressor)
	}
	out, derr := d.decompressor.Decompress(raw, d.limits.MaxPayloadSize)
	if derr != nil {
		return nil, 0, derr
	}
	return out, total, nil
}
