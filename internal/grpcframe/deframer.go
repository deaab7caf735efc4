package grpcframe

// Deframer is a stateful per-stream accumulator. It holds a rolling byte
// buffer, appends transport chunks to it, and repeatedly drives a
// FrameDecoder until no more complete frames are available.
//
// A Deframer is exclusive to one logical stream, driven by exactly one
// goroutine at a time: it holds no internal lock, suspends on nothing, and
// is safe to simply drop when the stream ends. It does not construct or
// tear down the Decompressor its FrameDecoder was built with — that stays
// the caller's responsibility.
type Deframer struct {
	buf     buffer
	decoder *FrameDecoder
	metrics *Metrics
}

// NewDeframer creates a Deframer driven by decoder. metrics may be nil.
func NewDeframer(decoder *FrameDecoder, metrics *Metrics) *Deframer {
	return &Deframer{decoder: decoder, metrics: metrics}
}

// Append adds another transport chunk to the stream. It never fails: a
// short read, a split header, a split payload are all just "not enough
// bytes yet" from the decoder's point of view. The chunk boundary need not
// align with any frame boundary.
func (d *Deframer) Append(chunk []byte) {
	compacted, discarded := d.buf.Append(chunk)
	if compacted {
		d.metrics.recordCompaction(discarded)
	}
}

// DecodeNext attempts to produce the next complete frame.
//
// It returns (nil, nil) when the buffer is empty or holds an incomplete
// frame. It returns exactly one frame, or an error from the underlying
// FrameDecoder — which is terminal for the stream: DecodeNext never
// retries or attempts resynchronization after an error.
func (d *Deframer) DecodeNext() ([]byte, error) {
	payload, consumed, err := d.decoder.Decode(d.buf.Bytes())
	if err != nil {
		d.metrics.recordError()
		return nil, err
	}
	if consumed == 0 {
		return nil, nil
	}
	d.buf.Discard(consumed)
	d.metrics.recordFrame()
	if payload == nil {
		// A decompressor may return a nil slice for an empty frame; keep
		// nil reserved for "no frame".
		payload = []byte{}
	}
	return payload, nil
}

// DrainInto repeatedly calls DecodeNext and appends each frame to sink
// until no more frames are available or an error occurs.
func (d *Deframer) DrainInto(sink func(frame []byte)) error {
	for {
		frame, err := d.DecodeNext()
		if err != nil {
			return err
		}
		if frame == nil {
			return nil
		}
		sink(frame)
	}
}
