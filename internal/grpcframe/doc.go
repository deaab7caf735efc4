// Package grpcframe implements the gRPC length-prefixed message framing
// protocol: a single-step FrameDecoder and a stateful Deframer that
// accumulates arbitrary transport chunks and yields whole frames.
//
// Ownership boundary:
// - frame header parsing (5-byte: compression flag + big-endian length)
// - buffer accumulation, compaction, and read-cursor bookkeeping
// - the Decompressor contract and a stdlib-backed implementation
//
// Out of this package's scope: HTTP/2 connection and stream management,
// TLS, service dispatch, and compression-algorithm negotiation. Those are
// external collaborators driven by the caller.
package grpcframe
