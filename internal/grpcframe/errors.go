package grpcframe

import "errors"

// Sentinel errors returned by FrameDecoder and Deframer. Callers should
// compare with errors.Is rather than switching on dynamic error text.
var (
	// ErrResourceExhausted is returned when a frame's declared or
	// decompressed payload length exceeds the configured limit.
	ErrResourceExhausted = errors.New("grpcframe: resource exhausted")

	// ErrNoDecompressor is returned when a frame advertises compression
	// but the decoder was not configured with a Decompressor.
	ErrNoDecompressor = errors.New("grpcframe: no decompressor configured")
)
