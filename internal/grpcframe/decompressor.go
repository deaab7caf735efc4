package grpcframe

// Decompressor is the external capability a FrameDecoder delegates to when
// a frame's compression flag is set. Implementations own their own
// resources; the grpcframe package never constructs or tears one down.
type Decompressor interface {
	// Decompress expands input, refusing to produce more than limit bytes
	// of output. Implementations MUST return an error rather than
	// truncate silently when the bound would be exceeded.
	Decompress(input []byte, limit uint32) ([]byte, error)
}
