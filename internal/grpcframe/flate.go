package grpcframe

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// FlateDecompressor implements Decompressor over the stdlib's DEFLATE
// codec — the same algorithm family gRPC's "gzip" content-coding is built
// on. No third-party compression library appears anywhere in the
// reference corpus this repository was grounded on, so the standard
// library fills the one concrete Decompressor this repo ships; see
// DESIGN.md for the full justification.
type FlateDecompressor struct{}

// NewFlateDecompressor returns a ready-to-use FlateDecompressor. It holds
// no state and needs no teardown beyond what Decompress itself performs.
func NewFlateDecompressor() *FlateDecompressor {
	return &FlateDecompressor{}
}

// Decompress satisfies Decompressor.
func (FlateDecompressor) Decompress(input []byte, limit uint32) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(input))
	defer zr.Close()

	// Read at most limit+1 bytes: if that sentinel byte is reached, the
	// true output exceeds limit and the caller gets ErrResourceExhausted
	// instead of a silently truncated payload.
	out, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("grpcframe: flate decompress: %w", err)
	}
	if uint32(len(out)) > limit {
		return nil, fmt.Errorf("%w: decompressed output exceeds max %d bytes", ErrResourceExhausted, limit)
	}
	return out, nil
}
