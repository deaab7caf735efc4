package grpcframe

import "encoding/binary"

const (
	// HeaderSize is the fixed length of a gRPC frame header: one
	// compression-flag byte followed by a 4-byte big-endian payload length.
	HeaderSize = 5

	// flagCompressed is the only compression-flag value this decoder
	// treats as "compressed". Equality, not a bitmask: a future multi-codec
	// extension belongs in the out-of-band grpc-encoding header, not in
	// this bit.
	flagCompressed byte = 1
)

// Header is the parsed form of a gRPC frame's 5-byte header.
type Header struct {
	Compressed bool
	Length     uint32
}

// decodeHeader parses the fixed header from the first HeaderSize bytes of
// buf. The caller must ensure len(buf) >= HeaderSize.
func decodeHeader(buf []byte) Header {
	return Header{
		Compressed: buf[0] == flagCompressed,
		Length:     binary.BigEndian.Uint32(buf[1:5]),
	}
}

// encodeHeader renders h as its 5-byte wire form. The deframer itself only
// ever reads frames (no write-side framing is in scope); this exists for
// tests and for EncodeFrame.
func encodeHeader(h Header) [HeaderSize]byte {
	var out [HeaderSize]byte
	if h.Compressed {
		out[0] = flagCompressed
	}
	binary.BigEndian.PutUint32(out[1:5], h.Length)
	return out
}

// EncodeFrame renders a complete frame (header + payload) in canonical
// uncompressed form. Exported for callers building test fixtures or
// feeding framepeek; the deframer never calls it.
func EncodeFrame(payload []byte) []byte {
	h := encodeHeader(Header{Compressed: false, Length: uint32(len(payload))})
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h[:]...)
	out = append(out, payload...)
	return out
}
