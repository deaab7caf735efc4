package grpcframe

import (
	"bytes"
	"compress/flate"
	"errors"
	"testing"
)

func compressFlate(t *testing.T, in []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if _, err := zw.Write(in); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestFlateDecompressorRoundTrip(t *testing.T) {
	want := bytes.Repeat([]byte("round trip payload "), 100)
	compressed := compressFlate(t, want)

	d := NewFlateDecompressor()
	got, err := d.Decompress(compressed, uint32(len(want)))
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round-trip mismatch, got %d bytes want %d", len(got), len(want))
	}
}

func TestFlateDecompressorEnforcesLimit(t *testing.T) {
	want := bytes.Repeat([]byte("x"), 1000)
	compressed := compressFlate(t, want)

	d := NewFlateDecompressor()
	_, err := d.Decompress(compressed, 10)
	if !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("expected ErrResourceExhausted, got %v", err)
	}
}

func TestFlateDecompressorRejectsGarbageInput(t *testing.T) {
	d := NewFlateDecompressor()
	_, err := d.Decompress([]byte("not actually flate data"), 1<<20)
	if err == nil {
		t.Fatalf("expected an error decompressing garbage input")
	}
}
