package vector

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrips(t *testing.T) {
	pairs := []Pair{
		{DocID: 1, Weight: 0.75},
		{DocID: 42, Weight: 0.125},
		{DocID: 1000000, Weight: 1e-9},
	}
	blob := Encode(pairs)
	if len(blob) != len(pairs)*entrySize {
		t.Fatalf("expected blob length %d, got %d", len(pairs)*entrySize, len(blob))
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(pairs, got) {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, pairs)
	}
}

func TestEncodeEmpty(t *testing.T) {
	blob := Encode(nil)
	if len(blob) != 0 {
		t.Fatalf("expected empty blob, got %d bytes", len(blob))
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty pairs, got %d", len(got))
	}
}

func TestDecodeRejectsMisalignedBlob(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error decoding a blob whose length isn't a multiple of 8")
	}
}

func TestEncodeIsLittleEndian(t *testing.T) {
	blob := Encode([]Pair{{DocID: 1, Weight: 0}})
	if blob[0] != 1 || blob[1] != 0 || blob[2] != 0 || blob[3] != 0 {
		t.Fatalf("expected little-endian doc_id encoding, got %v", blob[:4])
	}
}
