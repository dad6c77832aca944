package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// entrySize is the packed byte width of one (doc_id, weight) entry: a
// 4-byte doc_id followed by a 4-byte weight, both little-endian (spec.md
// §4.6, and §6's call-out that native-endian encoding is a portability
// defect to avoid — this core pins little-endian regardless of host
// architecture).
const entrySize = 8

// Encode packs pairs into the on-disk blob layout: entry count is implicit
// in len(blob)/8, so no length prefix is written.
func Encode(pairs []Pair) []byte {
	blob := make([]byte, len(pairs)*entrySize)
	for i, p := range pairs {
		off := i * entrySize
		binary.LittleEndian.PutUint32(blob[off:off+4], p.DocID)
		binary.LittleEndian.PutUint32(blob[off+4:off+8], math.Float32bits(p.Weight))
	}
	return blob
}

// Decode unpacks a blob previously produced by Encode. A blob whose length
// is not a multiple of 8 is malformed.
func Decode(blob []byte) ([]Pair, error) {
	if len(blob)%entrySize != 0 {
		return nil, fmt.Errorf("concept vector blob length %d not a multiple of %d", len(blob), entrySize)
	}
	n := len(blob) / entrySize
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		off := i * entrySize
		pairs[i] = Pair{
			DocID:  binary.LittleEndian.Uint32(blob[off : off+4]),
			Weight: math.Float32frombits(binary.LittleEndian.Uint32(blob[off+4 : off+8])),
		}
	}
	return pairs, nil
}
