// Package index implements ConceptIndex (spec.md §4.6): the on-disk,
// in-memory-loadable join of term_wordmap and term that a query Session
// consults at serve time.
package index

import (
	"context"
	"fmt"

	"github.com/openesa/esacore/internal/esaerr"
	"github.com/openesa/esacore/internal/store"
	"github.com/openesa/esacore/internal/tokenize"
	"github.com/openesa/esacore/internal/vector"
)

// ConceptIndex is the fully-materialised word → {doc_id → weight} map
// (spec.md §4.6 Load, §4.6 Memory model: the whole index is resident).
type ConceptIndex struct {
	vectors map[string]map[uint32]float32
	wordMap *tokenize.WordMap
}

// Load joins term_wordmap with term to build surface_word -> {doc_id ->
// weight}. A word with no stored term_vector (none of its rows had a weight
// above min_freq; truncation always keeps at least the first windowSize
// entries, so it never empties a vector) maps to an
// empty inner map rather than being omitted — its presence in the WordMap
// is itself informative for callers that enumerate known vocabulary.
func Load(ctx context.Context, s *store.Store) (*ConceptIndex, error) {
	wm, err := s.LoadWordMap(ctx)
	if err != nil {
		return nil, err
	}

	blobs := make(map[uint32][]byte)
	err = s.IterateConceptVectors(ctx, func(termID uint32, blob []byte) error {
		blobs[termID] = blob
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading concept vectors: %w", err)
	}

	idx := &ConceptIndex{
		vectors: make(map[string]map[uint32]float32, wm.Len()),
		wordMap: wm,
	}
	for _, entry := range wm.Entries() {
		blob, ok := blobs[entry.TermID]
		if !ok {
			idx.vectors[entry.Word] = map[uint32]float32{}
			continue
		}
		pairs, err := vector.Decode(blob)
		if err != nil {
			return nil, fmt.Errorf("decoding concept vector for %q: %w: %w", entry.Word, esaerr.ErrStore, err)
		}
		m := make(map[uint32]float32, len(pairs))
		for _, p := range pairs {
			m[p.DocID] = p.Weight
		}
		idx.vectors[entry.Word] = m
	}
	return idx, nil
}

// Lookup returns the concept vector for word, or (nil, false) if word was
// never interned during build.
func (idx *ConceptIndex) Lookup(word string) (map[uint32]float32, bool) {
	v, ok := idx.vectors[word]
	return v, ok
}

// WordMap exposes the underlying WordMap, e.g. for a query pipeline built
// in NewQueryPipeline mode.
func (idx *ConceptIndex) WordMap() *tokenize.WordMap {
	return idx.wordMap
}

// Len reports the number of distinct surface words in the index.
func (idx *ConceptIndex) Len() int {
	return len(idx.vectors)
}
