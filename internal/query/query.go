// Package query implements ESAQuery (spec.md §4.7): mapping free text to a
// sparse concept vector and comparing two such vectors by cosine
// similarity.
package query

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/openesa/esacore/internal/esaerr"
	"github.com/openesa/esacore/internal/index"
	"github.com/openesa/esacore/internal/store"
	"github.com/openesa/esacore/internal/tokenize"
)

// Vector is a concept vector: doc_id -> accumulated weight.
type Vector map[uint32]float32

// Label is one top-scoring concept dimension, attached to a human-readable
// title via the LabelMap.
type Label struct {
	DocID uint32
	Title string
	Score float32
}

// Session is a loaded, read-only query-time view of a built index: a
// ConceptIndex plus the LabelMap needed to annotate top concepts with
// titles. Per spec.md §3 ownership, a Session exclusively owns both for its
// lifetime; it is safe for concurrent GetVector/Similarity calls since
// neither the index nor the label map is mutated after load.
type Session struct {
	idx    *index.ConceptIndex
	labels *store.LabelMap
	chain  tokenize.FilterChain
}

// Open loads a ConceptIndex from s and a LabelMap from labelPath, and
// validates that chain's fingerprint matches the one the index was built
// with. A mismatch means the stored concept vectors were keyed by a
// different tokenization than chain will ever produce, which would make
// every lookup silently miss — so Open refuses rather than serving
// degraded results (spec.md §4.1: "builders and queriers must use the same
// chain for an index to be valid").
func Open(ctx context.Context, s *store.Store, labelPath string, chain tokenize.FilterChain) (*Session, error) {
	built, ok, err := s.LoadFilterChainFingerprint(ctx)
	if err != nil {
		return nil, err
	}
	if ok && built != chain.Fingerprint() {
		return nil, fmt.Errorf("query filter chain fingerprint %s does not match build fingerprint %s: %w",
			chain.Fingerprint(), built, esaerr.ErrConfig)
	}

	idx, err := index.Load(ctx, s)
	if err != nil {
		return nil, err
	}
	labels, err := store.LoadLabelMap(labelPath)
	if err != nil {
		return nil, err
	}
	return &Session{idx: idx, labels: labels, chain: chain}, nil
}

// GetVector tokenizes text through the session's filter chain, looks up
// each resulting word's concept vector (an unknown word contributes an
// empty map), and sums them per doc_id. It also extracts the nLabels
// highest-scoring doc_ids that have a known title, sorted by score
// descending (spec.md §4.7).
func (s *Session) GetVector(text string, nLabels int) ([]Label, Vector) {
	words := s.chain.Apply(tokenize.Tokenize(text))

	vec := make(Vector)
	for _, w := range words {
		perToken, ok := s.idx.Lookup(w)
		if !ok {
			continue
		}
		for docID, weight := range perToken {
			vec[docID] += weight
		}
	}

	labels := make([]Label, 0, len(vec))
	for docID, score := range vec {
		title, ok := s.labels.Get(docID)
		if !ok {
			continue
		}
		labels = append(labels, Label{DocID: docID, Title: title, Score: score})
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Score != labels[j].Score {
			return labels[i].Score > labels[j].Score
		}
		return labels[i].DocID < labels[j].DocID
	})
	if nLabels >= 0 && len(labels) > nLabels {
		labels = labels[:nLabels]
	}
	return labels, vec
}

// Similarity computes cosine similarity between two concept vectors over
// the union of their keys (spec.md §4.7). Returns 0 if either norm is 0.
func Similarity(v1, v2 Vector) float64 {
	var dot, norm1, norm2 float64
	for d, w1 := range v1 {
		norm1 += float64(w1) * float64(w1)
		if w2, ok := v2[d]; ok {
			dot += float64(w1) * float64(w2)
		}
	}
	for _, w2 := range v2 {
		norm2 += float64(w2) * float64(w2)
	}
	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}
