package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
)

// TermFrequencyStore is the external ordered key-value contract spec.md
// §4.3 describes in engine-neutral terms. Badger is this core's concrete
// backing store (see DESIGN.md for why it was chosen over the teacher's
// cloud object-storage stack); the interface exists so build-pipeline code
// in internal/build depends on behavior, not on *store.Store directly.
type TermFrequencyStore interface {
	// InsertDocument records one document's already-weighted term
	// frequencies (tf = 1 + ln(raw_freq), spec.md §4.4) and marks docID as
	// seen for DistinctDocsCount. Each (term_id, doc_id) pair must be
	// inserted at most once per build (spec.md §3).
	InsertDocument(ctx context.Context, docID uint32, termWeights map[uint32]float32) error

	// DistinctDocsCount returns N, the total number of documents inserted.
	DistinctDocsCount(ctx context.Context) (uint64, error)

	// DocFrequencyPerTerm visits every term_id that appears in at least one
	// document, calling fn once with that term's document frequency df(t).
	// Visitation order is ascending term_id.
	DocFrequencyPerTerm(ctx context.Context, fn func(termID uint32, df uint64) error) error

	// ScanByTerm visits every (term_id, doc_id, weight) row whose weight is
	// strictly greater than minFreq, grouped by term_id ascending and,
	// within a term_id group, ordered by weight descending (spec.md §4.3
	// op 4). This ordering lets the vector-truncation stage apply its
	// sliding window directly off the scan without an extra sort pass.
	ScanByTerm(ctx context.Context, minFreq float32, fn func(termID uint32, docID uint32, weight float32) error) error

	Close() error
}

// termKey packs the table prefix byte, term_id, an inverted weight, and
// doc_id into one 13-byte BadgerDB key. Keys are compared byte-wise in ascending order, so:
//   - term_id occupies the leading 4 bytes, grouping all rows for a term
//     contiguously and in term_id order.
//   - the weight is stored as ^math.Float32bits(weight): inverting the bit
//     pattern of a non-negative IEEE-754 float flips its ordering, so a
//     larger weight produces a smaller bit pattern and therefore sorts
//     first within the group — giving weight-descending order for free.
//   - doc_id breaks ties deterministically.
func termKey(termID uint32, weight float32, docID uint32) []byte {
	key := make([]byte, 1+4+4+4)
	key[0] = prefixTermRow
	binary.BigEndian.PutUint32(key[1:5], termID)
	binary.BigEndian.PutUint32(key[5:9], ^math.Float32bits(weight))
	binary.BigEndian.PutUint32(key[9:13], docID)
	return key
}

func decodeTermKey(key []byte) (termID uint32, weight float32, docID uint32) {
	termID = binary.BigEndian.Uint32(key[1:5])
	weight = math.Float32frombits(^binary.BigEndian.Uint32(key[5:9]))
	docID = binary.BigEndian.Uint32(key[9:13])
	return
}

func docSeenKey(docID uint32) []byte {
	key := make([]byte, 1+4)
	key[0] = prefixDocSeen
	binary.BigEndian.PutUint32(key[1:5], docID)
	return key
}

// InsertDocument implements TermFrequencyStore.
func (s *Store) InsertDocument(_ context.Context, docID uint32, termWeights map[uint32]float32) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	if err := wb.Set(docSeenKey(docID), []byte{}); err != nil {
		return fmt.Errorf("marking doc %d seen: %w: %w", docID, esaerr.ErrStore, err)
	}
	for termID, weight := range termWeights {
		if err := wb.Set(termKey(termID, weight, docID), float32Bytes(weight)); err != nil {
			return fmt.Errorf("inserting term %d for doc %d: %w: %w", termID, docID, esaerr.ErrStore, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flushing doc %d: %w: %w", docID, esaerr.ErrStore, err)
	}
	return nil
}

// DistinctDocsCount implements TermFrequencyStore.
func (s *Store) DistinctDocsCount(_ context.Context) (uint64, error) {
	var n uint64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte{prefixDocSeen}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte{prefixDocSeen}); it.ValidForPrefix([]byte{prefixDocSeen}); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting distinct docs: %w: %w", esaerr.ErrStore, err)
	}
	return n, nil
}

// DocFrequencyPerTerm implements TermFrequencyStore.
func (s *Store) DocFrequencyPerTerm(_ context.Context, fn func(termID uint32, df uint64) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte{prefixTermRow}
		it := txn.NewIterator(opts)
		defer it.Close()

		var (
			haveCurrent bool
			currentTerm uint32
			df          uint64
		)
		flush := func() error {
			if !haveCurrent {
				return nil
			}
			return fn(currentTerm, df)
		}
		for it.Seek([]byte{prefixTermRow}); it.ValidForPrefix([]byte{prefixTermRow}); it.Next() {
			termID, _, _ := decodeTermKey(it.Item().Key())
			if !haveCurrent || termID != currentTerm {
				if err := flush(); err != nil {
					return err
				}
				haveCurrent = true
				currentTerm = termID
				df = 0
			}
			df++
		}
		return flush()
	})
}

// ScanByTerm implements TermFrequencyStore.
func (s *Store) ScanByTerm(_ context.Context, minFreq float32, fn func(termID uint32, docID uint32, weight float32) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte{prefixTermRow}
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte{prefixTermRow}); it.ValidForPrefix([]byte{prefixTermRow}); it.Next() {
			termID, weight, docID := decodeTermKey(it.Item().Key())
			if weight <= minFreq {
				continue
			}
			if err := fn(termID, docID, weight); err != nil {
				return err
			}
		}
		return nil
	})
}

func float32Bytes(f float32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(f))
	return b
}
