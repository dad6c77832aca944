package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
)

// IDFTable is the in-memory term_idf table (spec.md §4.4): idf(t) =
// ln(N / df(t)) for every term with at least one occurrence. It is computed
// once per build from a TermFrequencyStore and persisted alongside it so a
// later build step (or a diagnostic tool) can reload it without recomputing.
type IDFTable struct {
	values map[uint32]float32
}

// ComputeIDFTable implements spec.md §4.4: for every (term_id, df) pair
// DocFrequencyPerTerm yields, idf = ln(N/df). A corpus of exactly one
// document yields idf = ln(1/1) = 0 for every term (spec.md §8 boundary
// case) — every document's weight for every term collapses to zero, which
// is a property of the formula, not a bug to special-case.
func ComputeIDFTable(ctx context.Context, tf TermFrequencyStore) (*IDFTable, error) {
	n, err := tf.DistinctDocsCount(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("computing idf table over empty corpus: %w", esaerr.ErrStore)
	}

	table := &IDFTable{values: make(map[uint32]float32)}
	err = tf.DocFrequencyPerTerm(ctx, func(termID uint32, df uint64) error {
		if df == 0 {
			return nil
		}
		table.values[termID] = float32(math.Log(float64(n) / float64(df)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("building idf table: %w", err)
	}
	return table, nil
}

// Get returns idf(termID), or 0 and false if termID never appeared during
// the build this table was computed from.
func (t *IDFTable) Get(termID uint32) (float32, bool) {
	v, ok := t.values[termID]
	return v, ok
}

// Len reports the number of terms with a recorded idf.
func (t *IDFTable) Len() int {
	return len(t.values)
}

func idfKey(termID uint32) []byte {
	key := make([]byte, 1+4)
	key[0] = prefixIDF
	binary.BigEndian.PutUint32(key[1:5], termID)
	return key
}

// Save persists the table into the backing store under the term_idf
// prefix, so a rebuild-resume or an offline inspection tool can load it
// without rescanning doc_term_freq.
func (s *Store) SaveIDFTable(_ context.Context, table *IDFTable) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for termID, idf := range table.values {
		if err := wb.Set(idfKey(termID), float32Bytes(idf)); err != nil {
			return fmt.Errorf("saving idf for term %d: %w: %w", termID, esaerr.ErrStore, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flushing idf table: %w: %w", esaerr.ErrStore, err)
	}
	return nil
}

// LoadIDFTable reads back a previously-saved term_idf table.
func (s *Store) LoadIDFTable(_ context.Context) (*IDFTable, error) {
	table := &IDFTable{values: make(map[uint32]float32)}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixIDF}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte{prefixIDF}); it.ValidForPrefix([]byte{prefixIDF}); it.Next() {
			item := it.Item()
			termID := binary.BigEndian.Uint32(item.Key()[1:5])
			err := item.Value(func(val []byte) error {
				table.values[termID] = math.Float32frombits(binary.BigEndian.Uint32(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading idf table: %w: %w", esaerr.ErrStore, err)
	}
	return table, nil
}
