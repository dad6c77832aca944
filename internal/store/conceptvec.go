package store

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
)

func conceptVecKey(termID uint32) []byte {
	key := make([]byte, 1+4)
	key[0] = prefixConceptVec
	binary.BigEndian.PutUint32(key[1:5], termID)
	return key
}

// SaveConceptVector writes one term's encoded concept-vector blob (spec.md
// §4.6's "term" table) — the final product of Step 5 of the build.
func (s *Store) SaveConceptVector(_ context.Context, termID uint32, blob []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(conceptVecKey(termID), blob)
	})
	if err != nil {
		return fmt.Errorf("saving concept vector for term %d: %w: %w", termID, esaerr.ErrStore, err)
	}
	return nil
}

// LoadConceptVector reads back one term's blob. ok is false if the term has
// no stored vector (the term never passed the min_freq scan filter).
func (s *Store) LoadConceptVector(_ context.Context, termID uint32) (blob []byte, ok bool, err error) {
	txnErr := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(conceptVecKey(termID))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		ok = true
		return item.Value(func(val []byte) error {
			blob = append([]byte(nil), val...)
			return nil
		})
	})
	if txnErr != nil {
		return nil, false, fmt.Errorf("loading concept vector for term %d: %w: %w", termID, esaerr.ErrStore, txnErr)
	}
	return blob, ok, nil
}

// IterateConceptVectors visits every (term_id, blob) pair currently stored,
// in ascending term_id order. Used by ConceptIndex.Load to materialise the
// whole index in memory.
func (s *Store) IterateConceptVectors(_ context.Context, fn func(termID uint32, blob []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixConceptVec}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte{prefixConceptVec}); it.ValidForPrefix([]byte{prefixConceptVec}); it.Next() {
			item := it.Item()
			termID := binary.BigEndian.Uint32(item.Key()[1:5])
			var blob []byte
			err := item.Value(func(val []byte) error {
				blob = append([]byte(nil), val...)
				return nil
			})
			if err != nil {
				return err
			}
			if err := fn(termID, blob); err != nil {
				return err
			}
		}
		return nil
	})
}
