package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
)

// SaveFilterChainFingerprint records the fingerprint of the filter chain a
// build was run with (spec.md §4.1: "builders and queriers must use the
// same chain for an index to be valid").
func (s *Store) SaveFilterChainFingerprint(_ context.Context, fingerprint string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKeyFilterChain, []byte(fingerprint))
	})
	if err != nil {
		return fmt.Errorf("saving filter chain fingerprint: %w: %w", esaerr.ErrStore, err)
	}
	return nil
}

// LoadFilterChainFingerprint returns the fingerprint recorded at build
// time, or ok=false if none was ever saved (an index built before this
// check existed).
func (s *Store) LoadFilterChainFingerprint(_ context.Context) (fingerprint string, ok bool, err error) {
	txnErr := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(metaKeyFilterChain)
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		ok = true
		return item.Value(func(val []byte) error {
			fingerprint = string(val)
			return nil
		})
	})
	if txnErr != nil {
		return "", false, fmt.Errorf("loading filter chain fingerprint: %w: %w", esaerr.ErrStore, txnErr)
	}
	return fingerprint, ok, nil
}
