package store

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
	"github.com/openesa/esacore/internal/tokenize"
)

func wordKey(word string) []byte {
	key := make([]byte, 1+len(word))
	key[0] = prefixWord
	copy(key[1:], word)
	return key
}

// SaveWordMap persists every (word, term_id) entry of a sealed WordMap
// under the term_wordmap prefix (spec.md §4.4's "term_wordmap" table).
func (s *Store) SaveWordMap(_ context.Context, wm *tokenize.WordMap) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, e := range wm.Entries() {
		val := make([]byte, 4)
		binary.BigEndian.PutUint32(val, e.TermID)
		if err := wb.Set(wordKey(e.Word), val); err != nil {
			return fmt.Errorf("saving word %q: %w: %w", e.Word, esaerr.ErrStore, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flushing word map: %w: %w", esaerr.ErrStore, err)
	}
	return nil
}

// LoadWordMap reconstructs a sealed WordMap from the backing store.
func (s *Store) LoadWordMap(_ context.Context) (*tokenize.WordMap, error) {
	var entries []tokenize.WordEntry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixWord}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte{prefixWord}); it.ValidForPrefix([]byte{prefixWord}); it.Next() {
			item := it.Item()
			word := string(item.Key()[1:])
			err := item.Value(func(val []byte) error {
				entries = append(entries, tokenize.WordEntry{
					Word:   word,
					TermID: binary.BigEndian.Uint32(val),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading word map: %w: %w", esaerr.ErrStore, err)
	}
	wm := tokenize.LoadEntries(entries)
	wm.Seal()
	return wm, nil
}
