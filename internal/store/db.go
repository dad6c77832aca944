// Package store implements the backing-store side of the ESA core: the
// external ordered key-value TermFrequencyStore (spec.md §4.3), the IDFTable
// (spec.md §4.4), and WordMap persistence. All three live in one BadgerDB
// directory — "the backing store file" of spec.md §6 — distinguished by a
// one-byte key prefix per logical table, mirroring the key-schema
// conventions the teacher uses for multiplexing several concerns onto one
// BadgerDB instance (graph/snapshot.go's "graph:snap:" prefixes,
// routing/router_cache.go's "routing/emb/v1/" prefix).
package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/openesa/esacore/internal/esaerr"
)

// Key-prefix bytes for the logical tables multiplexed onto one BadgerDB.
const (
	prefixTermRow    byte = 't' // doc_term_freq: term_id|invWeight|doc_id -> weight
	prefixDocSeen    byte = 'd' // distinct-doc marker: doc_id -> (empty)
	prefixIDF        byte = 'i' // term_idf: term_id -> idf
	prefixWord       byte = 'w' // term_wordmap: word -> term_id
	prefixConceptVec byte = 'c' // term: term_id -> packed (doc_id,weight) blob
	prefixMeta       byte = 'm' // build metadata: fixed meta keys -> value
)

// metaKeyFilterChain is the single key under prefixMeta holding the
// filter-chain fingerprint the build was run with (see FilterChain.
// Fingerprint in package tokenize). A query Session compares its own
// chain's fingerprint against this value and refuses to load on mismatch.
var metaKeyFilterChain = []byte{prefixMeta, 'f'}

// Store wraps a BadgerDB instance and exposes the ESA backing-store tables.
// It is the exclusive owner of the DB for the duration of a build (spec.md
// §3 Ownership); concept-index load at query time uses the same schema
// read-only.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a BadgerDB at dir, for either a build or
// a query session. It leaves existing content in place; dropping a prior
// build's tables is done separately by PrepareSchema.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening backing store at %s: %w: %w", dir, esaerr.ErrStore, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral, non-persistent store — used by tests and
// by the small-corpus examples in this package's own test suite.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory backing store: %w: %w", esaerr.ErrStore, err)
	}
	return &Store{db: db}, nil
}

// PrepareSchema drops every table this store owns, leaving an empty
// backing store ready for a fresh build (spec.md §4.5 Step 1: "Any prior
// build's tables are removed").
func (s *Store) PrepareSchema() error {
	for _, p := range []byte{prefixTermRow, prefixDocSeen, prefixIDF, prefixWord, prefixConceptVec, prefixMeta} {
		if err := s.db.DropPrefix([]byte{p}); err != nil {
			return fmt.Errorf("dropping table prefix %q: %w: %w", string(p), esaerr.ErrStore, err)
		}
	}
	return nil
}

// Close releases the underlying BadgerDB. Safe to call once; the caller
// must ensure no other goroutine uses the Store afterward.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing backing store: %w: %w", esaerr.ErrStore, err)
	}
	return nil
}
