package store

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/openesa/esacore/internal/esaerr"
)

// LabelMap is the doc_id -> title lookup table spec.md §4.4 calls the
// "label file": a small, separately-persisted structure, not part of the
// term_* tables, since a query-time Session only needs it to turn the
// doc_ids in a concept vector back into human-readable labels (spec.md
// §4.7). Persisted with encoding/gob, matching the teacher's
// router_cache.go gobEncode/gobDecode convention for whole-structure
// checkpoint files.
type LabelMap struct {
	Titles map[uint32]string
}

// NewLabelMap returns an empty LabelMap ready for incremental population
// during ingest.
func NewLabelMap() *LabelMap {
	return &LabelMap{Titles: make(map[uint32]string)}
}

// Set records docID's title, overwriting any previous value.
func (m *LabelMap) Set(docID uint32, title string) {
	m.Titles[docID] = title
}

// Get returns docID's title, or "" and false if unknown.
func (m *LabelMap) Get(docID uint32) (string, bool) {
	t, ok := m.Titles[docID]
	return t, ok
}

// Len reports the number of recorded titles.
func (m *LabelMap) Len() int {
	return len(m.Titles)
}

// SaveLabelMap gob-encodes m to path, truncating any existing file. Called
// both at the end of ingest and, per spec.md §4.5's checkpointing note,
// periodically during a long-running ingest so a crash does not lose the
// whole label file.
func SaveLabelMap(path string, m *LabelMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating label file %s: %w: %w", path, esaerr.ErrStore, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encoding label file %s: %w: %w", path, esaerr.ErrStore, err)
	}
	return nil
}

// LoadLabelMap decodes a LabelMap previously written by SaveLabelMap.
func LoadLabelMap(path string) (*LabelMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening label file %s: %w: %w", path, esaerr.ErrStore, err)
	}
	defer f.Close()
	m := NewLabelMap()
	if err := gob.NewDecoder(f).Decode(m); err != nil {
		return nil, fmt.Errorf("decoding label file %s: %w: %w", path, esaerr.ErrStore, err)
	}
	return m, nil
}
