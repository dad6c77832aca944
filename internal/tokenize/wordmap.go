package tokenize

import "sync"

// WordMap interns surface strings into dense term ids assigned in insertion
// order, starting at 0 (spec.md §3's Token invariant). During a build,
// Intern auto-assigns ids for unseen words; at query time, Lookup never
// inserts.
type WordMap struct {
	mu      sync.RWMutex
	byWord  map[string]uint32
	byID    []string
	sealed  bool
}

// NewWordMap returns an empty, unsealed WordMap ready for interning.
func NewWordMap() *WordMap {
	return &WordMap{byWord: make(map[string]uint32)}
}

// Intern returns the term id for word, assigning a new one if word has not
// been seen before. Panics if called after Seal — a sealed WordMap is the
// query-time, read-only representation loaded from a backing store.
func (m *WordMap) Intern(word string) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sealed {
		panic("tokenize: Intern called on a sealed WordMap")
	}
	if id, ok := m.byWord[word]; ok {
		return id
	}
	id := uint32(len(m.byID))
	m.byWord[word] = id
	m.byID = append(m.byID, word)
	return id
}

// Lookup returns the term id for word without inserting it. Used at query
// time, where an unknown word contributes an empty concept vector.
func (m *WordMap) Lookup(word string) (uint32, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byWord[word]
	return id, ok
}

// Word returns the surface string for a term id, or "" if out of range.
func (m *WordMap) Word(id uint32) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(id) >= len(m.byID) {
		return "", false
	}
	return m.byID[id], true
}

// Len returns the number of distinct interned terms.
func (m *WordMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Seal marks the WordMap read-only. Intern panics after Seal; Lookup and
// Word remain usable. Used when a WordMap is reconstructed from a backing
// store for query-time use.
func (m *WordMap) Seal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sealed = true
}

// Entries returns every (word, term_id) pair in id order, for persistence.
func (m *WordMap) Entries() []WordEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]WordEntry, len(m.byID))
	for id, word := range m.byID {
		out[id] = WordEntry{Word: word, TermID: uint32(id)}
	}
	return out
}

// LoadEntries rebuilds a WordMap from previously persisted (word, term_id)
// pairs. The caller is responsible for calling Seal afterward if the map is
// to be used read-only.
func LoadEntries(entries []WordEntry) *WordMap {
	m := NewWordMap()
	for _, e := range entries {
		m.byWord[e.Word] = e.TermID
		for int(e.TermID) >= len(m.byID) {
			m.byID = append(m.byID, "")
		}
		m.byID[e.TermID] = e.Word
	}
	return m
}

// WordEntry is one persisted (surface, term_id) row.
type WordEntry struct {
	Word   string
	TermID uint32
}
