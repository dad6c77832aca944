package tokenize

// Pipeline turns raw text into a sequence of normalized, interned term ids.
// It owns the WordMap handed to it at construction (spec.md §3's ownership
// note: the word map and TF store are exclusively owned by the builder
// during build).
type Pipeline struct {
	chain    FilterChain
	wordMap  *WordMap
	build    bool // true: Intern on miss. false (query mode): Lookup only.
}

// NewBuildPipeline returns a Pipeline that interns unseen words into
// wordMap as it tokenizes.
func NewBuildPipeline(chain FilterChain, wordMap *WordMap) *Pipeline {
	return &Pipeline{chain: chain, wordMap: wordMap, build: true}
}

// NewQueryPipeline returns a Pipeline that only looks up words already in
// wordMap; unknown words are dropped from the returned id sequence (spec.md
// §4.7 treats an unknown token as an empty concept vector contribution).
func NewQueryPipeline(chain FilterChain, wordMap *WordMap) *Pipeline {
	return &Pipeline{chain: chain, wordMap: wordMap, build: false}
}

// Chain returns the pipeline's configured filter chain, for fingerprint
// comparison between a build and a query session.
func (p *Pipeline) Chain() FilterChain {
	return p.chain
}

// TermIDs tokenizes text, runs it through the filter chain, and returns the
// resulting term ids. In build mode, every surviving token is interned
// (assigned an id on first sight). In query mode, tokens absent from the
// word map are silently dropped.
func (p *Pipeline) TermIDs(text string) []uint32 {
	tokens := p.chain.Apply(Tokenize(text))
	ids := make([]uint32, 0, len(tokens))
	for _, tok := range tokens {
		if p.build {
			ids = append(ids, p.wordMap.Intern(tok))
			continue
		}
		if id, ok := p.wordMap.Lookup(tok); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// TermFrequencies tokenizes text and returns the raw occurrence count of
// each resulting term id — the Counter of spec.md §4.5 step 2.
func (p *Pipeline) TermFrequencies(text string) map[uint32]uint32 {
	ids := p.TermIDs(text)
	counts := make(map[uint32]uint32, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	return counts
}

// WordMap returns the pipeline's backing word map.
func (p *Pipeline) WordMap() *WordMap {
	return p.wordMap
}

// Words tokenizes text and runs it through the filter chain, returning the
// surviving surface words directly — no WordMap translation. This is the
// same transformation ESAQuery's GetVector applies (via FilterChain.Apply
// and Tokenize): ConceptIndex is keyed by surface word (spec.md §4.6 Load),
// so a query never needs a term_id round-trip.
func (p *Pipeline) Words(text string) []string {
	return p.chain.Apply(Tokenize(text))
}
