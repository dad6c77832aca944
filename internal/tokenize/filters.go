package tokenize

import (
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// TokenTransformer is a pure sequence-of-token → sequence-of-token mapping.
// The canonical chain (spec.md §4.1) composes four of these in order:
// Lowercase, Stem, RemoveStopwords, Identity. Builders and queriers must
// configure the same ordered chain, or the resulting index is not valid for
// that query session (enforced via FilterChain.Fingerprint, see chain.go).
type TokenTransformer interface {
	// Name identifies the transformer for config parsing and fingerprinting.
	Name() string
	// Transform maps one token sequence to another. Implementations must
	// not mutate the input slice's backing array.
	Transform(tokens []string) []string
}

// LowercaseFilter lowercases every token.
type LowercaseFilter struct{}

func (LowercaseFilter) Name() string { return "lowercase" }

func (LowercaseFilter) Transform(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

// StemFilter reduces each token to its Porter stem.
type StemFilter struct{}

func (StemFilter) Name() string { return "stem" }

func (StemFilter) Transform(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = porterstemmer.StemString(t)
	}
	return out
}

// StopwordsFilter removes tokens present in a fixed set.
type StopwordsFilter struct {
	set map[string]struct{}
}

// NewStopwordsFilter builds a StopwordsFilter from a word list. Words are
// taken verbatim (the caller is responsible for matching case/stem
// conventions — typically this filter runs after LowercaseFilter and
// StemFilter in the chain, so the supplied words should already be
// lowercased/stemmed).
func NewStopwordsFilter(words []string) StopwordsFilter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return StopwordsFilter{set: set}
}

func (StopwordsFilter) Name() string { return "stopwords" }

func (f StopwordsFilter) Transform(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, excluded := f.set[t]; excluded {
			continue
		}
		out = append(out, t)
	}
	return out
}

// IdentityFilter passes tokens through unchanged.
//
// This corresponds to the reference implementation's filter_gibberish stage
// (spec.md §9 Q3): its intent there was never resolved, so it is kept here
// as a literal extension point rather than special-cased away. A caller
// that later wants to reject likely-garbage tokens (non-dictionary runs,
// repeated-character noise) can implement TokenTransformer and slot it in
// at this chain position without touching the rest of the pipeline.
type IdentityFilter struct{}

func (IdentityFilter) Name() string { return "identity" }

func (IdentityFilter) Transform(tokens []string) []string {
	return tokens
}
