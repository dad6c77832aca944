package tokenize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/openesa/esacore/internal/esaerr"
)

// FilterChain is an ordered composition of TokenTransformers, configured
// once per build/query run and applied identically on both sides (spec.md
// §4.1). It is the only thing that turns a raw tokenized run into the
// normalized terms the rest of the pipeline interns and looks up.
type FilterChain struct {
	filters []TokenTransformer
}

// NewFilterChain builds a FilterChain from an ordered list of transformers.
func NewFilterChain(filters ...TokenTransformer) FilterChain {
	return FilterChain{filters: filters}
}

// Apply runs the raw token sequence through every filter in order.
func (c FilterChain) Apply(tokens []string) []string {
	for _, f := range c.filters {
		tokens = f.Transform(tokens)
	}
	return tokens
}

// Fingerprint returns a stable hash of the chain's ordered filter names.
// A build's index and a query session must report the same fingerprint;
// mismatches are a config error (spec.md §7 ErrConfig), not something to
// silently tolerate, since a query against vocabulary interned under a
// different chain would silently produce meaningless lookups.
func (c FilterChain) Fingerprint() string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	h := sha256.Sum256([]byte(strings.Join(names, "|")))
	return hex.EncodeToString(h[:])
}

// BuildFilterChain constructs a FilterChain from configured filter names in
// order. Recognized names: "lowercase", "stem", "stopwords", "identity".
// stopwords pulls its word list from stopwordList; an empty list still
// installs the filter (it will simply remove nothing).
func BuildFilterChain(names []string, stopwordList []string) (FilterChain, error) {
	filters := make([]TokenTransformer, 0, len(names))
	for _, name := range names {
		switch name {
		case "lowercase":
			filters = append(filters, LowercaseFilter{})
		case "stem":
			filters = append(filters, StemFilter{})
		case "stopwords":
			filters = append(filters, NewStopwordsFilter(stopwordList))
		case "identity":
			filters = append(filters, IdentityFilter{})
		default:
			return FilterChain{}, fmt.Errorf("unknown filter %q: %w", name, esaerr.ErrConfig)
		}
	}
	return NewFilterChain(filters...), nil
}
