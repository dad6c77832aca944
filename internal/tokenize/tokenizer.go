package tokenize

import "regexp"

// runPattern matches maximal runs of letters and hyphens. Digits,
// punctuation, whitespace, and any non-ASCII rune all act as separators;
// empty runs are never produced by FindAllString.
var runPattern = regexp.MustCompile(`[A-Za-z-]+`)

// Tokenize splits raw document or query text into the maximal runs of
// [A-Za-z-]. This is the only tokenizer the core ships; it is intentionally
// not pluggable (spec.md §4.1 only makes the filter chain pluggable, not the
// tokenizer itself).
func Tokenize(text string) []string {
	return runPattern.FindAllString(text, -1)
}
