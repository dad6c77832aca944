package corpus

import "regexp"

// MarkupStripper cleans raw revision text before it reaches the
// TokenPipeline. Pluggable per spec.md §1: "the decompression codec and XML
// parser are treated as a byte-stream → document-stream adapter" and the
// wiki-markup stripper is explicitly a pluggable transformer in the
// original implementation's wiki_extractor.clean.
type MarkupStripper interface {
	Strip(raw string) string
}

// DefaultMarkupStripper removes the most common MediaWiki wiki-markup
// constructs (templates, wiki-links' target half, refs, HTML comments,
// section headers' equals signs) so that the remaining prose dominates the
// token stream. It is deliberately conservative: anything it doesn't
// recognize is left as-is and filtered out downstream by the tokenizer's
// [A-Za-z-] character class regardless.
type DefaultMarkupStripper struct{}

var (
	reComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reTemplate  = regexp.MustCompile(`(?s)\{\{[^{}]*\}\}`)
	reRef       = regexp.MustCompile(`(?s)<ref[^>]*>.*?</ref>`)
	reRefSelf   = regexp.MustCompile(`<ref[^>]*/>`)
	reTag       = regexp.MustCompile(`(?s)<[^>]+>`)
	reWikiLink  = regexp.MustCompile(`\[\[(?:[^|\]]*\|)?([^\]]*)\]\]`)
	reExtLink   = regexp.MustCompile(`\[[^\]]*\]`)
	reHeading   = regexp.MustCompile(`=+`)
)

// Strip applies a fixed sequence of regex substitutions. Order matters:
// refs and templates are removed before wiki-links are unwrapped, so a
// template or ref nested inside a link's display text doesn't leak into
// the output.
func (DefaultMarkupStripper) Strip(raw string) string {
	s := reComment.ReplaceAllString(raw, " ")
	s = reRef.ReplaceAllString(s, " ")
	s = reRefSelf.ReplaceAllString(s, " ")
	s = reTemplate.ReplaceAllString(s, " ")
	s = reWikiLink.ReplaceAllString(s, "$1")
	s = reExtLink.ReplaceAllString(s, " ")
	s = reTag.ReplaceAllString(s, " ")
	s = reHeading.ReplaceAllString(s, " ")
	return s
}
