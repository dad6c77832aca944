// Package corpus streams reference documents from a compressed dump into
// the ESA build pipeline (spec.md §4.2, component C2).
package corpus

// Document is one reference-corpus record: a page's identifier, title, and
// cleaned body text. doc_id uniqueness across the corpus is assumed by the
// core, not enforced (spec.md §3).
type Document struct {
	DocID uint32
	Title string
	Body  string
}
