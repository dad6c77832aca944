package corpus

import "testing"

func TestStripRemovesComments(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("before <!-- hidden --> after")
	if got != "before   after" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripRemovesRefTags(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("fact<ref>citation text</ref> continues")
	if got != "fact  continues" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripRemovesSelfClosingRef(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("fact<ref name=\"x\"/> continues")
	if got != "fact  continues" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripRemovesTemplates(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("intro {{Infobox person}} body")
	if got != "intro   body" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripUnwrapsWikiLinksKeepingDisplayText(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("see [[Target page|display text]] here")
	if got != "see display text here" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripUnwrapsBareWikiLinks(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("see [[Target]] here")
	if got != "see Target here" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripRemovesExternalLinks(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("source [http://example.com site] noted")
	if got != "source   noted" {
		t.Fatalf("Strip() = %q", got)
	}
}

func TestStripRemovesHeadingMarkers(t *testing.T) {
	got := DefaultMarkupStripper{}.Strip("== History ==")
	if got != "  History  " {
		t.Fatalf("Strip() = %q", got)
	}
}
