package corpus

import "testing"

func TestParseDocIDParsesDigits(t *testing.T) {
	got, err := parseDocID("12345")
	if err != nil {
		t.Fatalf("parseDocID() error = %v", err)
	}
	if got != 12345 {
		t.Fatalf("parseDocID() = %d, want 12345", got)
	}
}

func TestParseDocIDZero(t *testing.T) {
	got, err := parseDocID("0")
	if err != nil {
		t.Fatalf("parseDocID() error = %v", err)
	}
	if got != 0 {
		t.Fatalf("parseDocID() = %d, want 0", got)
	}
}

func TestParseDocIDRejectsNonNumeric(t *testing.T) {
	if _, err := parseDocID("12a"); err == nil {
		t.Fatal("expected an error for a non-numeric page id")
	}
}

func TestParseDocIDRejectsEmpty(t *testing.T) {
	if _, err := parseDocID(""); err == nil {
		t.Fatal("expected an error for an empty page id")
	}
}

func TestParseDocIDRejectsOverflow(t *testing.T) {
	if _, err := parseDocID("99999999999999999999"); err == nil {
		t.Fatal("expected an error for a page id that overflows uint32")
	}
}

func TestToDocumentStripsMarkupAndAssignsFields(t *testing.T) {
	s := &WikidumpSource{stripper: DefaultMarkupStripper{}}
	page := wikiPage{ID: "7", Title: "Apple"}
	page.Revision.Text = "An [[apple|fruit]] is tasty."

	doc, err := s.toDocument(page)
	if err != nil {
		t.Fatalf("toDocument() error = %v", err)
	}
	if doc.DocID != 7 || doc.Title != "Apple" {
		t.Fatalf("toDocument() = %+v", doc)
	}
	if doc.Body != "An fruit is tasty." {
		t.Fatalf("toDocument() body = %q", doc.Body)
	}
}

func TestToDocumentRejectsMissingTitle(t *testing.T) {
	s := &WikidumpSource{stripper: DefaultMarkupStripper{}}
	page := wikiPage{ID: "7", Title: ""}
	if _, err := s.toDocument(page); err == nil {
		t.Fatal("expected an error for a page with no title")
	}
}

func TestToDocumentRejectsInvalidID(t *testing.T) {
	s := &WikidumpSource{stripper: DefaultMarkupStripper{}}
	page := wikiPage{ID: "not-a-number", Title: "Apple"}
	if _, err := s.toDocument(page); err == nil {
		t.Fatal("expected an error for a non-numeric page id")
	}
}
