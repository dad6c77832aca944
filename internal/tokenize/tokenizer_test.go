package tokenize

import (
	"reflect"
	"testing"
)

func TestTokenizeSplitsOnNonLetterRuns(t *testing.T) {
	got := Tokenize("The quick-brown fox jumps, over 123 lazy dogs!")
	want := []string{"The", "quick-brown", "fox", "jumps", "over", "lazy", "dogs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %#v, want %#v", got, want)
	}
}

func TestTokenizeEmptyString(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %#v", got)
	}
}

func TestTokenizeDropsPureDigitRuns(t *testing.T) {
	got := Tokenize("1999 was a year")
	want := []string{"was", "a", "year"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %#v, want %#v", got, want)
	}
}
