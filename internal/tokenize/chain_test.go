package tokenize

import "testing"

func TestBuildFilterChainAppliesFiltersInOrder(t *testing.T) {
	chain, err := BuildFilterChain([]string{"lowercase", "stopwords"}, []string{"the"})
	if err != nil {
		t.Fatalf("BuildFilterChain() error = %v", err)
	}
	got := chain.Apply([]string{"The", "Quick", "Fox"})
	want := []string{"quick", "fox"}
	if len(got) != len(want) {
		t.Fatalf("chain.Apply() = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain.Apply() = %#v, want %#v", got, want)
		}
	}
}

func TestBuildFilterChainRejectsUnknownName(t *testing.T) {
	_, err := BuildFilterChain([]string{"nonsense"}, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown filter name")
	}
}

func TestFingerprintIsStableForSameChain(t *testing.T) {
	a, _ := BuildFilterChain([]string{"lowercase", "stem"}, nil)
	b, _ := BuildFilterChain([]string{"lowercase", "stem"}, nil)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("expected identical chains to fingerprint identically")
	}
}

func TestFingerprintDiffersForDifferentOrder(t *testing.T) {
	a, _ := BuildFilterChain([]string{"lowercase", "stem"}, nil)
	b, _ := BuildFilterChain([]string{"stem", "lowercase"}, nil)
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("expected chains with different order to fingerprint differently")
	}
}

func TestFingerprintDiffersForDifferentFilters(t *testing.T) {
	a, _ := BuildFilterChain([]string{"lowercase"}, nil)
	b, _ := BuildFilterChain([]string{"lowercase", "stem"}, nil)
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("expected chains with different filters to fingerprint differently")
	}
}
