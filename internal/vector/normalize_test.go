package vector

import "testing"

func TestNormalizeL1DividesBySumOfWeights(t *testing.T) {
	pairs := []Pair{{DocID: 1, Weight: 3}, {DocID: 2, Weight: 1}}
	got := Normalize(pairs, L1)
	if got[0].Weight != 0.75 || got[1].Weight != 0.25 {
		t.Fatalf("unexpected L1-normalised weights: %+v", got)
	}
	var sum float32
	for _, p := range got {
		sum += p.Weight
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("expected weights to sum to 1, got %f", sum)
	}
}

func TestNormalizeL2DividesByEuclideanNorm(t *testing.T) {
	pairs := []Pair{{DocID: 1, Weight: 3}, {DocID: 2, Weight: 4}}
	got := Normalize(pairs, L2)
	if diff := got[0].Weight - 0.6; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected weight 0.6, got %f", got[0].Weight)
	}
	if diff := got[1].Weight - 0.8; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected weight 0.8, got %f", got[1].Weight)
	}
}

func TestNormalizeSingleEntryReducesToOne(t *testing.T) {
	pairs := []Pair{{DocID: 1, Weight: 42}}
	got := Normalize(pairs, L1)
	if got[0].Weight != 1.0 {
		t.Fatalf("expected single-entry group to normalise to weight 1, got %f", got[0].Weight)
	}
}

func TestNormalizeZeroSumSpreadsUniformly(t *testing.T) {
	// A single-document-corpus term: idf(t) == 0, so every tfidf collapses
	// to 0 before normalisation (spec.md §8 boundary case).
	pairs := []Pair{{DocID: 1, Weight: 0}}
	got := Normalize(pairs, L1)
	if got[0].Weight != 1.0 {
		t.Fatalf("expected the sole entry to normalise to weight 1, got %f", got[0].Weight)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	got := Normalize(nil, L1)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}
