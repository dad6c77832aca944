package vector

import "math"

// NormalizationMode selects the vector-emission normalisation rule.
// spec.md §9 open question 1: the reference implementation's
// normalize_vector divides by the sum of weights (L1) despite its name
// suggesting L2; this core keeps that behavior as the default for
// bit-compatible index output, and exposes L2 as an explicit alternative
// for callers who want true cosine-invariant stored vectors.
type NormalizationMode int

const (
	// L1 divides every weight by the sum of weights in the group — the
	// reference implementation's actual behavior.
	L1 NormalizationMode = iota
	// L2 divides every weight by the Euclidean norm of the group.
	L2
)

// Normalize rescales pairs in place per mode and returns the same slice.
// Weights are strictly positive tf values, but after multiplying by idf(t)
// they degenerate to all-zero whenever idf(t) == 0 (the single-document
// corpus boundary, spec.md §8: "idf is 0 for every term"). A zero-sum group
// can't be divided, so it is instead spread uniformly — every entry gets
// weight 1/len(pairs), which for the single-document case (always exactly
// one entry per term) reduces to the documented weight of 1.
func Normalize(pairs []Pair, mode NormalizationMode) []Pair {
	if len(pairs) == 0 {
		return pairs
	}
	var denom float64
	switch mode {
	case L2:
		var sumSquares float64
		for _, p := range pairs {
			sumSquares += float64(p.Weight) * float64(p.Weight)
		}
		denom = math.Sqrt(sumSquares)
	default:
		var sum float64
		for _, p := range pairs {
			sum += float64(p.Weight)
		}
		denom = sum
	}
	if denom == 0 {
		uniform := float32(1.0 / float64(len(pairs)))
		for i := range pairs {
			pairs[i].Weight = uniform
		}
		return pairs
	}
	for i := range pairs {
		pairs[i].Weight = float32(float64(pairs[i].Weight) / denom)
	}
	return pairs
}
