package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns (a + b/2)/b, round-to-nearest with ties up for positives.
// Negative numerators truncate toward zero after the bias is added.
// b == 0 yields 0.
func RoundDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}
