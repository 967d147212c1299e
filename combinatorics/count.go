package combinatorics

import (
	"math/big"

	"github.com/katalvlaran/combinat/numtheory"
)

// NChooseK returns C(n, k), the number of combinations KCombinations
// produces for an n-element collection and a scalar k without repetition.
// It is 0 outside 0 ≤ k ≤ n.
func NChooseK(n, k int) *big.Int {
	return numtheory.Binomial(n, k)
}

// NMultichooseK returns C(n+k-1, k), the number of multicombinations of
// size k over n kinds. NMultichooseK(0, 0) is 1.
func NMultichooseK(n, k int) *big.Int {
	return numtheory.Multichoose(n, k)
}
