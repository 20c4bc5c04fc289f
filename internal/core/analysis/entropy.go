package analysis

import (
	"math"
	"math/big"
)

// EntropyBits computes length*log2(totalSpace) minus the accumulated pattern
// penalty, clamped at zero. A zero length or zero space yields zero bits.
func EntropyBits(length, totalSpace int, penalty float64) float64 {
	if length == 0 || totalSpace == 0 {
		return 0
	}
	raw := float64(length) * math.Log2(float64(totalSpace))
	return math.Max(0, raw-penalty)
}

// Combinations returns totalSpace^length as an exact integer. Long passwords
// over large alphabets exceed 64-bit range, and the brute-force estimator
// depends on the exact magnitude.
func Combinations(totalSpace, length int) *big.Int {
	return new(big.Int).Exp(
		big.NewInt(int64(totalSpace)),
		big.NewInt(int64(length)),
		nil,
	)
}
