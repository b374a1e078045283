package metallic

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeIndex is returned when a sequence is evaluated at a negative index.
// Both sequences are defined only for m ≥ 0.
var ErrNegativeIndex = errors.New("sequence index must be non-negative")

// LucasNumber computes the m-th Lucas number L_m.
//
// Definition:
//
//	L_0 = 2, L_1 = 1, L_{m+1} = L_m + L_{m-1}
//
// The odd-indexed Lucas numbers L_{2k-1} = 1, 4, 11, 29, 76, ... parametrize
// the exceptional family of metallic means lying in ℚ(√5).
//
// Values grow exponentially (L_m ≈ φ^m), so the result is an exact big.Int
// rather than a fixed-width integer.
func LucasNumber(m int) (*big.Int, error) {
	if m < 0 {
		return nil, fmt.Errorf("lucas: %w (m=%d)", ErrNegativeIndex, m)
	}
	if m == 0 {
		return big.NewInt(2), nil
	}
	if m == 1 {
		return big.NewInt(1), nil
	}

	// Forward iteration carrying only the last two values.
	prev, curr := big.NewInt(2), big.NewInt(1)
	for i := 2; i <= m; i++ {
		prev, curr = curr, new(big.Int).Add(prev, curr)
	}
	return curr, nil
}

// FibonacciNumber computes the m-th Fibonacci number F_m.
//
// Definition:
//
//	F_0 = 0, F_1 = 1, F_{m+1} = F_m + F_{m-1}
//
// The odd-indexed Fibonacci numbers F_{2k-1} = 1, 2, 5, 13, 34, ... appear as
// the multipliers in the decomposition √(n²+4) = F_{2k-1}·√5 for n = L_{2k-1}.
func FibonacciNumber(m int) (*big.Int, error) {
	if m < 0 {
		return nil, fmt.Errorf("fibonacci: %w (m=%d)", ErrNegativeIndex, m)
	}
	if m == 0 {
		return big.NewInt(0), nil
	}
	if m == 1 {
		return big.NewInt(1), nil
	}

	prev, curr := big.NewInt(0), big.NewInt(1)
	for i := 2; i <= m; i++ {
		prev, curr = curr, new(big.Int).Add(prev, curr)
	}
	return curr, nil
}
