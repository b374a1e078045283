package metallic

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLucasNumber_KnownValues(t *testing.T) {
	known := map[int]int64{
		0: 2, 1: 1, 2: 3, 3: 4, 4: 7, 5: 11, 7: 29, 13: 521,
	}
	for m, want := range known {
		got, err := LucasNumber(m)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(big.NewInt(want)), "L_%d = %s, want %d", m, got, want)
	}
}

func TestFibonacciNumber_KnownValues(t *testing.T) {
	known := map[int]int64{
		0: 0, 1: 1, 2: 1, 3: 2, 5: 5, 7: 13, 11: 89,
	}
	for m, want := range known {
		got, err := FibonacciNumber(m)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(big.NewInt(want)), "F_%d = %s, want %d", m, got, want)
	}
}

func TestSequences_NegativeIndex(t *testing.T) {
	_, err := LucasNumber(-1)
	require.ErrorIs(t, err, ErrNegativeIndex)

	_, err = FibonacciNumber(-5)
	require.ErrorIs(t, err, ErrNegativeIndex)
}

// TestSequences_RecurrenceProperty checks S_m = S_{m-1} + S_{m-2} for random
// indices, well past the int64 overflow point (F_93 and L_91 exceed int64).
func TestSequences_RecurrenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.IntRange(2, 400).Draw(t, "m")

		for _, seq := range []func(int) (*big.Int, error){LucasNumber, FibonacciNumber} {
			a, err := seq(m - 2)
			if err != nil {
				t.Fatalf("seq(%d): %v", m-2, err)
			}
			b, err := seq(m - 1)
			if err != nil {
				t.Fatalf("seq(%d): %v", m-1, err)
			}
			c, err := seq(m)
			if err != nil {
				t.Fatalf("seq(%d): %v", m, err)
			}
			if sum := new(big.Int).Add(a, b); sum.Cmp(c) != 0 {
				t.Fatalf("recurrence violated at m=%d: %s + %s != %s", m, a, b, c)
			}
		}
	})
}

// TestSequences_LucasFromFibonacci checks the cross identity
// L_m = F_{m-1} + F_{m+1}, tying the two sequences together.
func TestSequences_LucasFromFibonacci(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.IntRange(1, 300).Draw(t, "m")

		l, err := LucasNumber(m)
		if err != nil {
			t.Fatalf("L_%d: %v", m, err)
		}
		fPrev, err := FibonacciNumber(m - 1)
		if err != nil {
			t.Fatalf("F_%d: %v", m-1, err)
		}
		fNext, err := FibonacciNumber(m + 1)
		if err != nil {
			t.Fatalf("F_%d: %v", m+1, err)
		}
		if sum := new(big.Int).Add(fPrev, fNext); sum.Cmp(l) != 0 {
			t.Fatalf("L_%d = %s, but F_%d + F_%d = %s", m, l, m-1, m+1, sum)
		}
	})
}

func TestSequences_NoPartialResultOnError(t *testing.T) {
	got, err := LucasNumber(-3)
	require.Error(t, err)
	require.Nil(t, got)
	require.True(t, errors.Is(err, ErrNegativeIndex))
}
