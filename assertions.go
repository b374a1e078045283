package metallic

import (
	"math/big"
	"testing"
)

// AssertionConfig contains thresholds for identity and classification checks.
type AssertionConfig struct {
	// Significant digits for identity verification
	Digits int

	// Largest family index k checked by AssertIdentityFamily
	MaxK int

	// Odd Fibonacci indices searched during classification
	SearchBound int
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Digits:      40, // Well past float64 territory
		MaxK:        7,  // Covers the exceptional set {1,4,11,29,76,199,521}
		SearchBound: DefaultSearchBound,
	}
}

// AssertIdentityFamily verifies φ_{L_{2k−1}} = φ^{2k−1} for k = 1..cfg.MaxK.
//
// A failure with Diff just above 10^(−Digits) means the requested precision is
// too low, not that the identity is false; the difference is logged so the two
// cases can be told apart.
func AssertIdentityFamily(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	for k := 1; k <= cfg.MaxK; k++ {
		res, err := VerifyErranteIdentity(k, NewPrecision(cfg.Digits))
		if err != nil {
			t.Fatalf("Identity verification failed for k=%d: %v", k, err)
		}
		if !res.Valid {
			t.Errorf("Identity violated at k=%d: |φ_n − φ^%d| = %s (tolerance 1e-%d)",
				k, 2*k-1, res.Diff, cfg.Digits)
			continue
		}
		t.Logf("✓ k=%d: φ_{L_%d} = φ^%d within 1e-%d (|diff| = %s)",
			k, 2*k-1, 2*k-1, cfg.Digits, res.Diff)
	}
}

// AssertFieldMembership verifies that classification of n agrees with want.
func AssertFieldMembership(t *testing.T, n int64, want bool, cfg AssertionConfig) {
	t.Helper()

	res := Classifier{SearchBound: cfg.SearchBound}.Classify(n)
	if res.InField != want {
		t.Errorf("Classification of n=%d: InField=%v, want %v (%s)",
			n, res.InField, want, res.Explanation)
		return
	}
	t.Logf("✓ n=%d: InField=%v (%s)", n, res.InField, res.Explanation)
}

// AssertSequenceRecurrence verifies S_m = S_{m−1} + S_{m−2} for m = 2..maxM.
// Works for any sequence satisfying the additive recurrence.
func AssertSequenceRecurrence(t *testing.T, seq func(int) (*big.Int, error), maxM int) {
	t.Helper()

	for m := 2; m <= maxM; m++ {
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
			t.Errorf("Recurrence violated at m=%d: %s + %s = %s, got %s", m, a, b, sum, c)
		}
	}
	t.Logf("✓ Additive recurrence holds for m = 2..%d", maxM)
}

// AssertBinetConsistency verifies the closed-form reconstruction of F_m and
// L_m against the exact recurrence values. This is the oracle tying the
// arithmetic engine to the sequence engine: two independent computation paths
// that must agree, one never touching the irrational constant.
func AssertBinetConsistency(t *testing.T, m int, cfg AssertionConfig) {
	t.Helper()

	prec := NewPrecision(cfg.Digits)

	fib, err := VerifyBinetFibonacci(m, prec)
	if err != nil {
		t.Fatalf("Binet Fibonacci cross-check failed for m=%d: %v", m, err)
	}
	if !fib.Valid {
		t.Errorf("Binet F_%d disagrees with recurrence: |diff| = %s", m, fib.Diff)
	}

	luc, err := VerifyBinetLucas(m, prec)
	if err != nil {
		t.Fatalf("Binet Lucas cross-check failed for m=%d: %v", m, err)
	}
	if !luc.Valid {
		t.Errorf("Binet L_%d disagrees with recurrence: |diff| = %s", m, luc.Diff)
	}

	if fib.Valid && luc.Valid {
		t.Logf("✓ Binet formulas reproduce F_%d and L_%d within 1e-%d", m, m, cfg.Digits)
	}
}
