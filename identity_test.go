package metallic

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestVerifyErranteIdentity_Family(t *testing.T) {
	prec := NewPrecision(40)
	for k := 1; k <= 7; k++ {
		res, err := VerifyErranteIdentity(k, prec)
		require.NoError(t, err, "k=%d", k)
		assert.True(t, res.Valid, "k=%d: |φ_n − φ^%d| = %s", k, 2*k-1, res.Diff)
		assert.Equal(t, 40, res.Precision)

		// Diff below the declared tolerance, not merely Valid.
		tol := apd.New(1, -40)
		assert.Negative(t, res.Diff.Cmp(tol), "k=%d: diff %s not below 1e-40", k, res.Diff)
	}
}

func TestVerifyErranteIdentity_TrivialBaseCase(t *testing.T) {
	// k=1 reduces to φ_1 = φ^1.
	res, err := VerifyErranteIdentity(1, NewPrecision(50))
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, res.Left.String(), res.Right.String(),
		"φ_1 and φ^1 should agree digit for digit at the elevated precision")
}

func TestVerifyErranteIdentity_DomainErrors(t *testing.T) {
	_, err := VerifyErranteIdentity(0, NewPrecision(30))
	require.Error(t, err)

	_, err = VerifyErranteIdentity(-2, NewPrecision(30))
	require.Error(t, err)

	_, err = VerifyErranteIdentity(3, NewPrecision(0))
	require.ErrorIs(t, err, ErrInvalidPrecision)
}

// TestVerifyErranteIdentity_PrecisionRange verifies the identity across the
// documented precision range p ∈ [10, 100] for every family member k ≤ 7.
func TestVerifyErranteIdentity_PrecisionRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 7).Draw(t, "k")
		digits := rapid.IntRange(10, 100).Draw(t, "digits")

		res, err := VerifyErranteIdentity(k, NewPrecision(digits))
		if err != nil {
			t.Fatalf("k=%d digits=%d: %v", k, digits, err)
		}
		if !res.Valid {
			t.Fatalf("identity failed at k=%d digits=%d: |diff| = %s", k, digits, res.Diff)
		}
		if res.Diff.Cmp(apd.New(1, int32(-digits))) >= 0 {
			t.Fatalf("diff %s not below 1e-%d", res.Diff, digits)
		}
	})
}

func TestVerifyErranteIdentity_ReportsOperands(t *testing.T) {
	// Near-miss diagnosis needs both operands, not just the verdict.
	res, err := VerifyErranteIdentity(3, NewPrecision(25))
	require.NoError(t, err)
	require.NotNil(t, res.Left)
	require.NotNil(t, res.Right)
	require.NotNil(t, res.Diff)

	// n = L_5 = 11, so both sides are φ_11 ≈ 11.09.
	low, high := apd.New(11, 0), apd.New(12, 0)
	assert.Positive(t, res.Left.Cmp(low))
	assert.Negative(t, res.Left.Cmp(high))
	assert.Positive(t, res.Right.Cmp(low))
	assert.Negative(t, res.Right.Cmp(high))
}
