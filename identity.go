package metallic

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Verification records the outcome of comparing two high-precision reals that
// are mathematically claimed equal. Both operands and their difference are
// retained so callers can diagnose near-misses: a Diff just above tolerance
// means "precision too low", a Diff orders of magnitude above it means
// "identity false".
type Verification struct {
	Valid     bool         // Diff < 10^(−Precision)
	Left      *apd.Decimal // Left-hand operand
	Right     *apd.Decimal // Right-hand operand
	Diff      *apd.Decimal // |Left − Right|
	Precision int          // Significant digits the comparison was requested at
}

// VerifyErranteIdentity verifies the identity
//
//	φ_{L_{2k−1}} = φ^{2k−1}
//
// for a given k ≥ 1: the metallic mean whose parameter is the (2k−1)-th Lucas
// number equals the golden mean raised to the (2k−1)-th power. These are the
// only metallic means that are powers of φ, which is what places them in ℚ(√5).
//
// Both sides are computed at prec.Digits+GuardDigits significant digits; the
// comparison tolerance 10^(−prec.Digits) is governed by the requested
// precision alone. The right-hand side is built by repeated multiplication of
// the golden-mean constant rather than a general power function.
//
// k=1 reduces to φ_1 = φ^1, the trivial base case of the family, and must
// hold within tolerance like every other member.
func VerifyErranteIdentity(k int, prec Precision) (Verification, error) {
	if err := prec.validate(); err != nil {
		return Verification{}, err
	}
	if k < 1 {
		return Verification{}, fmt.Errorf("identity: family index k must be at least 1 (got %d)", k)
	}

	idx := 2*k - 1
	n, err := LucasNumber(idx)
	if err != nil {
		return Verification{}, err
	}

	// Both operands at elevated precision so the guard absorbs the rounding
	// error of the square root and of the repeated multiplication.
	elevated := prec.Elevated()

	left, err := MetallicMeanInt(n, elevated)
	if err != nil {
		return Verification{}, err
	}

	ctx := elevated.workingContext()
	phi, err := goldenMean(ctx)
	if err != nil {
		return Verification{}, err
	}
	right, err := powInt(ctx, phi, idx)
	if err != nil {
		return Verification{}, err
	}
	if err := elevated.round(right); err != nil {
		return Verification{}, err
	}

	diff := new(apd.Decimal)
	if _, err := ctx.Sub(diff, left, right); err != nil {
		return Verification{}, fmt.Errorf("identity: %w", err)
	}
	if _, err := ctx.Abs(diff, diff); err != nil {
		return Verification{}, fmt.Errorf("identity: %w", err)
	}

	return Verification{
		Valid:     diff.Cmp(prec.tolerance()) < 0,
		Left:      left,
		Right:     right,
		Diff:      diff,
		Precision: prec.Digits,
	}, nil
}
