package metallic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// GuardDigits is the fixed number of extra significant digits carried during
// intermediate computation and discarded at the final rounding step.
//
// The constants involve an irrational square root; without the guard, the
// truncation error of √5 (or √(n²+4)) would leak into the last reported
// digits. Five extra digits is the documented discipline of this engine:
// a fixed guard, not a ratio of the requested precision.
const GuardDigits = 5

// ErrInvalidPrecision is returned when a computation is requested at fewer
// than one significant digit.
var ErrInvalidPrecision = errors.New("precision must be at least 1 significant digit")

// Precision is an immutable arithmetic configuration threaded explicitly
// through every call. It is never stored as ambient process state: concurrent
// callers requesting different precisions must not corrupt each other.
type Precision struct {
	Digits int // Significant digits in the reported result
	Guard  int // Extra working digits discarded at the final rounding
}

// NewPrecision returns a Precision with the standard guard.
func NewPrecision(digits int) Precision {
	return Precision{Digits: digits, Guard: GuardDigits}
}

func (p Precision) validate() error {
	if p.Digits < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPrecision, p.Digits)
	}
	return nil
}

// working returns the significant digits used during computation.
func (p Precision) working() uint32 {
	return uint32(p.Digits + p.Guard)
}

// Elevated returns a Precision whose reported digits are this one's working
// digits. Used when a result feeds a further comparison: both operands are
// produced at the elevated precision so that the comparison tolerance is
// governed by the original Digits.
func (p Precision) Elevated() Precision {
	return Precision{Digits: p.Digits + p.Guard, Guard: p.Guard}
}

// tolerance returns 10^(-Digits), the equality threshold at this precision.
func (p Precision) tolerance() *apd.Decimal {
	return apd.New(1, int32(-p.Digits))
}

// workingContext returns a decimal context at the working (guarded) precision.
func (p Precision) workingContext() *apd.Context {
	return apd.BaseContext.WithPrecision(p.working())
}

// round rounds d down to the reported precision, in place.
func (p Precision) round(d *apd.Decimal) error {
	_, err := apd.BaseContext.WithPrecision(uint32(p.Digits)).Round(d, d)
	return err
}

// GoldenMean computes φ = (1+√5)/2, correctly rounded to prec.Digits
// significant digits.
//
// The square root is apd's correctly-rounded arbitrary-precision Sqrt; a
// float64 approximation would cap meaningful precision at ~15 digits.
// Deterministic: equal inputs yield byte-identical decimal output.
func GoldenMean(prec Precision) (*apd.Decimal, error) {
	if err := prec.validate(); err != nil {
		return nil, err
	}
	phi, err := goldenMean(prec.workingContext())
	if err != nil {
		return nil, err
	}
	if err := prec.round(phi); err != nil {
		return nil, err
	}
	return phi, nil
}

// MetallicMean computes φ_n = (n + √(n²+4))/2, the positive root of
// x² − n·x − 1 = 0, correctly rounded to prec.Digits significant digits.
//
// φ_1 is the golden mean; φ_2 the silver mean. For n > 0, φ_n > n.
func MetallicMean(n *apd.Decimal, prec Precision) (*apd.Decimal, error) {
	if err := prec.validate(); err != nil {
		return nil, err
	}
	phi, err := metallicMean(prec.workingContext(), n)
	if err != nil {
		return nil, err
	}
	if err := prec.round(phi); err != nil {
		return nil, err
	}
	return phi, nil
}

// MetallicMeanInt computes φ_n for an exact integer parameter n. This is the
// path taken by the identity engine, whose parameters are Lucas numbers of
// unbounded magnitude.
func MetallicMeanInt(n *big.Int, prec Precision) (*apd.Decimal, error) {
	return MetallicMean(decimalFromBig(n), prec)
}

// MetallicMeanInt64 computes φ_n for a small integer parameter n.
func MetallicMeanInt64(n int64, prec Precision) (*apd.Decimal, error) {
	return MetallicMean(apd.New(n, 0), prec)
}

// goldenMean computes (1+√5)/2 at the context's precision, unrounded.
func goldenMean(ctx *apd.Context) (*apd.Decimal, error) {
	sqrt5 := new(apd.Decimal)
	if _, err := ctx.Sqrt(sqrt5, apd.New(5, 0)); err != nil {
		return nil, fmt.Errorf("golden mean: %w", err)
	}
	phi := new(apd.Decimal)
	if _, err := ctx.Add(phi, apd.New(1, 0), sqrt5); err != nil {
		return nil, fmt.Errorf("golden mean: %w", err)
	}
	if _, err := ctx.Quo(phi, phi, apd.New(2, 0)); err != nil {
		return nil, fmt.Errorf("golden mean: %w", err)
	}
	return phi, nil
}

// metallicMean computes (n+√(n²+4))/2 at the context's precision, unrounded.
func metallicMean(ctx *apd.Context, n *apd.Decimal) (*apd.Decimal, error) {
	disc := new(apd.Decimal)
	if _, err := ctx.Mul(disc, n, n); err != nil {
		return nil, fmt.Errorf("metallic mean: %w", err)
	}
	if _, err := ctx.Add(disc, disc, apd.New(4, 0)); err != nil {
		return nil, fmt.Errorf("metallic mean: %w", err)
	}
	if _, err := ctx.Sqrt(disc, disc); err != nil {
		return nil, fmt.Errorf("metallic mean: %w", err)
	}
	phi := new(apd.Decimal)
	if _, err := ctx.Add(phi, n, disc); err != nil {
		return nil, fmt.Errorf("metallic mean: %w", err)
	}
	if _, err := ctx.Quo(phi, phi, apd.New(2, 0)); err != nil {
		return nil, fmt.Errorf("metallic mean: %w", err)
	}
	return phi, nil
}

// powInt raises base to a non-negative integer exponent by repeated
// multiplication at the context's precision.
func powInt(ctx *apd.Context, base *apd.Decimal, exp int) (*apd.Decimal, error) {
	result := apd.New(1, 0)
	for i := 0; i < exp; i++ {
		if _, err := ctx.Mul(result, result, base); err != nil {
			return nil, fmt.Errorf("pow: %w", err)
		}
	}
	return result, nil
}

// decimalFromBig converts an exact big.Int to an exact apd.Decimal.
func decimalFromBig(n *big.Int) *apd.Decimal {
	var d apd.Decimal
	d.Coeff.SetMathBigInt(n)
	if n.Sign() < 0 {
		d.Negative = true
		d.Coeff.Abs(&d.Coeff)
	}
	return &d
}

// BinetFibonacci reconstructs F_m from the golden mean via the closed form
//
//	F_m = (φ^m − (−φ)^{−m}) / √5
//
// It is the cross-check oracle for the recurrence path: two independent
// computations of the same integer, one exact, one through the irrational
// constant. The sign of (−φ)^{−m} is (−1)^m, so the term is computed as
// ±φ^{−m} without exponentiating a negative base.
func BinetFibonacci(m int, prec Precision) (*apd.Decimal, error) {
	if err := prec.validate(); err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("binet fibonacci: %w (m=%d)", ErrNegativeIndex, m)
	}

	ctx := prec.workingContext()
	phiM, phiInvM, err := binetTerms(ctx, m)
	if err != nil {
		return nil, err
	}

	sqrt5 := new(apd.Decimal)
	if _, err := ctx.Sqrt(sqrt5, apd.New(5, 0)); err != nil {
		return nil, fmt.Errorf("binet fibonacci: %w", err)
	}

	f := new(apd.Decimal)
	if m%2 == 0 {
		_, err = ctx.Sub(f, phiM, phiInvM)
	} else {
		_, err = ctx.Add(f, phiM, phiInvM)
	}
	if err != nil {
		return nil, fmt.Errorf("binet fibonacci: %w", err)
	}
	if _, err := ctx.Quo(f, f, sqrt5); err != nil {
		return nil, fmt.Errorf("binet fibonacci: %w", err)
	}
	if err := prec.round(f); err != nil {
		return nil, err
	}
	return f, nil
}

// BinetLucas reconstructs L_m from the golden mean via the closed form
//
//	L_m = φ^m + (−φ)^{−m}
func BinetLucas(m int, prec Precision) (*apd.Decimal, error) {
	if err := prec.validate(); err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("binet lucas: %w (m=%d)", ErrNegativeIndex, m)
	}

	ctx := prec.workingContext()
	phiM, phiInvM, err := binetTerms(ctx, m)
	if err != nil {
		return nil, err
	}

	l := new(apd.Decimal)
	if m%2 == 0 {
		_, err = ctx.Add(l, phiM, phiInvM)
	} else {
		_, err = ctx.Sub(l, phiM, phiInvM)
	}
	if err != nil {
		return nil, fmt.Errorf("binet lucas: %w", err)
	}
	if err := prec.round(l); err != nil {
		return nil, err
	}
	return l, nil
}

// binetTerms computes φ^m and φ^{−m} at the context's precision.
func binetTerms(ctx *apd.Context, m int) (phiM, phiInvM *apd.Decimal, err error) {
	phi, err := goldenMean(ctx)
	if err != nil {
		return nil, nil, err
	}
	phiM, err = powInt(ctx, phi, m)
	if err != nil {
		return nil, nil, err
	}
	phiInvM = new(apd.Decimal)
	if _, err := ctx.Quo(phiInvM, apd.New(1, 0), phiM); err != nil {
		return nil, nil, fmt.Errorf("binet: %w", err)
	}
	return phiM, phiInvM, nil
}

// VerifyBinetFibonacci compares the closed-form F_m against the exact
// recurrence value, within 10^(−prec.Digits). The two paths are independent:
// one never touches the irrational constant, the other is built from it.
func VerifyBinetFibonacci(m int, prec Precision) (Verification, error) {
	closed, err := BinetFibonacci(m, prec)
	if err != nil {
		return Verification{}, err
	}
	exact, err := FibonacciNumber(m)
	if err != nil {
		return Verification{}, err
	}
	return compareAgainstInteger(closed, exact, prec)
}

// VerifyBinetLucas compares the closed-form L_m against the exact recurrence
// value, within 10^(−prec.Digits).
func VerifyBinetLucas(m int, prec Precision) (Verification, error) {
	closed, err := BinetLucas(m, prec)
	if err != nil {
		return Verification{}, err
	}
	exact, err := LucasNumber(m)
	if err != nil {
		return Verification{}, err
	}
	return compareAgainstInteger(closed, exact, prec)
}

func compareAgainstInteger(closed *apd.Decimal, exact *big.Int, prec Precision) (Verification, error) {
	ctx := prec.workingContext()
	want := decimalFromBig(exact)

	diff := new(apd.Decimal)
	if _, err := ctx.Sub(diff, closed, want); err != nil {
		return Verification{}, fmt.Errorf("binet cross-check: %w", err)
	}
	if _, err := ctx.Abs(diff, diff); err != nil {
		return Verification{}, fmt.Errorf("binet cross-check: %w", err)
	}

	// The closed form carries significant digits, not decimal places, so for
	// large integers the comparison must be relative to the magnitude of the
	// exact value. Zero keeps the absolute comparison.
	relative := new(apd.Decimal).Set(diff)
	if exact.Sign() != 0 {
		magnitude := new(apd.Decimal)
		if _, err := ctx.Abs(magnitude, want); err != nil {
			return Verification{}, fmt.Errorf("binet cross-check: %w", err)
		}
		if _, err := ctx.Quo(relative, diff, magnitude); err != nil {
			return Verification{}, fmt.Errorf("binet cross-check: %w", err)
		}
	}

	return Verification{
		Valid:     relative.Cmp(prec.tolerance()) < 0,
		Left:      closed,
		Right:     want,
		Diff:      diff,
		Precision: prec.Digits,
	}, nil
}
