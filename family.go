package metallic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// FamilyPrecisionDigits is the fixed precision at which the golden mean is
// materialized for family enumeration. The constant is computed once and
// reused across all entries by multiplication, so the square root is taken
// exactly once per enumeration.
const FamilyPrecisionDigits = 100

// ErrInvalidFamilyBound is returned when the family is enumerated with a
// bound below 1.
var ErrInvalidFamilyBound = errors.New("family bound kMax must be at least 1")

// FamilyEntry is one member of the exceptional family: the correspondence
// (k, 2k−1, n = L_{2k−1}, φ^{2k−1}). For exactly these n the metallic mean
// φ_n lies in ℚ(√5), where it coincides with the recorded power of φ.
type FamilyEntry struct {
	K        int          // Position in the family, from 1
	Index    int          // Odd index 2k−1
	N        *big.Int     // Lucas number L_{2k−1}, the metallic-mean parameter
	PhiPower *apd.Decimal // φ^{2k−1} at FamilyPrecisionDigits
}

// ExceptionalFamily enumerates the entries for k = 1..kMax, in order.
//
// The enumeration is restartable: it depends only on kMax, and two runs with
// the same bound produce identical output. Each step advances the power by
// φ², so the odd powers φ, φ³, φ⁵, ... are produced without re-exponentiating
// from scratch.
func ExceptionalFamily(kMax int) ([]FamilyEntry, error) {
	if kMax < 1 {
		return nil, fmt.Errorf("family: %w (got %d)", ErrInvalidFamilyBound, kMax)
	}

	prec := NewPrecision(FamilyPrecisionDigits)
	ctx := prec.workingContext()

	phi, err := goldenMean(ctx)
	if err != nil {
		return nil, err
	}
	phiSquared := new(apd.Decimal)
	if _, err := ctx.Mul(phiSquared, phi, phi); err != nil {
		return nil, fmt.Errorf("family: %w", err)
	}

	entries := make([]FamilyEntry, 0, kMax)
	power := new(apd.Decimal).Set(phi) // φ^1, advanced by φ² per entry
	for k := 1; k <= kMax; k++ {
		idx := 2*k - 1
		n, err := LucasNumber(idx)
		if err != nil {
			return nil, err
		}

		recorded := new(apd.Decimal).Set(power)
		if err := prec.round(recorded); err != nil {
			return nil, err
		}
		entries = append(entries, FamilyEntry{K: k, Index: idx, N: n, PhiPower: recorded})

		if _, err := ctx.Mul(power, power, phiSquared); err != nil {
			return nil, fmt.Errorf("family: %w", err)
		}
	}
	return entries, nil
}
