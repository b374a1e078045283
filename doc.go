// Package metallic numerically verifies closed-form algebraic identities
// relating the Lucas and Fibonacci sequences to the metallic means, and
// classifies which metallic means lie in the quadratic field ℚ(√5).
//
// # Overview
//
// The metallic mean φ_n is the positive root of x² − n·x − 1 = 0:
//
//	φ_n = (n + √(n²+4)) / 2
//
// φ_1 is the golden mean φ. The central identity verified here says that for
// n equal to an odd-indexed Lucas number, the metallic mean is an odd power
// of the golden mean:
//
//	φ_{L_{2k−1}} = φ^{2k−1}
//
// These n = 1, 4, 11, 29, 76, 199, 521, ... form the exceptional family: the
// only integer parameters whose metallic mean lies in ℚ(√5), witnessed by the
// decomposition √(n²+4) = F_{2k−1}·√5.
//
// # Architecture
//
// The package components:
//
//   - sequence.go   - Exact integer recurrences (Lucas, Fibonacci) on big.Int
//   - arithmetic.go - High-precision decimal constants and Binet cross-checks
//   - identity.go   - Identity verification at a requested precision
//   - field.go      - Quadratic-field membership classification
//   - family.go     - Exceptional-family enumeration
//   - assertions.go - Test helpers for identity and classification properties
//   - cmd/metallic  - Demonstration CLI
//
// Data flows one direction: the sequence engine supplies exact integers to
// the arithmetic and classification engines; the arithmetic engine supplies
// high-precision reals to the verification engine; the family generator
// composes both.
//
// # Quick Start
//
// Verify the identity for k = 3 (n = L_5 = 11) at 40 significant digits:
//
//	res, err := metallic.VerifyErranteIdentity(3, metallic.NewPrecision(40))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("valid: %v\n", res.Valid)
//	fmt.Printf("φ_11  = %s\n", res.Left)
//	fmt.Printf("φ^5   = %s\n", res.Right)
//	fmt.Printf("|diff| = %s\n", res.Diff)
//
// Classify an integer parameter:
//
//	c := metallic.VerifyQuadraticFieldClassification(4)
//	// c.InField == true, c.Multiplier == 2, c.Explanation:
//	// "n=4=L_3, sqrt(20)=2*sqrt(5), F_3=2"
//
// # Guard Digits
//
// Every constant is computed at Digits+GuardDigits significant digits and
// rounded down to Digits at the end. The guard is a fixed 5 digits: the
// constants contain an irrational square root whose truncation error would
// otherwise contaminate the last reported digits. This is the single most
// important correctness rule in the arithmetic engine.
//
// Precision travels as an explicit Precision value on every call. There is no
// ambient process-wide precision setting, so concurrent callers requesting
// different precisions cannot corrupt each other.
//
// # Result Records, Not Booleans
//
// Verification returns both operands and their absolute difference alongside
// the verdict. A difference just above 10^(−p) means the identity holds but p
// was too low; a difference orders of magnitude larger means the identity is
// false. Callers can tell the two apart without rerunning.
//
// # Testing
//
// Use the assertion helpers to validate the algebraic properties of code
// built on these primitives:
//
//	func TestExceptionalFamily(t *testing.T) {
//	    cfg := metallic.DefaultAssertionConfig()
//
//	    // Identity holds for k = 1..cfg.MaxK
//	    metallic.AssertIdentityFamily(t, cfg)
//
//	    // Membership for the known exceptional set
//	    metallic.AssertFieldMembership(t, 29, true, cfg)
//
//	    // Recurrence vs closed-form oracle
//	    metallic.AssertBinetConsistency(t, 20, cfg)
//	}
//
// # Collaborators
//
// The asymptotic-expansion and cyclotomic-identity modules consume the
// constant-production primitives (GoldenMean, MetallicMean) and the sequence
// primitives (LucasNumber, FibonacciNumber); their own verification criteria
// live with them.
package metallic
