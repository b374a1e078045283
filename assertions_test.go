package metallic

import "testing"

// The assertion helpers are the external test surface for collaborator
// modules; exercise them against the engines they wrap.

func TestAssertIdentityFamily(t *testing.T) {
	AssertIdentityFamily(t, DefaultAssertionConfig())
}

func TestAssertFieldMembership(t *testing.T) {
	cfg := DefaultAssertionConfig()

	for _, n := range exceptionalSet {
		AssertFieldMembership(t, n, true, cfg)
	}
	for _, n := range []int64{2, 3, 5, 6} {
		AssertFieldMembership(t, n, false, cfg)
	}
}

func TestAssertSequenceRecurrence(t *testing.T) {
	AssertSequenceRecurrence(t, LucasNumber, 50)
	AssertSequenceRecurrence(t, FibonacciNumber, 50)
}

func TestAssertBinetConsistency(t *testing.T) {
	cfg := DefaultAssertionConfig()
	for _, m := range []int{0, 1, 2, 10, 25} {
		AssertBinetConsistency(t, m, cfg)
	}
}
