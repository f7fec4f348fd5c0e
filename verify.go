package mathllm

import "time"

// VerifyEqual decides structural equality of two expressions by expanding
// their difference and testing it against literal zero. The indeterminate
// outcome of the zero-test collapses to false: callers needing certainty
// should pair this with ProbeEqual.
//
// Elapsed wall time is checked after parsing and after expansion; overrunning
// timeoutMS fails with a VerifierError.
func VerifyEqual(lhs, rhs string, timeoutMS float64) (bool, error) {
	start := time.Now()
	overrun := func() bool {
		return float64(time.Since(start).Milliseconds()) > timeoutMS
	}

	l, err := Parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := Parse(rhs)
	if err != nil {
		return false, err
	}
	if overrun() {
		return false, &VerifierError{Msg: "Verification timeout exceeded"}
	}

	diff := AddOf(l, MulOf(N(-1), r))
	result := isZeroTri(diff)
	if overrun() {
		return false, &VerifierError{Msg: "Verification timeout exceeded"}
	}
	return result == triTrue, nil
}
