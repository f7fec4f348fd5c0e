package mathllm_test

import (
	"errors"
	"testing"

	mathllm "github.com/yasinldev/mathllm"
)

// ============================================================
// Expansion
// ============================================================

func TestExpand_BinomialSquare(t *testing.T) {
	e, err := mathllm.Parse("(x + 1)^2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expanded := mathllm.Expand(e)
	want, _ := mathllm.Parse("x^2 + 2*x + 1")
	if !expanded.Equal(want) {
		t.Errorf("expand((x+1)^2) = %s, want x^2 + 2*x + 1", expanded.String())
	}
}

func TestExpand_ProductOfSums(t *testing.T) {
	e, err := mathllm.Parse("(x + 1)*(x + 2)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expanded := mathllm.Expand(e)
	want, _ := mathllm.Parse("x^2 + 3*x + 2")
	if !expanded.Equal(want) {
		t.Errorf("expand((x+1)(x+2)) = %s, want x^2 + 3*x + 2", expanded.String())
	}
}

func TestExpand_DifferenceOfSquares(t *testing.T) {
	e, err := mathllm.Parse("(x + y)*(x - y)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expanded := mathllm.Expand(e)
	want, _ := mathllm.Parse("x^2 - y^2")
	if !expanded.Equal(want) {
		t.Errorf("expand((x+y)(x-y)) = %s, want x^2 - y^2", expanded.String())
	}
}

func TestExpand_LeavesFunctionsAlone(t *testing.T) {
	e, err := mathllm.Parse("sin(x)*2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mathllm.Expand(e).String() != "2*sin(x)" {
		t.Errorf("expand(2 sin x) = %s", mathllm.Expand(e).String())
	}
}

// ============================================================
// Zero test
// ============================================================

func TestIsZero_LiteralZero(t *testing.T) {
	if !mathllm.IsZero(mathllm.N(0)) {
		t.Error("0 should be zero")
	}
}

func TestIsZero_CancellingDifference(t *testing.T) {
	e, err := mathllm.Parse("(x + 1)^2 - x^2 - 2*x - 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !mathllm.IsZero(e) {
		t.Errorf("(x+1)^2 - x^2 - 2x - 1 should expand to zero, got %s", mathllm.Expand(e).String())
	}
}

func TestIsZero_NonZeroLiteral(t *testing.T) {
	if mathllm.IsZero(mathllm.N(3)) {
		t.Error("3 is not zero")
	}
}

func TestIsZero_IndeterminateResidue(t *testing.T) {
	e, err := mathllm.Parse("sin(x)^2 + cos(x)^2 - 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// True mathematically, but the structural zero-test cannot decide it.
	if mathllm.IsZero(e) {
		t.Error("trig identity should be indeterminate for the structural test")
	}
}

// ============================================================
// VerifyEqual
// ============================================================

func TestVerifyEqual_LikeTerms(t *testing.T) {
	ok, err := mathllm.VerifyEqual("x + x", "2*x", 100)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("x + x should verify equal to 2*x")
	}
}

func TestVerifyEqual_Binomial(t *testing.T) {
	ok, err := mathllm.VerifyEqual("(x + 1)^2", "x^2 + 2*x + 1", 1000)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("(x+1)^2 should verify equal to its expansion")
	}
}

func TestVerifyEqual_Unequal(t *testing.T) {
	ok, err := mathllm.VerifyEqual("x^2", "x^3", 100)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Error("x^2 should not verify equal to x^3")
	}
}

func TestVerifyEqual_IndeterminateIsFalse(t *testing.T) {
	ok, err := mathllm.VerifyEqual("sin(x)^2 + cos(x)^2", "1", 1000)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Error("the trig identity is indeterminate and must collapse to false")
	}
}

func TestVerifyEqual_ParseErrorPropagates(t *testing.T) {
	_, err := mathllm.VerifyEqual("x +", "x", 100)
	var pe *mathllm.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}

func TestVerifyEqual_TinyTimeout(t *testing.T) {
	// Either a correct verdict or a VerifierError is acceptable.
	ok, err := mathllm.VerifyEqual("(x + 1)^8", "(x + 1)^8", 0)
	if err != nil {
		var ve *mathllm.VerifierError
		if !errors.As(err, &ve) {
			t.Errorf("want VerifierError on timeout, got %T", err)
		}
		return
	}
	if !ok {
		t.Error("if no timeout fired, the verdict must be correct")
	}
}
