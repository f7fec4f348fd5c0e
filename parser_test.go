package mathllm_test

import (
	"errors"
	"strings"
	"testing"

	mathllm "github.com/yasinldev/mathllm"
)

// ============================================================
// Basics
// ============================================================

func TestParse_Integer(t *testing.T) {
	e, err := mathllm.Parse("42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "42" {
		t.Errorf("want 42, got %s", e.String())
	}
}

func TestParse_Precedence(t *testing.T) {
	e, err := mathllm.Parse("1 + 2*3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "7" {
		t.Errorf("1 + 2*3 should fold to 7, got %s", e.String())
	}
}

func TestParse_PowerBeforeUnaryMinus(t *testing.T) {
	e, err := mathllm.Parse("-2^2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "-4" {
		t.Errorf("-2^2 should parse as -(2^2) = -4, got %s", e.String())
	}
}

func TestParse_PowerRightAssociative(t *testing.T) {
	e, err := mathllm.Parse("2^3^2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "512" {
		t.Errorf("2^3^2 should parse as 2^(3^2) = 512, got %s", e.String())
	}
}

func TestParse_Subtraction(t *testing.T) {
	e, err := mathllm.Parse("x - y")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "x - y" {
		t.Errorf("want 'x - y', got %s", e.String())
	}
}

func TestParse_DivisionOfLiterals(t *testing.T) {
	e, err := mathllm.Parse("1/3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "1/3" {
		t.Errorf("1/3 should canonicalize to the rational 1/3, got %s", e.String())
	}
}

func TestParse_DivisionBySymbol(t *testing.T) {
	e, err := mathllm.Parse("x/y")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.String() != "x/y" {
		t.Errorf("want x/y, got %s", e.String())
	}
}

func TestParse_Whitespace(t *testing.T) {
	a, err := mathllm.Parse("  x +	2 * y ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := mathllm.Parse("x+2*y")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("whitespace should be insignificant: %s vs %s", a.String(), b.String())
	}
}

func TestParse_Functions(t *testing.T) {
	for _, name := range []string{"sin", "cos", "tan", "log", "exp"} {
		e, err := mathllm.Parse(name + "(x)")
		if err != nil {
			t.Fatalf("parse %s(x): %v", name, err)
		}
		if e.String() != name+"(x)" {
			t.Errorf("want %s(x), got %s", name, e.String())
		}
	}
}

func TestParse_Constants(t *testing.T) {
	e, err := mathllm.Parse("e^x + pi")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// e^x canonicalizes to the exponential function.
	if e.String() != "exp(x) + pi" {
		t.Errorf("want 'exp(x) + pi', got %s", e.String())
	}
}

func TestParse_CaseSensitiveIdentifiers(t *testing.T) {
	e, err := mathllm.Parse("X + x")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	syms := mathllm.FreeSymbols(e)
	if len(syms) != 2 {
		t.Errorf("X and x should be distinct symbols, got %v", syms)
	}
}

// ============================================================
// Errors
// ============================================================

func wantParseError(t *testing.T, src string, wantPos int, wantSubstr string) {
	t.Helper()
	_, err := mathllm.Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q) should fail", src)
	}
	var pe *mathllm.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(%q) should return a ParseError, got %T", src, err)
	}
	if wantPos > 0 && pe.Pos != wantPos {
		t.Errorf("Parse(%q): want position %d, got %d (%s)", src, wantPos, pe.Pos, pe.Msg)
	}
	if wantSubstr != "" && !strings.Contains(err.Error(), wantSubstr) {
		t.Errorf("Parse(%q): error %q should mention %q", src, err.Error(), wantSubstr)
	}
}

func TestParse_Empty(t *testing.T) {
	wantParseError(t, "", 1, "empty expression")
}

func TestParse_WhitespaceOnly(t *testing.T) {
	wantParseError(t, "   ", 1, "empty expression")
}

func TestParse_UnknownFunction(t *testing.T) {
	wantParseError(t, "sec(x)", 1, "unknown function")
}

func TestParse_UnexpectedCharacter(t *testing.T) {
	wantParseError(t, "x @ y", 3, "unexpected character")
}

func TestParse_TrailingInput(t *testing.T) {
	wantParseError(t, "x 1", 3, "unexpected token")
}

func TestParse_DanglingOperator(t *testing.T) {
	wantParseError(t, "x + ", 5, "")
}

func TestParse_UnbalancedParen(t *testing.T) {
	wantParseError(t, "(x", 3, `")"`)
}

func TestParse_CommaOutsideCall(t *testing.T) {
	wantParseError(t, "1,2", 2, "unexpected token")
}

// ============================================================
// Round-trip invariant: parse(print(e)) is structurally e
// ============================================================

func TestParse_PrintRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"-7",
		"1/3",
		"x",
		"x + 3",
		"x - y",
		"2*x + 3",
		"-x",
		"-(x + 1)",
		"x*y*z",
		"x/y",
		"2/x",
		"1/2*x^2",
		"x^2",
		"x^-1",
		"x^(1/2)",
		"(x + 1)^2",
		"(x + 1)*(x - 1)",
		"sin(x)",
		"cos(2*x)",
		"sin(x)^2 + cos(x)^2",
		"e^x",
		"pi*x",
		"exp(x)/x",
		"log(x + 1)",
		"x^2 - 4*x + 4",
		"tan(x)^2 + 1",
		"x^y",
		"x/(y + 1)",
	}
	for _, src := range inputs {
		first, err := mathllm.Parse(src)
		if err != nil {
			t.Errorf("Parse(%q): %v", src, err)
			continue
		}
		printed := first.String()
		second, err := mathllm.Parse(printed)
		if err != nil {
			t.Errorf("re-Parse(%q) of %q: %v", printed, src, err)
			continue
		}
		if !first.Equal(second) {
			t.Errorf("round-trip mismatch for %q: %q re-parses to %q", src, printed, second.String())
		}
	}
}
