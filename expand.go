package mathllm

// Polynomial expansion and the structural zero-test built on it. Expansion
// distributes every product over every sum and unrolls small non-negative
// integer powers into repeated multiplication; it performs no other
// simplification beyond what the canonicalizing constructors do.

func Expand(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			if a, ok := f.(*Add); ok {
				rest := make([]Expr, 0, len(expanded)-1)
				for j, ef := range expanded {
					if j != i {
						rest = append(rest, ef)
					}
				}
				terms := make([]Expr, len(a.terms))
				for k, t := range a.terms {
					terms[k] = expandExpr(MulOf(append([]Expr{t}, rest...)...))
				}
				return expandExpr(AddOf(terms...))
			}
		}
		return MulOf(expanded...)
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsInteger() {
			exp := n.val.Num().Int64()
			if exp >= 0 && exp <= 10 {
				result := Expr(N(1))
				base := expandExpr(v.base)
				for i := int64(0); i < exp; i++ {
					result = expandExpr(MulOf(result, base))
				}
				return result
			}
		}
		return &Pow{base: expandExpr(v.base), exp: expandExpr(v.exp)}
	}
	return e
}

// tribool is the internal three-valued answer of the zero-test; it collapses
// to false at the VerifyEqual boundary.
type tribool int

const (
	triFalse tribool = iota
	triTrue
	triIndeterminate
)

func isZeroTri(e Expr) tribool {
	expanded := Expand(e)
	if n, ok := expanded.(*Num); ok {
		if n.IsZero() {
			return triTrue
		}
		return triFalse
	}
	return triIndeterminate
}

// IsZero reports whether the expression expands to the literal zero. A
// non-literal residue yields false, not an error.
func IsZero(e Expr) bool { return isZeroTri(e) == triTrue }
