package mathllm

import (
	"fmt"
	"math/big"
	"sort"
)

// Polynomial queries and the equation solver. The solver normalizes
// lhs - rhs, expands it to a sum of monomials in the unknown, and dispatches
// on degree: constant and linear cases directly, quadratics through the
// quadratic formula with coefficients kept symbolic, and higher degrees
// through a rational-root search over the constant and leading coefficients.

// Degree returns the degree of expr viewed as a polynomial in varName.
// Negative-exponent powers of the variable yield negative degrees.
func Degree(expr Expr, varName string) int {
	switch v := expr.Simplify().(type) {
	case *Sym:
		if v.name == varName {
			return 1
		}
		return 0
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInteger() {
				return int(n.val.Num().Int64())
			}
		}
		return 0
	case *Add:
		maxDeg := 0
		for _, t := range v.terms {
			if d := Degree(t, varName); d > maxDeg {
				maxDeg = d
			}
		}
		return maxDeg
	case *Mul:
		totalDeg := 0
		for _, f := range v.factors {
			totalDeg += Degree(f, varName)
		}
		return totalDeg
	}
	return 0
}

// PolyCoeffs maps each occurring degree of varName to its coefficient
// expression. The input should be expanded first for faithful results.
func PolyCoeffs(expr Expr, varName string) map[int]Expr {
	result := map[int]Expr{}
	extractCoeffs(expr.Simplify(), varName, result)
	return result
}

func extractCoeffs(e Expr, varName string, out map[int]Expr) {
	switch v := e.(type) {
	case *Sym:
		if v.name == varName {
			addCoeff(out, 1, N(1))
		} else {
			addCoeff(out, 0, v)
		}
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInteger() {
				addCoeff(out, int(n.val.Num().Int64()), N(1))
				return
			}
		}
		addCoeff(out, 0, e)
	case *Mul:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.factors {
			if d := Degree(f, varName); d != 0 {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		var coeff Expr
		switch len(coeffFactors) {
		case 0:
			coeff = N(1)
		case 1:
			coeff = coeffFactors[0]
		default:
			coeff = MulOf(coeffFactors...)
		}
		addCoeff(out, deg, coeff)
	case *Add:
		for _, t := range v.terms {
			extractCoeffs(t, varName, out)
		}
	default:
		addCoeff(out, 0, e)
	}
}

func addCoeff(out map[int]Expr, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = AddOf(existing, val).Simplify()
	} else {
		out[deg] = val.Simplify()
	}
}

// solveExpr finds the roots of residue == 0 in varName. all reports the
// degenerate identity 0 == 0 whose solution set is every value.
func solveExpr(residue Expr, varName string) (sols []Expr, all bool, err error) {
	expanded := Expand(residue)
	coeffs := PolyCoeffs(expanded, varName)

	deg := 0
	for d, c := range coeffs {
		if d < 0 {
			return nil, false, &SymbolicError{Msg: fmt.Sprintf("equation is not polynomial in %s", varName)}
		}
		if HasSymbol(c, varName) {
			return nil, false, &SymbolicError{Msg: fmt.Sprintf("equation is not polynomial in %s", varName)}
		}
		if n, ok := c.(*Num); ok && n.IsZero() {
			continue
		}
		if d > deg {
			deg = d
		}
	}

	coeffAt := func(d int) Expr {
		if c, ok := coeffs[d]; ok {
			return c
		}
		return N(0)
	}

	switch deg {
	case 0:
		if isZeroTri(coeffAt(0)) == triTrue {
			return nil, true, nil
		}
		return nil, false, nil
	case 1:
		a, b := coeffAt(1), coeffAt(0)
		return []Expr{MulOf(N(-1), b, PowOf(a, N(-1)))}, false, nil
	case 2:
		a, b, c := coeffAt(2), coeffAt(1), coeffAt(0)
		disc := AddOf(PowOf(b, N(2)), MulOf(N(-4), a, c))
		var sq Expr
		if dn, ok := disc.(*Num); ok {
			if dn.IsNegative() {
				return nil, false, nil
			}
			if root, exact := ratSqrt(dn); exact {
				sq = root
			}
		}
		if sq == nil {
			sq = PowOf(disc, F(1, 2))
		}
		denom := PowOf(MulOf(N(2), a), N(-1))
		r1 := MulOf(AddOf(MulOf(N(-1), b), sq), denom)
		r2 := MulOf(AddOf(MulOf(N(-1), b), MulOf(N(-1), sq)), denom)
		return []Expr{r1, r2}, false, nil
	}

	roots, err := rationalRoots(coeffs, deg, varName)
	if err != nil {
		return nil, false, err
	}
	return roots, false, nil
}

// rationalRoots is the fallback for degree >= 3: it clears denominators and
// tests candidates p/q with p dividing the trailing coefficient and q the
// leading one, keeping the exact matches.
func rationalRoots(coeffs map[int]Expr, deg int, varName string) ([]Expr, error) {
	nums := map[int]*big.Rat{}
	for d, c := range coeffs {
		n, ok := c.(*Num)
		if !ok {
			return nil, &SymbolicError{Msg: fmt.Sprintf("cannot solve degree %d equation with symbolic coefficients", deg)}
		}
		nums[d] = n.Rat()
	}

	// Clear denominators so the rational-root theorem applies.
	scale := big.NewInt(1)
	for _, r := range nums {
		scale.Mul(scale, new(big.Int).Div(r.Denom(), new(big.Int).GCD(nil, nil, scale, r.Denom())))
	}
	ints := map[int]*big.Int{}
	for d, r := range nums {
		v := new(big.Rat).Mul(r, new(big.Rat).SetInt(scale))
		ints[d] = v.Num()
	}

	leading := ints[deg]
	trailing := big.NewInt(0)
	lowest := deg
	for d := 0; d <= deg; d++ {
		if c, ok := ints[d]; ok && c.Sign() != 0 {
			trailing = c
			lowest = d
			break
		}
	}

	evalAt := func(x *big.Rat) bool {
		sum := new(big.Rat)
		for d, c := range ints {
			term := new(big.Rat).SetInt(c)
			xp := new(big.Rat).SetInt64(1)
			for i := 0; i < d; i++ {
				xp.Mul(xp, x)
			}
			sum.Add(sum, term.Mul(term, xp))
		}
		return sum.Sign() == 0
	}

	var roots []*big.Rat
	seen := func(r *big.Rat) bool {
		for _, s := range roots {
			if s.Cmp(r) == 0 {
				return true
			}
		}
		return false
	}
	record := func(r *big.Rat) {
		if evalAt(r) && !seen(r) {
			roots = append(roots, r)
		}
	}

	if lowest > 0 {
		record(new(big.Rat))
	}
	for _, p := range smallDivisors(trailing) {
		for _, q := range smallDivisors(leading) {
			record(big.NewRat(p, q))
			record(big.NewRat(-p, q))
		}
	}

	sols := make([]Expr, len(roots))
	for i, r := range roots {
		sols[i] = &Num{val: r}
	}
	return sols, nil
}

// smallDivisors lists positive divisors of n up to a fixed search bound,
// together with their cofactors when those stay small.
func smallDivisors(n *big.Int) []int64 {
	abs := new(big.Int).Abs(n)
	if abs.Sign() == 0 {
		return nil
	}
	const limit = 1000
	seen := map[int64]bool{}
	var ds []int64
	add := func(d int64) {
		if d > 0 && !seen[d] {
			seen[d] = true
			ds = append(ds, d)
		}
	}
	m := new(big.Int)
	for d := int64(1); d <= limit; d++ {
		if m.Mod(abs, big.NewInt(d)).Sign() == 0 {
			add(d)
			q := new(big.Int).Div(abs, big.NewInt(d))
			if q.IsInt64() && q.Int64() <= 1_000_000 {
				add(q.Int64())
			}
		}
	}
	return ds
}

// renderSolutions formats a solution set as a bracketed list sorted by the
// printed form of each element.
func renderSolutions(sols []Expr, all bool) string {
	if all {
		return "all"
	}
	strs := make([]string, len(sols))
	for i, s := range sols {
		strs[i] = s.String()
	}
	sort.Strings(strs)
	out := "["
	for i, s := range strs {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out + "]"
}
