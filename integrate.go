package mathllm

// Rule-directed antidifferentiation with respect to a single variable. The
// rule set is deliberately bounded; anything outside it fails with a
// SymbolicError rather than returning a partial result. No integration
// constant is added.

func integrateExpr(e Expr, varName string) (Expr, error) {
	if !HasSymbol(e, varName) {
		return MulOf(e, S(varName)), nil
	}
	switch t := e.(type) {
	case *Sym:
		// t.name == varName, the v-free case was handled above.
		return MulOf(F(1, 2), PowOf(S(varName), N(2))), nil
	case *Add:
		terms := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			anti, err := integrateExpr(term, varName)
			if err != nil {
				return nil, err
			}
			terms[i] = anti
		}
		return AddOf(terms...), nil
	case *Mul:
		consts := []Expr{}
		var dependent Expr
		for _, f := range t.factors {
			if HasSymbol(f, varName) {
				if dependent != nil {
					return nil, &SymbolicError{Msg: "Unsupported integrand"}
				}
				dependent = f
			} else {
				consts = append(consts, f)
			}
		}
		anti, err := integrateExpr(dependent, varName)
		if err != nil {
			return nil, err
		}
		return MulOf(append(consts, anti)...), nil
	case *Pow:
		// e^v never reaches here: the canonicalizer rewrites it to exp(v),
		// which the Func case below handles.
		sym, ok := t.base.(*Sym)
		if !ok || sym.name != varName {
			return nil, &SymbolicError{Msg: "Unsupported integrand"}
		}
		n, ok := t.exp.(*Num)
		if !ok || !n.IsInteger() {
			return nil, &SymbolicError{Msg: "Unsupported integrand"}
		}
		if n.IsNegOne() {
			return LogOf(S(varName)), nil
		}
		newExp := numAdd(n, N(1))
		return MulOf(numRecip(newExp), PowOf(S(varName), newExp)), nil
	case *Func:
		sym, ok := t.arg.(*Sym)
		if !ok || sym.name != varName {
			return nil, &SymbolicError{Msg: "Unsupported integrand"}
		}
		switch t.name {
		case "sin":
			return MulOf(N(-1), CosOf(S(varName))), nil
		case "cos":
			return SinOf(S(varName)), nil
		case "exp":
			// exp(v) and e^v are the same integrand in different clothes.
			return ExpOf(S(varName)), nil
		}
		return nil, &SymbolicError{Msg: "Unsupported integrand"}
	}
	return nil, &SymbolicError{Msg: "Unsupported integrand"}
}
