package mathllm

// String-in / string-out entry points. Each parses its inputs, runs the
// corresponding analysis, and pretty-prints the result; every output string
// re-parses to the same tree. Failures are reported through the typed error
// kinds in errors.go.

// Integrate returns the antiderivative of expr with respect to variable.
func Integrate(expr, variable string) (string, error) {
	e, err := Parse(expr)
	if err != nil {
		return "", err
	}
	anti, err := integrateExpr(e, variable)
	if err != nil {
		return "", err
	}
	return anti.String(), nil
}

// Diff returns the derivative of expr with respect to variable.
func Diff(expr, variable string) (string, error) {
	e, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return DiffExpr(e, variable).String(), nil
}

// SolveEquation solves lhs == rhs for variable and renders the solution set
// as a bracketed list sorted by printed form. The identity equation renders
// as "all".
func SolveEquation(lhs, rhs, variable string) (string, error) {
	l, err := Parse(lhs)
	if err != nil {
		return "", err
	}
	r, err := Parse(rhs)
	if err != nil {
		return "", err
	}
	residue := AddOf(l, MulOf(N(-1), r))
	sols, all, err := solveExpr(residue, variable)
	if err != nil {
		return "", err
	}
	return renderSolutions(sols, all), nil
}
