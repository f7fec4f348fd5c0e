package mathllm

import "math"

// Eval computes the floating-point value of an expression under an
// environment binding every free symbol. Add and Mul fold left to right over
// the canonical child ordering; Pow follows IEEE semantics (including
// 0^0 == 1). Non-finite results are returned as-is, not as errors — it is
// the caller's business to treat infinities.
func Eval(e Expr, env map[string]float64) (float64, error) {
	switch v := e.(type) {
	case *Num:
		return v.Float64(), nil
	case *Const:
		return v.val, nil
	case *Sym:
		val, ok := env[v.name]
		if !ok {
			return 0, &NumericError{Msg: "Undefined symbol: " + v.name}
		}
		return val, nil
	case *Add:
		acc := 0.0
		for _, t := range v.terms {
			x, err := Eval(t, env)
			if err != nil {
				return 0, err
			}
			acc += x
		}
		return acc, nil
	case *Mul:
		acc := 1.0
		for _, f := range v.factors {
			x, err := Eval(f, env)
			if err != nil {
				return 0, err
			}
			acc *= x
		}
		return acc, nil
	case *Pow:
		base, err := Eval(v.base, env)
		if err != nil {
			return 0, err
		}
		exp, err := Eval(v.exp, env)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case *Func:
		arg, err := Eval(v.arg, env)
		if err != nil {
			return 0, err
		}
		switch v.name {
		case "sin":
			return math.Sin(arg), nil
		case "cos":
			return math.Cos(arg), nil
		case "tan":
			return math.Tan(arg), nil
		case "log":
			return math.Log(arg), nil
		case "exp":
			return math.Exp(arg), nil
		}
		return 0, &NumericError{Msg: "Unsupported function for numeric evaluation: " + v.name}
	}
	return 0, &NumericError{Msg: "Unsupported expression type for numeric evaluation"}
}

// DefiniteIntegrate approximates the definite integral of a parsed
// expression over [a, b] with 10-point Gauss-Legendre quadrature.
func DefiniteIntegrate(e Expr, varName string, a, b float64) (float64, error) {
	nodes := []float64{
		-0.9739065285, -0.8650633667, -0.6794095683,
		-0.4333953941, -0.1488743390, 0.1488743390,
		0.4333953941, 0.6794095683, 0.8650633667, 0.9739065285,
	}
	weights := []float64{
		0.0666713443, 0.1494513492, 0.2190863625,
		0.2692667193, 0.2955242247, 0.2955242247,
		0.2692667193, 0.2190863625, 0.1494513492, 0.0666713443,
	}
	sum := 0.0
	mid := (a + b) / 2
	half := (b - a) / 2
	env := map[string]float64{}
	for i, t := range nodes {
		env[varName] = mid + half*t
		f, err := Eval(e, env)
		if err != nil {
			return 0, err
		}
		sum += weights[i] * f
	}
	return half * sum, nil
}
