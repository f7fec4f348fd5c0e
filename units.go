package mathllm

import (
	"fmt"
	"strings"
)

// Dimensional analysis over the SI base dimensions. A Dimension is the
// 7-vector of exponents (length, mass, time, current, temperature, amount,
// luminosity); arithmetic on dimensions is vector arithmetic on the
// exponents.

type Dimension [7]int

// Dim builds a dimension from its exponents in base order L, M, T, I, K, N, J.
func Dim(l, m, t, i, k, n, j int) Dimension { return Dimension{l, m, t, i, k, n, j} }

var dimNames = [7]string{"L", "M", "T", "A", "K", "mol", "cd"}

func (d Dimension) IsDimensionless() bool { return d == Dimension{} }

func (d Dimension) add(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r
}

func (d Dimension) scale(n int) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] * n
	}
	return r
}

func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	var parts []string
	for i, p := range d {
		if p == 0 {
			continue
		}
		if p == 1 {
			parts = append(parts, dimNames[i])
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", dimNames[i], p))
		}
	}
	return strings.Join(parts, " ")
}

// UnitCheckResult carries the outcome of a dimensional-consistency pass.
// Ok is true iff no error diagnostic was recorded; unknown symbols only warn.
type UnitCheckResult struct {
	Ok       bool
	Warnings []string
	Errors   []string
	Inferred map[string]Dimension
}

// UnitCheck parses expr and infers its dimension from the declared symbol
// dimensions, recording diagnostics along the way. The inferred dimension of
// the whole expression is reported under the key "result".
func UnitCheck(expr string, symbolDims map[string]Dimension) (UnitCheckResult, error) {
	parsed, err := Parse(expr)
	if err != nil {
		return UnitCheckResult{}, err
	}

	c := &dimChecker{symbolDims: symbolDims}
	dim := c.check(parsed)

	return UnitCheckResult{
		Ok:       len(c.errors) == 0,
		Warnings: c.warnings,
		Errors:   c.errors,
		Inferred: map[string]Dimension{"result": dim},
	}, nil
}

type dimChecker struct {
	symbolDims map[string]Dimension
	warnings   []string
	errors     []string
}

func (c *dimChecker) errorf(format string, args ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *dimChecker) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *dimChecker) check(e Expr) Dimension {
	switch v := e.(type) {
	case *Num, *Const:
		return Dimension{}
	case *Sym:
		if d, ok := c.symbolDims[v.name]; ok {
			return d
		}
		c.warnf("Unknown symbol dimension: %s", v.name)
		return Dimension{}
	case *Add:
		first := c.check(v.terms[0])
		for _, t := range v.terms[1:] {
			if c.check(t) != first {
				c.errorf("Addition/subtraction requires matching dimensions")
				return Dimension{}
			}
		}
		return first
	case *Mul:
		var sum Dimension
		for _, f := range v.factors {
			sum = sum.add(c.check(f))
		}
		return sum
	case *Pow:
		baseDim := c.check(v.base)
		expDim := c.check(v.exp)
		if !expDim.IsDimensionless() {
			c.errorf("Exponent must be dimensionless")
			return Dimension{}
		}
		if n, ok := v.exp.(*Num); ok {
			if n.IsInteger() {
				return baseDim.scale(int(n.val.Num().Int64()))
			}
			if !baseDim.IsDimensionless() {
				c.warnf("Fractional power of dimensional quantity")
			}
			return Dimension{}
		}
		if !baseDim.IsDimensionless() {
			c.errorf("Non-integer power requires dimensionless base")
		}
		return Dimension{}
	case *Func:
		if !c.check(v.arg).IsDimensionless() {
			c.errorf("%s() argument must be dimensionless", v.name)
		}
		return Dimension{}
	}
	c.warnf("Unknown expression type for dimension analysis")
	return Dimension{}
}
