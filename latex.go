package mathllm

import "strings"

// LaTeX rendering for every node. The output is display-oriented and is not
// required to re-parse.

func LaTeX(e Expr) string { return e.LaTeX() }

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := n.Rat()
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return sign + `\frac{` + v.Num().String() + `}{` + v.Denom().String() + `}`
}

func (s *Sym) LaTeX() string { return s.name }

func (c *Const) LaTeX() string {
	if c.name == "pi" {
		return `\pi`
	}
	return c.name
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = `\left(` + f.LaTeX() + `\right)`
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = `\left(` + baseStr + `\right)`
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (f *Func) LaTeX() string {
	switch f.name {
	case "sin", "cos", "tan", "log", "exp":
		return `\` + f.name + `\left(` + f.arg.LaTeX() + `\right)`
	}
	return `\operatorname{` + f.name + `}\left(` + f.arg.LaTeX() + `\right)`
}
