package mathllm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Tool-call dispatch: a JSON-friendly front door mapping tool names onto the
// public operations, served over HTTP by cmd/mathllm-server. Expressions
// travel as infix strings and go through the same parser as every other
// entry point.

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getFloat := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	getInt := func(key string) (int, error) {
		f, err := getFloat(key)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	}
	getStrings := func(key string) ([]string, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]string, len(raw))
		for i, r := range raw {
			s, ok := r.(string)
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be string", key, i)
			}
			result[i] = s
		}
		return result, nil
	}
	getFloats := func(key string) ([]float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]float64, len(raw))
		for i, r := range raw {
			f, ok := r.(float64)
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be number", key, i)
			}
			result[i] = f
		}
		return result, nil
	}
	getDims := func(key string) (map[string]Dimension, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be an object", key)
		}
		result := map[string]Dimension{}
		for name, entry := range raw {
			arr, ok := entry.([]interface{})
			if !ok || len(arr) != 7 {
				return nil, fmt.Errorf("param %s[%s] must be an array of 7 exponents", key, name)
			}
			var d Dimension
			for i, x := range arr {
				f, ok := x.(float64)
				if !ok {
					return nil, fmt.Errorf("param %s[%s][%d] must be a number", key, name, i)
				}
				d[i] = int(f)
			}
			result[name] = d
		}
		return result, nil
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	respond := func(e Expr) ToolResponse {
		return ToolResponse{Result: e.toJSON(), LaTeX: e.LaTeX(), String: e.String()}
	}
	parseParam := func(key string) (Expr, ToolResponse, bool) {
		src, err := getString(key)
		if err != nil {
			return nil, fail(err), false
		}
		e, err := Parse(src)
		if err != nil {
			return nil, fail(err), false
		}
		return e, ToolResponse{}, true
	}

	switch req.Tool {
	case "simplify":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		return respond(e)

	case "diff":
		expr, err := getString("expr")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		out, err := Diff(expr, v)
		if err != nil {
			return fail(err)
		}
		parsed, _ := Parse(out)
		return respond(parsed)

	case "diffn":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		n, err := getInt("n")
		if err != nil {
			return fail(err)
		}
		if n < 0 {
			return ToolResponse{Error: "param n must be >= 0"}
		}
		return respond(DiffN(e, v, n))

	case "integrate":
		expr, err := getString("expr")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		out, err := Integrate(expr, v)
		if err != nil {
			return fail(err)
		}
		parsed, _ := Parse(out)
		return respond(parsed)

	case "definite_integrate":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		a, err := getFloat("a")
		if err != nil {
			return fail(err)
		}
		b, err := getFloat("b")
		if err != nil {
			return fail(err)
		}
		val, err := DefiniteIntegrate(e, v, a, b)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: val, String: fmt.Sprintf("%.10g", val)}

	case "solve_equation":
		lhs, err := getString("lhs")
		if err != nil {
			return fail(err)
		}
		rhs, err := getString("rhs")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		out, err := SolveEquation(lhs, rhs, v)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: out, String: out}

	case "verify_equal":
		lhs, err := getString("lhs")
		if err != nil {
			return fail(err)
		}
		rhs, err := getString("rhs")
		if err != nil {
			return fail(err)
		}
		timeout, err := getFloat("timeout_ms")
		if err != nil {
			timeout = 1000
		}
		ok, err := VerifyEqual(lhs, rhs, timeout)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: ok, String: fmt.Sprintf("%t", ok)}

	case "probe_equal":
		lhs, err := getString("lhs")
		if err != nil {
			return fail(err)
		}
		rhs, err := getString("rhs")
		if err != nil {
			return fail(err)
		}
		symbols, err := getStrings("symbols")
		if err != nil {
			return fail(err)
		}
		trials, err := getInt("trials")
		if err != nil {
			return fail(err)
		}
		seed, err := getInt("seed")
		if err != nil {
			return fail(err)
		}
		dmin, err := getFloat("domain_min")
		if err != nil {
			return fail(err)
		}
		dmax, err := getFloat("domain_max")
		if err != nil {
			return fail(err)
		}
		threshold, err := getFloat("threshold")
		if err != nil {
			return fail(err)
		}
		res, err := ProbeEqual(lhs, rhs, symbols, trials, int64(seed), dmin, dmax, threshold)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"equal":           res.Equal,
				"trials_executed": res.TrialsExecuted,
				"failures":        res.Failures,
				"max_errors":      res.MaxErrors,
			},
			String: fmt.Sprintf("equal=%t failures=%d/%d", res.Equal, res.Failures, res.TrialsExecuted),
		}

	case "solve_ivp":
		expr, err := getString("expr")
		if err != nil {
			return fail(err)
		}
		t0, err := getFloat("t0")
		if err != nil {
			return fail(err)
		}
		t1, err := getFloat("t1")
		if err != nil {
			return fail(err)
		}
		y0, err := getFloats("y0")
		if err != nil {
			return fail(err)
		}
		symbols, err := getStrings("symbols")
		if err != nil {
			return fail(err)
		}
		maxSteps, err := getInt("max_steps")
		if err != nil {
			return fail(err)
		}
		rtol, _ := getFloat("rtol")
		atol, _ := getFloat("atol")
		res, err := SolveIVP(expr, t0, t1, y0, symbols, rtol, atol, maxSteps)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"success":     res.Success,
				"t":           res.T,
				"y":           res.Y,
				"steps_taken": res.StepsTaken,
				"message":     res.Message,
			},
			String: res.Message,
		}

	case "unit_check":
		expr, err := getString("expr")
		if err != nil {
			return fail(err)
		}
		dims, err := getDims("symbol_dims")
		if err != nil {
			return fail(err)
		}
		res, err := UnitCheck(expr, dims)
		if err != nil {
			return fail(err)
		}
		inferred := map[string]string{}
		for k, d := range res.Inferred {
			inferred[k] = d.String()
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"ok":       res.Ok,
				"warnings": res.Warnings,
				"errors":   res.Errors,
				"inferred": inferred,
			},
			String: fmt.Sprintf("ok=%t", res.Ok),
		}

	case "expand":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		return respond(Expand(e))

	case "substitute":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		val, resp, ok := parseParam("value")
		if !ok {
			return resp
		}
		return respond(Sub(e, v, val))

	case "to_latex":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		return ToolResponse{LaTeX: e.LaTeX(), String: e.String()}

	case "free_symbols":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		syms := FreeSymbols(e)
		names := make([]string, 0, len(syms))
		for n := range syms {
			names = append(names, n)
		}
		sort.Strings(names)
		return ToolResponse{Result: names, String: strings.Join(names, ", ")}

	case "degree":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: Degree(e, v)}

	case "poly_coeffs":
		e, resp, ok := parseParam("expr")
		if !ok {
			return resp
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		coeffs := PolyCoeffs(Expand(e), v)
		result := map[string]string{}
		for deg, c := range coeffs {
			result[fmt.Sprintf("%d", deg)] = c.String()
		}
		return ToolResponse{Result: result}

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ToolSpec returns the JSON schema of the tool set for agent registration.
func ToolSpec() string {
	tools := []map[string]interface{}{
		ts("simplify", "Parse and canonicalize an infix expression", []string{"expr"}, map[string]string{"expr": "string"}),
		ts("diff", "First derivative d/dvar", []string{"expr", "var"}, map[string]string{"expr": "string", "var": "string"}),
		ts("diffn", "nth derivative. Requires n (int)", []string{"expr", "var", "n"}, map[string]string{"expr": "string", "var": "string", "n": "integer"}),
		ts("integrate", "Rule-based symbolic antiderivative", []string{"expr", "var"}, map[string]string{"expr": "string", "var": "string"}),
		ts("definite_integrate", "Numerical integral over [a,b]", []string{"expr", "var", "a", "b"}, map[string]string{"expr": "string", "var": "string", "a": "number", "b": "number"}),
		ts("solve_equation", "Solve lhs == rhs for var", []string{"lhs", "rhs", "var"}, map[string]string{"lhs": "string", "rhs": "string", "var": "string"}),
		ts("verify_equal", "Structural equality via expansion. Optional timeout_ms", []string{"lhs", "rhs"}, map[string]string{"lhs": "string", "rhs": "string", "timeout_ms": "number"}),
		ts("probe_equal", "Random-point numeric equality probe", []string{"lhs", "rhs", "symbols", "trials", "seed", "domain_min", "domain_max", "threshold"}, map[string]string{"lhs": "string", "rhs": "string", "symbols": "array", "trials": "integer", "seed": "integer", "domain_min": "number", "domain_max": "number", "threshold": "number"}),
		ts("solve_ivp", "Fixed-step RK4 initial value problem", []string{"expr", "t0", "t1", "y0", "symbols", "max_steps"}, map[string]string{"expr": "string", "t0": "number", "t1": "number", "y0": "array", "symbols": "array", "max_steps": "integer"}),
		ts("unit_check", "Dimensional consistency. symbol_dims maps name -> 7 exponents", []string{"expr", "symbol_dims"}, map[string]string{"expr": "string", "symbol_dims": "object"}),
		ts("expand", "Distribute products over sums", []string{"expr"}, map[string]string{"expr": "string"}),
		ts("substitute", "Substitute var with value", []string{"expr", "var", "value"}, map[string]string{"expr": "string", "var": "string", "value": "string"}),
		ts("to_latex", "Convert to LaTeX", []string{"expr"}, map[string]string{"expr": "string"}),
		ts("free_symbols", "Return free symbol names", []string{"expr"}, map[string]string{"expr": "string"}),
		ts("degree", "Polynomial degree in variable", []string{"expr", "var"}, map[string]string{"expr": "string", "var": "string"}),
		ts("poly_coeffs", "Extract polynomial coefficients by degree", []string{"expr", "var"}, map[string]string{"expr": "string", "var": "string"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
