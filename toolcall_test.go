package mathllm_test

import (
	"encoding/json"
	"strings"
	"testing"

	mathllm "github.com/yasinldev/mathllm"
)

// ============================================================
// Tool dispatch
// ============================================================

func call(tool string, params map[string]interface{}) mathllm.ToolResponse {
	return mathllm.HandleToolCall(mathllm.ToolRequest{Tool: tool, Params: params})
}

func TestToolCall_Simplify(t *testing.T) {
	resp := call("simplify", map[string]interface{}{"expr": "x + x"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "2*x" {
		t.Errorf("simplify(x+x) = %q, want 2*x", resp.String)
	}
}

func TestToolCall_Diff(t *testing.T) {
	resp := call("diff", map[string]interface{}{"expr": "x^2", "var": "x"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "2*x" {
		t.Errorf("diff(x^2) = %q, want 2*x", resp.String)
	}
}

func TestToolCall_Integrate(t *testing.T) {
	resp := call("integrate", map[string]interface{}{"expr": "cos(x)", "var": "x"})
	if resp.String != "sin(x)" {
		t.Errorf("integrate(cos x) = %q, want sin(x)", resp.String)
	}
}

func TestToolCall_IntegrateFailure(t *testing.T) {
	resp := call("integrate", map[string]interface{}{"expr": "tan(x)", "var": "x"})
	if resp.Error == "" || !strings.Contains(resp.Error, "Unsupported integrand") {
		t.Errorf("expected SymbolicError surface, got %q", resp.Error)
	}
}

func TestToolCall_SolveEquation(t *testing.T) {
	resp := call("solve_equation", map[string]interface{}{"lhs": "x^2", "rhs": "4", "var": "x"})
	if resp.String != "[-2, 2]" {
		t.Errorf("solve x^2=4 = %q, want [-2, 2]", resp.String)
	}
}

func TestToolCall_VerifyEqual(t *testing.T) {
	resp := call("verify_equal", map[string]interface{}{"lhs": "x + x", "rhs": "2*x"})
	if resp.String != "true" {
		t.Errorf("verify_equal = %q, want true", resp.String)
	}
}

func TestToolCall_ProbeEqual(t *testing.T) {
	resp := call("probe_equal", map[string]interface{}{
		"lhs": "(x+1)^2", "rhs": "x^2+2*x+1",
		"symbols": []interface{}{"x"},
		"trials":  float64(10), "seed": float64(5),
		"domain_min": 0.5, "domain_max": 2.0, "threshold": 1e-6,
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if !strings.Contains(resp.String, "equal=true") {
		t.Errorf("probe result %q", resp.String)
	}
}

func TestToolCall_SolveIVP(t *testing.T) {
	resp := call("solve_ivp", map[string]interface{}{
		"expr": "-y", "t0": 0.0, "t1": 1.0,
		"y0":      []interface{}{1.0},
		"symbols": []interface{}{"t", "y"},
		"max_steps": float64(100),
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok || result["success"] != true {
		t.Errorf("solve_ivp result %v", resp.Result)
	}
}

func TestToolCall_UnitCheck(t *testing.T) {
	resp := call("unit_check", map[string]interface{}{
		"expr": "(1/2)*m*v^2",
		"symbol_dims": map[string]interface{}{
			"m": []interface{}{0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			"v": []interface{}{1.0, 0.0, -1.0, 0.0, 0.0, 0.0, 0.0},
		},
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "ok=true" {
		t.Errorf("unit_check %q, want ok=true", resp.String)
	}
}

func TestToolCall_MissingParam(t *testing.T) {
	resp := call("diff", map[string]interface{}{"expr": "x"})
	if resp.Error == "" || !strings.Contains(resp.Error, "var") {
		t.Errorf("missing param should be reported, got %q", resp.Error)
	}
}

func TestToolCall_UnknownTool(t *testing.T) {
	resp := call("nonexistent", map[string]interface{}{})
	if resp.Error == "" {
		t.Error("expected error for unknown tool")
	}
}

func TestToolSpec_IsValidJSON(t *testing.T) {
	spec := mathllm.ToolSpec()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(spec), &m); err != nil {
		t.Errorf("tool spec should be valid JSON: %v", err)
	}
	if !strings.Contains(spec, "solve_ivp") {
		t.Error("tool spec should list solve_ivp")
	}
}

// ============================================================
// JSON round trip
// ============================================================

func TestJSON_RoundTrip(t *testing.T) {
	original, err := mathllm.Parse("2*x + sin(y)^2 + e^z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	j, err := mathllm.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(j), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rebuilt, err := mathllm.FromJSON(m)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !rebuilt.Equal(original) {
		t.Errorf("round-trip mismatch: %s != %s", rebuilt.String(), original.String())
	}
}

func TestJSON_UnknownTypeRejected(t *testing.T) {
	_, err := mathllm.FromJSON(map[string]interface{}{"type": "matrix"})
	if err == nil {
		t.Error("unknown type should be rejected")
	}
}

func TestJSON_UnknownFunctionRejected(t *testing.T) {
	_, err := mathllm.FromJSON(map[string]interface{}{
		"type": "func", "name": "sec",
		"arg": map[string]interface{}{"type": "sym", "name": "x"},
	})
	if err == nil {
		t.Error("unknown function should be rejected")
	}
}
