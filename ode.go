package mathllm

import (
	"fmt"
	"math"
)

// ODEResult records a fixed-step initial-value integration. On success T and
// Y hold stepsTaken+1 points with T strictly increasing.
type ODEResult struct {
	Success    bool
	T          []float64
	Y          [][]float64
	StepsTaken int
	Message    string
}

const explosionThreshold = 1e10

// SolveIVP integrates dy/dt = f(t, y) with the classical fourth-order
// Runge-Kutta scheme at fixed step (t1-t0)/maxSteps. symbols names the
// independent variable first, then the state component. rtol and atol are
// accepted for API compatibility but not consulted by the fixed-step scheme.
//
// The right-hand side is scalar, so exactly one state component is
// supported; longer y0 vectors are rejected rather than silently sharing one
// expression across components.
func SolveIVP(expr string, t0, t1 float64, y0 []float64, symbols []string, rtol, atol float64, maxSteps int) (ODEResult, error) {
	fail := func(msg string) (ODEResult, error) {
		return ODEResult{Success: false, Message: msg}, nil
	}

	if t1 <= t0 {
		return fail("t1 must be greater than t0")
	}
	if len(y0) == 0 {
		return fail("Initial conditions y0 cannot be empty")
	}
	if len(y0) > 1 {
		return fail("multi-component systems require a per-component right-hand side")
	}
	if len(symbols) == 0 {
		return fail("Symbols list cannot be empty")
	}
	if len(symbols) != 2 {
		return fail("symbols must name the independent variable and one state component")
	}
	if maxSteps <= 0 {
		return fail("max_steps must be positive")
	}

	f, err := Parse(expr)
	if err != nil {
		return ODEResult{}, err
	}

	env := map[string]float64{}
	eval := func(t, y float64) (float64, error) {
		env[symbols[0]] = t
		env[symbols[1]] = y
		val, err := Eval(f, env)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, &ODEError{Msg: "Invalid function evaluation: NaN or Inf"}
		}
		return val, nil
	}

	h := (t1 - t0) / float64(maxSteps)
	t := t0
	y := y0[0]

	result := ODEResult{
		T: make([]float64, 0, maxSteps+1),
		Y: make([][]float64, 0, maxSteps+1),
	}
	result.T = append(result.T, t)
	result.Y = append(result.Y, []float64{y})

	for step := 0; step < maxSteps; step++ {
		k1, err := eval(t, y)
		if err == nil {
			var k2, k3, k4 float64
			k2, err = eval(t+0.5*h, y+0.5*h*k1)
			if err == nil {
				k3, err = eval(t+0.5*h, y+0.5*h*k2)
			}
			if err == nil {
				k4, err = eval(t+h, y+h*k3)
			}
			if err == nil {
				y += (h / 6.0) * (k1 + 2*k2 + 2*k3 + k4)
			}
		}
		if err != nil {
			result.Message = fmt.Sprintf("ODE evaluation failed: %v", err)
			return result, nil
		}

		t += h
		result.StepsTaken++

		if math.Abs(y) > explosionThreshold {
			result.Message = "Solution exploded (exceeded threshold)"
			return result, nil
		}

		result.T = append(result.T, t)
		result.Y = append(result.Y, []float64{y})

		if t >= t1-1e-10 {
			break
		}
	}

	result.Success = true
	result.Message = "Integration completed successfully"
	return result, nil
}
