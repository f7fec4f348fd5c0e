package mathllm

import (
	"math"
	"math/rand"
)

// ProbeResult is the verdict of a multi-trial numeric equality probe.
type ProbeResult struct {
	Equal          bool
	TrialsExecuted int
	Failures       int
	MaxErrors      []float64
}

// ProbeEqual samples random points from [domainMin, domainMax] for each
// named symbol and compares both sides numerically. The PRNG is seeded
// deterministically: identical inputs produce bitwise identical results.
// Draws with magnitude below 1e-10 are nudged to domainMin + 0.1 to avoid
// division-by-tiny artifacts.
func ProbeEqual(lhs, rhs string, symbols []string, trials int, seed int64, domainMin, domainMax, threshold float64) (ProbeResult, error) {
	if len(symbols) == 0 {
		return ProbeResult{}, &NumericError{Msg: "No symbols provided for numeric probe"}
	}
	if trials <= 0 {
		return ProbeResult{}, &NumericError{Msg: "Number of trials must be positive"}
	}
	if domainMin >= domainMax {
		return ProbeResult{}, &NumericError{Msg: "Invalid domain: min must be less than max"}
	}

	l, err := Parse(lhs)
	if err != nil {
		return ProbeResult{}, err
	}
	r, err := Parse(rhs)
	if err != nil {
		return ProbeResult{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	failures := 0
	maxErrors := make([]float64, 0, trials)

	for trial := 0; trial < trials; trial++ {
		point := make(map[string]float64, len(symbols))
		for _, sym := range symbols {
			value := domainMin + rng.Float64()*(domainMax-domainMin)
			if math.Abs(value) < 1e-10 {
				value = domainMin + 0.1
			}
			point[sym] = value
		}

		lhsVal, lerr := Eval(l, point)
		rhsVal, rerr := Eval(r, point)
		if lerr != nil || rerr != nil || !isFinite(lhsVal) || !isFinite(rhsVal) {
			failures++
			maxErrors = append(maxErrors, math.Inf(1))
			continue
		}

		absErr := math.Abs(lhsVal - rhsVal)
		relErr := absErr / (math.Abs(rhsVal) + 1e-10)
		trialErr := math.Max(absErr, relErr)
		maxErrors = append(maxErrors, trialErr)
		if trialErr > threshold {
			failures++
		}
	}

	return ProbeResult{
		Equal:          failures == 0,
		TrialsExecuted: trials,
		Failures:       failures,
		MaxErrors:      maxErrors,
	}, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
