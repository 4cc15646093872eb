package analysis

import "github.com/zdaoudi/decaylab/internal/decay"

// Ratio computes the daughter/parent population ratio pointwise. Where the
// parent population is exactly zero the ratio is reported as 0 rather than
// dividing by zero; this is a plotting convention, not a physical claim.
func Ratio(daughter, parent []float64) ([]float64, error) {
	if len(daughter) != len(parent) {
		return nil, &decay.DomainError{
			Param:  "traceLength",
			Value:  float64(len(daughter)),
			Reason: "daughter and parent traces must share one time grid",
		}
	}

	out := make([]float64, len(daughter))
	for i := range daughter {
		if parent[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = daughter[i] / parent[i]
	}
	return out, nil
}
