package decay

import "math"

// DecayConstants converts a half-life (years) into the decay constant
// λ = ln2/halfLife and the mean lifetime τ = 1/λ.
func DecayConstants(halfLife float64) (lambda, tau float64, err error) {
	if halfLife <= 0 {
		return 0, 0, &DomainError{Param: "halfLife", Value: halfLife, Reason: "must be positive"}
	}
	lambda = math.Ln2 / halfLife
	return lambda, 1 / lambda, nil
}
