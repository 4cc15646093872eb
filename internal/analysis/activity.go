package analysis

// Activity computes the instantaneous decay rate A[i] = λ·N[i] for a
// population trace. The input is read only; the result is a fresh slice of
// the same length, time-aligned with the source trace.
func Activity(lambda float64, trace []float64) []float64 {
	out := make([]float64, len(trace))
	for i, n := range trace {
		out[i] = lambda * n
	}
	return out
}
