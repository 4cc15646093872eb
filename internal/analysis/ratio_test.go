package analysis

import (
	"errors"
	"testing"

	"github.com/zdaoudi/decaylab/internal/decay"
)

func TestRatioZeroParentConvention(t *testing.T) {
	// Parent forced to zero at index 2.
	parent := []float64{1000, 500, 0, 125}
	daughter := []float64{0, 400, 700, 800}

	ratio, err := Ratio(daughter, parent)
	if err != nil {
		t.Fatalf("ratio failed: %v", err)
	}

	expected := []float64{0, 0.8, 0, 6.4}
	for i := range expected {
		if ratio[i] != expected[i] {
			t.Errorf("ratio[%d] = %g, expected %g", i, ratio[i], expected[i])
		}
	}
}

func TestRatioLengthMismatch(t *testing.T) {
	_, err := Ratio([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, decay.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}
