package decay

import (
	"errors"
	"math"
	"testing"
)

func TestDecayConstants(t *testing.T) {
	halfLives := []float64{0.066, 1.0, 10.0, 4.468e9, 2.2e24}

	for _, h := range halfLives {
		lambda, tau, err := DecayConstants(h)
		if err != nil {
			t.Fatalf("DecayConstants(%g) failed: %v", h, err)
		}

		if math.Abs(lambda-math.Ln2/h) > 1e-15*lambda {
			t.Errorf("half-life %g: expected lambda %g, got %g", h, math.Ln2/h, lambda)
		}

		if math.Abs(lambda*tau-1) > 1e-12 {
			t.Errorf("half-life %g: lambda*tau = %g, expected 1", h, lambda*tau)
		}
	}
}

func TestDecayConstantsInvalid(t *testing.T) {
	for _, h := range []float64{0, -1, -4.5e9} {
		_, _, err := DecayConstants(h)
		if err == nil {
			t.Fatalf("DecayConstants(%g): expected error, got nil", h)
		}
		if !errors.Is(err, ErrDomain) {
			t.Errorf("DecayConstants(%g): expected domain error, got %v", h, err)
		}
	}
}
