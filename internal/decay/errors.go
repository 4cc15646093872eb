package decay

import (
	"errors"
	"fmt"
)

// Domain errors for simulation parameters.
var (
	// ErrDomain indicates a physical or numeric parameter outside its valid domain.
	ErrDomain = errors.New("decay: parameter out of valid domain")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("decay: dimension mismatch between state and system")
)

// DomainError reports an invalid simulation parameter with its offending value.
// It unwraps to [ErrDomain] so callers can match the whole class with errors.Is.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("decay: %s = %g %s", e.Param, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
