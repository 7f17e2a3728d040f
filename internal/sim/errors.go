package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/orbitsim/internal/integrators"
)

var (
	// ErrInvalidConfig indicates run parameters that cannot be stepped.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrNonFinite indicates the state picked up a NaN or Inf.
	ErrNonFinite = errors.New("sim: state is not finite (NaN or Inf detected)")
)

// SimulationError wraps an error with the step at which it happened.
type SimulationError struct {
	Step    int
	Time    float64
	State   integrators.State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4g s): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
