package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/integrators"
)

// Metric accumulates a scalar diagnostic over a run.
type Metric interface {
	Name() string
	Observe(step int, t float64, x integrators.State)
	Value() float64
	Reset()
}

// Observer is notified after every step, including the initial state at step 0.
type Observer interface {
	OnStep(step int, t float64, x integrators.State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, t float64, x integrators.State)

func (f ObserverFunc) OnStep(step int, t float64, x integrators.State) { f(step, t, x) }

type Config struct {
	Dt    float64
	Steps int
	// RecordEvery keeps every n-th state in the result; the initial and
	// final states are always kept. Values below 1 mean every step.
	RecordEvery int
	// StopOnAbsorb ends the run at the first step inside the absorption
	// radius. Otherwise absorption is only reported.
	StopOnAbsorb bool
	// ValidateState aborts with ErrNonFinite once a component goes NaN/Inf.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Steps:         100,
		RecordEvery:   1,
		ValidateState: true,
	}
}

func (c Config) validate() error {
	if math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be finite, got %v", ErrInvalidConfig, c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

type Result struct {
	States     []integrators.State
	Times      []float64
	Final      integrators.State
	Metrics    map[string]float64
	StepsTaken int
	// Absorbed is set once the particle first comes within the absorption
	// radius; AbsorbedStep is -1 until then.
	Absorbed     bool
	AbsorbedStep int
	AbsorbedTime float64
}

// Radii returns |pos| for every recorded state.
func (r *Result) Radii() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Pos.Norm()
	}
	return out
}

// Speeds returns |vel| for every recorded state.
func (r *Result) Speeds() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Vel.Norm()
	}
	return out
}
