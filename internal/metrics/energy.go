package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
)

// EnergyDrift tracks the largest relative change in specific orbital energy
// under the law that drives the run.
type EnergyDrift struct {
	name     string
	law      gravity.Law
	bh       gravity.BlackHole
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(law gravity.Law, bh gravity.BlackHole) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		law:  law,
		bh:   bh,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(step int, t float64, x integrators.State) {
	energy := gravity.SpecificEnergy(e.law, e.bh, x.Pos, x.Vel)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// AngularMomentumDrift tracks the largest relative change in |r x v|. Both
// laws are central, so any drift is integration error.
type AngularMomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{name: "angular_momentum_drift"}
}

func (a *AngularMomentumDrift) Name() string { return a.name }

func (a *AngularMomentumDrift) Observe(step int, t float64, x integrators.State) {
	l := gravity.SpecificAngularMomentum(x.Pos, x.Vel)
	if a.samples == 0 {
		a.initial = l
	}
	a.samples++

	if a.initial != 0 {
		a.maxDrift = math.Max(a.maxDrift, math.Abs(l-a.initial)/a.initial)
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
