package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
)

// Periapsis records the smallest radius reached, in units of r_s.
type Periapsis struct {
	name string
	bh   gravity.BlackHole
	min  float64
}

func NewPeriapsis(bh gravity.BlackHole) *Periapsis {
	return &Periapsis{name: "min_radius_rs", bh: bh, min: math.Inf(1)}
}

func (p *Periapsis) Name() string { return p.name }

func (p *Periapsis) Observe(step int, t float64, x integrators.State) {
	p.min = math.Min(p.min, x.Pos.Norm()/p.bh.SchwarzschildRadius())
}

func (p *Periapsis) Value() float64 { return p.min }

func (p *Periapsis) Reset() { p.min = math.Inf(1) }

// Absorption reports the first step at which the particle was inside the
// absorption radius, or -1 if it never was.
type Absorption struct {
	name string
	bh   gravity.BlackHole
	step int
}

func NewAbsorption(bh gravity.BlackHole) *Absorption {
	return &Absorption{name: "absorbed_step", bh: bh, step: -1}
}

func (a *Absorption) Name() string { return a.name }

func (a *Absorption) Observe(step int, t float64, x integrators.State) {
	if a.step < 0 && gravity.Absorbed(x.Pos, a.bh) {
		a.step = step
	}
}

func (a *Absorption) Value() float64 { return float64(a.step) }

func (a *Absorption) Reset() { a.step = -1 }
