package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/integrators"
)

// RadiusDrift is the largest relative deviation of |pos| from its initial
// value. For a circular orbit it measures how well the orbit holds.
type RadiusDrift struct {
	name    string
	r0      float64
	maxDev  float64
	samples int
}

func NewRadiusDrift() *RadiusDrift {
	return &RadiusDrift{name: "radius_drift"}
}

func (r *RadiusDrift) Name() string { return r.name }

func (r *RadiusDrift) Observe(step int, t float64, x integrators.State) {
	radius := x.Pos.Norm()
	if r.samples == 0 {
		r.r0 = radius
	}
	r.samples++
	if r.r0 != 0 {
		r.maxDev = math.Max(r.maxDev, math.Abs(radius-r.r0)/r.r0)
	}
}

func (r *RadiusDrift) Value() float64 { return r.maxDev }

func (r *RadiusDrift) Reset() {
	r.r0 = 0
	r.maxDev = 0
	r.samples = 0
}

// SpeedDrift is the largest relative deviation of |vel| from its initial value.
type SpeedDrift struct {
	name    string
	v0      float64
	maxDev  float64
	samples int
}

func NewSpeedDrift() *SpeedDrift {
	return &SpeedDrift{name: "speed_drift"}
}

func (s *SpeedDrift) Name() string { return s.name }

func (s *SpeedDrift) Observe(step int, t float64, x integrators.State) {
	v := x.Vel.Norm()
	if s.samples == 0 {
		s.v0 = v
	}
	s.samples++
	if s.v0 != 0 {
		s.maxDev = math.Max(s.maxDev, math.Abs(v-s.v0)/s.v0)
	}
}

func (s *SpeedDrift) Value() float64 { return s.maxDev }

func (s *SpeedDrift) Reset() {
	s.v0 = 0
	s.maxDev = 0
	s.samples = 0
}
