package integrators

import "github.com/san-kum/orbitsim/internal/gravity"

// StepVelocityVerlet advances s by dt:
//
//	a0      = a(x_n)
//	x_{n+1} = x_n + v_n dt + a0 dt^2 / 2
//	a1      = a(x_{n+1})
//	v_{n+1} = v_n + (a0 + a1) dt / 2
//
// No checks are made on dt or the result, and absorption is not consulted.
// Negative dt integrates backward.
func StepVelocityVerlet(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator) {
	a0 := accel.Accel(s.Pos, bh)
	pos := s.Pos.Add(s.Vel.Mul(dt)).Add(a0.Mul(0.5 * dt * dt))
	a1 := accel.Accel(pos, bh)
	vel := s.Vel.Add(a0.Add(a1).Mul(0.5 * dt))

	s.Pos = pos
	s.Vel = vel
}

type VelocityVerlet struct{}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) Name() string { return "verlet" }

func (v *VelocityVerlet) Step(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator) {
	StepVelocityVerlet(s, dt, bh, accel)
}

// Leapfrog is the drift-kick-drift form: half a position update, a full
// velocity kick at the midpoint, then the second half drift.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator) {
	halfDt := 0.5 * dt
	mid := s.Pos.Add(s.Vel.Mul(halfDt))
	vel := s.Vel.Add(accel.Accel(mid, bh).Mul(dt))

	s.Pos = mid.Add(vel.Mul(halfDt))
	s.Vel = vel
}
