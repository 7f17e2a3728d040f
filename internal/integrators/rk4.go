package integrators

import (
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/vec"
)

// RK4 is the classical fourth-order Runge-Kutta scheme applied to
// (x' = v, v' = a(x)). Accurate per step but not symplectic, so energy
// drifts secularly on long runs.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator) {
	halfDt := 0.5 * dt

	k1x, k1v := s.Vel, accel.Accel(s.Pos, bh)

	x2 := s.Pos.Add(k1x.Mul(halfDt))
	k2x, k2v := s.Vel.Add(k1v.Mul(halfDt)), accel.Accel(x2, bh)

	x3 := s.Pos.Add(k2x.Mul(halfDt))
	k3x, k3v := s.Vel.Add(k2v.Mul(halfDt)), accel.Accel(x3, bh)

	x4 := s.Pos.Add(k3x.Mul(dt))
	k4x, k4v := s.Vel.Add(k3v.Mul(dt)), accel.Accel(x4, bh)

	dt6 := dt / 6.0
	s.Pos = s.Pos.Add(weighted(k1x, k2x, k3x, k4x).Mul(dt6))
	s.Vel = s.Vel.Add(weighted(k1v, k2v, k3v, k4v).Mul(dt6))
}

func weighted(k1, k2, k3, k4 vec.Vec3) vec.Vec3 {
	return k1.Add(k2.Mul(2)).Add(k3.Mul(2)).Add(k4)
}
