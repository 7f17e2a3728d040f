package integrators

import "github.com/san-kum/orbitsim/internal/gravity"

// SymplecticEuler updates velocity first, then drifts with the new velocity.
// First order, but symplectic.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) Name() string { return "euler" }

func (e *SymplecticEuler) Step(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator) {
	s.Vel = s.Vel.Add(accel.Accel(s.Pos, bh).Mul(dt))
	s.Pos = s.Pos.Add(s.Vel.Mul(dt))
}
