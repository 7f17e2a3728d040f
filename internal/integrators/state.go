package integrators

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/vec"
)

// State is the position and velocity of a single test particle, in the
// body's Cartesian frame. The caller owns it; steppers mutate it in place.
type State struct {
	Pos vec.Vec3
	Vel vec.Vec3
}

func NewState(pos, vel vec.Vec3) State {
	return State{Pos: pos, Vel: vel}
}

// CircularState places a particle at radius r on the +x axis moving in the
// x-y plane at the law's circular speed.
func CircularState(law gravity.Law, bh gravity.BlackHole, r float64) State {
	return State{
		Pos: vec.New(r, 0, 0),
		Vel: vec.New(0, law.CircularSpeed(bh, r), 0),
	}
}

func (s State) IsFinite() bool {
	return s.Pos.IsFinite() && s.Vel.IsFinite()
}

func (s State) String() string {
	return fmt.Sprintf("pos=%v vel=%v", s.Pos, s.Vel)
}

// Stepper advances a state by one time step under an acceleration law.
type Stepper interface {
	Name() string
	Step(s *State, dt float64, bh gravity.BlackHole, accel gravity.Accelerator)
}
