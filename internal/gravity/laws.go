package gravity

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/vec"
)

// Accelerator maps a position around a body to an acceleration per unit mass.
type Accelerator interface {
	Accel(pos vec.Vec3, bh BlackHole) vec.Vec3
}

// AccelFunc adapts a plain function to Accelerator.
type AccelFunc func(pos vec.Vec3, bh BlackHole) vec.Vec3

func (f AccelFunc) Accel(pos vec.Vec3, bh BlackHole) vec.Vec3 { return f(pos, bh) }

// Law is an acceleration law together with its analytic circular-orbit speed
// and the potential it derives from.
type Law interface {
	Accelerator
	Name() string
	// CircularSpeed is the speed of a circular orbit of the given radius.
	CircularSpeed(bh BlackHole, radius float64) float64
	// Potential is the specific potential energy at radius r.
	Potential(bh BlackHole, r float64) float64
}

const (
	NameNewtonian      = "newtonian"
	NamePaczynskiWiita = "pw"
)

type Newtonian struct{}

func (Newtonian) Name() string { return NameNewtonian }

func (Newtonian) Accel(pos vec.Vec3, bh BlackHole) vec.Vec3 {
	return NewtonianAccel(pos, bh)
}

func (Newtonian) CircularSpeed(bh BlackHole, radius float64) float64 {
	return NewtonOrbitSpeed(bh, radius)
}

func (Newtonian) Potential(bh BlackHole, r float64) float64 {
	return -bh.GM() / r
}

type PaczynskiWiita struct{}

func (PaczynskiWiita) Name() string { return NamePaczynskiWiita }

func (PaczynskiWiita) Accel(pos vec.Vec3, bh BlackHole) vec.Vec3 {
	return PWAccel(pos, bh)
}

func (PaczynskiWiita) CircularSpeed(bh BlackHole, radius float64) float64 {
	return PWOrbitSpeed(bh, radius)
}

func (PaczynskiWiita) Potential(bh BlackHole, r float64) float64 {
	return -bh.GM() / (r - bh.SchwarzschildRadius())
}

// NewtonianAccel returns -GM/r^2 along the position direction. A particle at
// the origin feels no force.
func NewtonianAccel(pos vec.Vec3, bh BlackHole) vec.Vec3 {
	r := pos.Norm()
	if r == 0 {
		return vec.Vec3{}
	}
	mag := -bh.GM() / (r * r)
	return pos.Normalized().Mul(mag)
}

// NewtonOrbitSpeed returns sqrt(GM/r).
func NewtonOrbitSpeed(bh BlackHole, radius float64) float64 {
	return math.Sqrt(bh.GM() / radius)
}

// PWAccel returns -GM/(r - r_s)^2 along the position direction. At or inside
// the horizon the acceleration saturates to zero.
func PWAccel(pos vec.Vec3, bh BlackHole) vec.Vec3 {
	r := pos.Norm()
	rs := bh.SchwarzschildRadius()
	if r <= rs {
		return vec.Vec3{}
	}
	d := r - rs
	mag := -bh.GM() / (d * d)
	return pos.Normalized().Mul(mag)
}

// PWOrbitSpeed returns sqrt(GM r)/(r - r_s). Only meaningful for r > r_s; it
// diverges as r approaches the horizon.
func PWOrbitSpeed(bh BlackHole, radius float64) float64 {
	return math.Sqrt(bh.GM()*radius) / (radius - bh.SchwarzschildRadius())
}

// LawByName resolves "newtonian" or "pw" (also "paczynski-wiita").
func LawByName(name string) (Law, error) {
	switch name {
	case NameNewtonian, "newton":
		return Newtonian{}, nil
	case NamePaczynskiWiita, "paczynski-wiita", "paczynski_wiita":
		return PaczynskiWiita{}, nil
	default:
		return nil, fmt.Errorf("unknown law: %s", name)
	}
}

// LawNames lists the canonical law names.
func LawNames() []string {
	return []string{NameNewtonian, NamePaczynskiWiita}
}
