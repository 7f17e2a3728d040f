package gravity

import "github.com/san-kum/orbitsim/internal/units"

// BlackHole is the gravitating body. Mass is fixed at construction and not
// validated; non-positive masses produce whatever IEEE-754 arithmetic gives.
type BlackHole struct {
	MassKg float64
}

func NewBlackHole(massKg float64) BlackHole {
	return BlackHole{MassKg: massKg}
}

// FromSolarMass builds a body of m solar masses.
func FromSolarMass(m float64) BlackHole {
	return BlackHole{MassKg: m * units.MSun}
}

// SchwarzschildRadius returns 2GM/c^2 in meters.
func (b BlackHole) SchwarzschildRadius() float64 {
	return units.SchwarzschildRadius(b.MassKg)
}

// Rs is shorthand for SchwarzschildRadius.
func (b BlackHole) Rs() float64 {
	return b.SchwarzschildRadius()
}

// GM returns the gravitational parameter in m^3 s^-2.
func (b BlackHole) GM() float64 {
	return units.G * b.MassKg
}

func (b BlackHole) SolarMasses() float64 {
	return units.SolarMasses(b.MassKg)
}

// ISCO returns the innermost stable circular orbit of the Paczynski-Wiita
// potential, 3 r_s.
func (b BlackHole) ISCO() float64 {
	return 3 * b.SchwarzschildRadius()
}

// MarginallyBound returns the radius of the marginally bound circular orbit
// of the Paczynski-Wiita potential, 2 r_s.
func (b BlackHole) MarginallyBound() float64 {
	return 2 * b.SchwarzschildRadius()
}
