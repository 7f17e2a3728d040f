package gravity

import "github.com/san-kum/orbitsim/internal/vec"

// AbsorptionMargin is the factor above r_s inside which a particle counts as
// swallowed.
const AbsorptionMargin = 1.01

// Absorbed reports whether pos lies within AbsorptionMargin * r_s. It is a
// diagnostic; steppers never consult it.
func Absorbed(pos vec.Vec3, bh BlackHole) bool {
	return pos.Norm() <= AbsorptionMargin*bh.SchwarzschildRadius()
}

// SpecificEnergy returns v^2/2 + Phi(r) under the given law.
func SpecificEnergy(law Law, bh BlackHole, pos, vel vec.Vec3) float64 {
	v := vel.Norm()
	return 0.5*v*v + law.Potential(bh, pos.Norm())
}

// SpecificAngularMomentum returns |r x v|.
func SpecificAngularMomentum(pos, vel vec.Vec3) float64 {
	return pos.Cross(vel).Norm()
}
