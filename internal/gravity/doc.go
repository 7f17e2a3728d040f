// Package gravity models the central mass and the acceleration laws a test
// particle feels around it.
//
// Two laws ship:
//
//   - [Newtonian]: inverse-square attraction, a = -GM/r^2
//   - [PaczynskiWiita]: pseudo-Newtonian potential with a shifted radial
//     coordinate, a = -GM/(r - r_s)^2, which reproduces the innermost stable
//     circular orbit at 3 r_s
//
// Both satisfy [Law] and can be handed to any stepper in the integrators
// package. Every function here is pure; degenerate geometry (particle at the
// origin, particle at or inside the horizon) yields a zero acceleration rather
// than an error.
//
// # Example
//
//	bh := gravity.FromSolarMass(10)
//	r0 := 20 * bh.SchwarzschildRadius()
//	v0 := gravity.NewtonOrbitSpeed(bh, r0)
//	a := gravity.Newtonian{}.Accel(vec.New(r0, 0, 0), bh)
package gravity
