// Package analysis extracts orbital elements from a recorded trajectory.
//
//   - [FindApsides]: periapsis and apoapsis passages, refined between samples
//   - [Precession]: periapsis advance per radial period
//   - [PeriapsisSection]: Poincaré section at each periapsis passage
//   - [RadialSpectrum]: power spectrum of r(t)
//   - [Analyze]: all of the above as one [Summary]
//
// # Precession
//
// Newtonian orbits close on themselves, so the advance is zero up to
// integrator error. Under the Paczyński–Wiita law bound orbits precess
// prograde:
//
//	sum := analysis.Analyze(result.States, result.Times)
//	if sum.MeanPrecession > 0 {
//	    // periapsis advances each orbit
//	}
package analysis
