package analysis

import (
	"github.com/san-kum/orbitsim/internal/integrators"
)

// Summary holds the orbital elements recovered from one trajectory. Fields
// that need a turning point are zero when the run saw none.
type Summary struct {
	Samples   int
	Apsides   []Apsis
	Periapsis float64
	Apoapsis  float64
	// Eccentricity is (ra - rp) / (ra + rp) from the extreme apsides.
	Eccentricity float64
	// RadialPeriod is the mean time between periapsis passages.
	RadialPeriod float64
	// Precession is the periapsis advance per radial period, radians.
	Precession     []float64
	MeanPrecession float64
	// SpectralPeriod is 1 / dominant frequency of r(t).
	SpectralPeriod float64
	Section        *Section
}

func Analyze(states []integrators.State, times []float64) Summary {
	sum := Summary{Samples: min(len(states), len(times))}
	sum.Apsides = FindApsides(states, times)

	var peri []Apsis
	for _, a := range sum.Apsides {
		if a.Periapsis {
			peri = append(peri, a)
			if sum.Periapsis == 0 || a.Radius < sum.Periapsis {
				sum.Periapsis = a.Radius
			}
		} else if a.Radius > sum.Apoapsis {
			sum.Apoapsis = a.Radius
		}
	}
	if sum.Periapsis > 0 && sum.Apoapsis > 0 {
		sum.Eccentricity = (sum.Apoapsis - sum.Periapsis) / (sum.Apoapsis + sum.Periapsis)
	}
	if len(peri) >= 2 {
		sum.RadialPeriod = (peri[len(peri)-1].Time - peri[0].Time) / float64(len(peri)-1)
	}

	sum.Section = PeriapsisSection(sum.Apsides)
	sum.Precession = Precession(sum.Apsides)
	if len(sum.Precession) > 0 {
		total := 0.0
		for _, p := range sum.Precession {
			total += p
		}
		sum.MeanPrecession = total / float64(len(sum.Precession))
	}

	if n := UniformPrefix(times[:sum.Samples]); n >= 4 {
		radii := make([]float64, n)
		for i := range radii {
			radii[i] = states[i].Pos.Norm()
		}
		freqs, power := RadialSpectrum(radii, times[1]-times[0])
		if f := DominantFrequency(freqs, power); f > 0 {
			sum.SpectralPeriod = 1 / f
		}
	}
	return sum
}
