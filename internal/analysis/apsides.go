package analysis

import (
	"math"

	"github.com/san-kum/orbitsim/internal/integrators"
)

// Apsis is a turning point of the radial motion.
type Apsis struct {
	// Periapsis is true for a radius minimum, false for a maximum.
	Periapsis bool
	// Index is the sample nearest the turning point.
	Index  int
	Time   float64
	Radius float64
	// Angle is the unwrapped in-plane angle, radians.
	Angle float64
}

// PlaneAngles returns the unwrapped polar angle of each position in the
// plane normal to the initial angular momentum, measured from the initial
// position. A radial trajectory has no such plane and yields zeros.
func PlaneAngles(states []integrators.State) []float64 {
	angles := make([]float64, len(states))
	if len(states) == 0 {
		return angles
	}

	l := states[0].Pos.Cross(states[0].Vel)
	if l.Norm() == 0 || states[0].Pos.Norm() == 0 {
		return angles
	}
	e1 := states[0].Pos.Normalized()
	e3 := l.Normalized()
	e2 := e3.Cross(e1)

	offset := 0.0
	prev := 0.0
	for i, s := range states {
		a := math.Atan2(s.Pos.Dot(e2), s.Pos.Dot(e1))
		if i > 0 {
			switch d := a - prev; {
			case d > math.Pi:
				offset -= 2 * math.Pi
			case d < -math.Pi:
				offset += 2 * math.Pi
			}
		}
		prev = a
		angles[i] = a + offset
	}
	return angles
}

// FindApsides locates interior local extrema of |pos|. Time, radius and
// angle are refined with a parabola through the three samples around each
// extremum, so coarse recording still gives usable elements.
func FindApsides(states []integrators.State, times []float64) []Apsis {
	n := min(len(states), len(times))
	if n < 3 {
		return nil
	}

	r := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = states[i].Pos.Norm()
	}
	phi := PlaneAngles(states[:n])

	var out []Apsis
	for i := 1; i < n-1; i++ {
		lo := r[i] < r[i-1] && r[i] <= r[i+1]
		hi := r[i] > r[i-1] && r[i] >= r[i+1]
		if !lo && !hi {
			continue
		}

		den := r[i-1] - 2*r[i] + r[i+1]
		d, radius := 0.0, r[i]
		if den != 0 {
			d = 0.5 * (r[i-1] - r[i+1]) / den
			radius = r[i] - 0.125*(r[i-1]-r[i+1])*(r[i-1]-r[i+1])/den
		}

		j := i + 1
		if d < 0 {
			j = i - 1
		}
		frac := math.Abs(d)
		out = append(out, Apsis{
			Periapsis: lo,
			Index:     i,
			Time:      lerp(times[i], times[j], frac),
			Radius:    radius,
			Angle:     lerp(phi[i], phi[j], frac),
		})
	}
	return out
}

func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// Precession returns the periapsis advance, radians, between each pair of
// successive periapsis passages.
func Precession(apsides []Apsis) []float64 {
	var peri []Apsis
	for _, a := range apsides {
		if a.Periapsis {
			peri = append(peri, a)
		}
	}
	if len(peri) < 2 {
		return nil
	}
	out := make([]float64, len(peri)-1)
	for i := range out {
		out[i] = peri[i+1].Angle - peri[i].Angle - 2*math.Pi
	}
	return out
}
