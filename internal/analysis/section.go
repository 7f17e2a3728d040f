package analysis

import "math"

// Section holds one point per periapsis passage, in the orbital plane with
// x along the initial position. A closed orbit collapses to a single point;
// a precessing one traces a ring of radius r_p.
type Section struct {
	Points []struct{ X, Y float64 }
}

// PeriapsisSection is the Poincaré section of the radial motion taken at
// each periapsis.
func PeriapsisSection(apsides []Apsis) *Section {
	section := &Section{Points: make([]struct{ X, Y float64 }, 0)}
	for _, a := range apsides {
		if !a.Periapsis {
			continue
		}
		section.Points = append(section.Points, struct{ X, Y float64 }{
			X: a.Radius * math.Cos(a.Angle),
			Y: a.Radius * math.Sin(a.Angle),
		})
	}
	return section
}
