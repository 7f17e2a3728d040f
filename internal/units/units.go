// Package units holds the SI constants shared by the gravity models.
package units

const (
	// G is the gravitational constant, m^3 kg^-1 s^-2.
	G = 6.67430e-11
	// C is the speed of light, m s^-1.
	C = 299_792_458.0
	// MSun is one solar mass, kg.
	MSun = 1.98892e30
)

// SchwarzschildRadius returns r_s = 2GM/c^2 in meters.
func SchwarzschildRadius(massKg float64) float64 {
	return 2 * G * massKg / (C * C)
}

// SolarMasses converts a mass in kilograms to solar masses.
func SolarMasses(massKg float64) float64 {
	return massKg / MSun
}
