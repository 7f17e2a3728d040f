package integrators

import (
	"testing"

	"github.com/san-kum/orbitsim/internal/gravity"
)

func benchStepper(b *testing.B, st Stepper, law gravity.Law) {
	bh := gravity.FromSolarMass(10)
	r0 := 20 * bh.SchwarzschildRadius()
	s := CircularState(law, bh, r0)
	dt := 0.01 * r0 / s.Vel.Norm()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Step(&s, dt, bh, law)
	}
}

func BenchmarkVerletNewtonian(b *testing.B) {
	benchStepper(b, NewVelocityVerlet(), gravity.Newtonian{})
}

func BenchmarkVerletPW(b *testing.B) {
	benchStepper(b, NewVelocityVerlet(), gravity.PaczynskiWiita{})
}

func BenchmarkLeapfrog(b *testing.B) {
	benchStepper(b, NewLeapfrog(), gravity.Newtonian{})
}

func BenchmarkEuler(b *testing.B) {
	benchStepper(b, NewSymplecticEuler(), gravity.Newtonian{})
}

func BenchmarkRK4(b *testing.B) {
	benchStepper(b, NewRK4(), gravity.Newtonian{})
}
