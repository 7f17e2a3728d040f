package integrators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
)

var _ = Describe("velocity-Verlet orbits", func() {
	var (
		bh  gravity.BlackHole
		r0  float64
		v0  float64
		dt  float64
		law gravity.Newtonian
	)

	BeforeEach(func() {
		bh = gravity.FromSolarMass(10)
		r0 = 20 * bh.SchwarzschildRadius()
		v0 = gravity.NewtonOrbitSpeed(bh, r0)
		dt = 0.01 * r0 / v0
	})

	It("holds radius and speed within 1% over 100 steps", func() {
		s := integrators.CircularState(law, bh, r0)
		for i := 0; i < 100; i++ {
			integrators.StepVelocityVerlet(&s, dt, bh, law)
		}
		Expect(s.Pos.Norm()).To(BeNumerically("~", r0, 0.01*r0))
		Expect(s.Vel.Norm()).To(BeNumerically("~", v0, 0.01*v0))
	})

	It("keeps a circular orbit stable for ten revolutions", func() {
		s := integrators.CircularState(law, bh, r0)
		steps := int(math.Round(10 * 2 * math.Pi / 0.01))
		maxDev := 0.0
		for i := 0; i < steps; i++ {
			integrators.StepVelocityVerlet(&s, dt, bh, law)
			maxDev = math.Max(maxDev, math.Abs(s.Pos.Norm()-r0)/r0)
		}
		Expect(maxDev).To(BeNumerically("<", 1e-3))
	})

	It("bounds energy error instead of drifting", func() {
		s := integrators.CircularState(law, bh, r0)
		e0 := gravity.SpecificEnergy(law, bh, s.Pos, s.Vel)
		for i := 0; i < 20000; i++ {
			integrators.StepVelocityVerlet(&s, dt, bh, law)
		}
		e := gravity.SpecificEnergy(law, bh, s.Pos, s.Vel)
		Expect(math.Abs((e - e0) / e0)).To(BeNumerically("<", 1e-3))
	})

	It("retraces its path when dt is negated", func() {
		start := integrators.CircularState(law, bh, r0)
		s := start
		for i := 0; i < 500; i++ {
			integrators.StepVelocityVerlet(&s, dt, bh, law)
		}
		for i := 0; i < 500; i++ {
			integrators.StepVelocityVerlet(&s, -dt, bh, law)
		}
		Expect(s.Pos.Sub(start.Pos).Norm() / r0).To(BeNumerically("<", 1e-9))
		Expect(s.Vel.Sub(start.Vel).Norm() / v0).To(BeNumerically("<", 1e-9))
	})

	It("follows a pw circular orbit outside the ISCO", func() {
		pw := gravity.PaczynskiWiita{}
		r := 10 * bh.SchwarzschildRadius()
		s := integrators.CircularState(pw, bh, r)
		h := 0.002 * r / s.Vel.Norm()
		for i := 0; i < 5000; i++ {
			integrators.StepVelocityVerlet(&s, h, bh, pw)
		}
		Expect(s.Pos.Norm()).To(BeNumerically("~", r, 1e-3*r))
		Expect(gravity.Absorbed(s.Pos, bh)).To(BeFalse())
	})
})
