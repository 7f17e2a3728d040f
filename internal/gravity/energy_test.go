package gravity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/vec"
)

var _ = Describe("orbital invariants", func() {
	var bh gravity.BlackHole

	BeforeEach(func() {
		bh = gravity.FromSolarMass(10)
	})

	DescribeTable("circular orbits are bound",
		func(law gravity.Law, radiusRs float64) {
			r := radiusRs * bh.SchwarzschildRadius()
			v := law.CircularSpeed(bh, r)
			e := gravity.SpecificEnergy(law, bh, vec.New(r, 0, 0), vec.New(0, v, 0))
			Expect(e).To(BeNumerically("<", 0))
		},
		Entry("newtonian at 20 r_s", gravity.Law(gravity.Newtonian{}), 20.0),
		Entry("newtonian at 3 r_s", gravity.Law(gravity.Newtonian{}), 3.0),
		Entry("pw at ISCO", gravity.Law(gravity.PaczynskiWiita{}), 3.0),
		Entry("pw at 20 r_s", gravity.Law(gravity.PaczynskiWiita{}), 20.0),
	)

	It("places the pw marginally bound orbit at zero energy", func() {
		law := gravity.PaczynskiWiita{}
		r := bh.MarginallyBound()
		v := law.CircularSpeed(bh, r)
		e := gravity.SpecificEnergy(law, bh, vec.New(r, 0, 0), vec.New(0, v, 0))
		scale := bh.GM() / r
		Expect(e / scale).To(BeNumerically("~", 0, 1e-12))
	})

	It("computes angular momentum as |r x v|", func() {
		l := gravity.SpecificAngularMomentum(vec.New(2, 0, 0), vec.New(0, 3, 0))
		Expect(l).To(BeNumerically("~", 6, 1e-12))
	})

	It("keeps the absorption test independent of the law", func() {
		inside := vec.New(0, bh.SchwarzschildRadius(), 0)
		Expect(gravity.Absorbed(inside, bh)).To(BeTrue())
		Expect(gravity.PaczynskiWiita{}.Accel(inside, bh)).To(Equal(vec.Vec3{}))
		Expect(gravity.Newtonian{}.Accel(inside, bh).Norm()).To(BeNumerically(">", 0))
	})
})
