package generators_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
)

var _ = Describe("Drift", func() {
	It("moves along its velocity by accumulated time", func() {
		d := generators.NewDrift()

		p := d.Evaluate(0.5, 0)
		Expect(p).To(Equal(motion.Point{X: 0.5}))

		p = d.Evaluate(0.5, 0)
		Expect(p).To(Equal(motion.Point{X: 1.0}))
	})

	It("offsets from a non-zero origin", func() {
		d := generators.NewDrift()
		d.Origin = motion.Point{X: 1, Y: 2, Z: 3}
		d.Velocity = motion.Point{Z: -2}

		p := d.Evaluate(1.5, 0)
		Expect(p).To(Equal(motion.Point{X: 1, Y: 2, Z: 0}))
	})

	It("tunes velocity through SetParam", func() {
		d := generators.NewDrift()
		Expect(d.SetParam("vy", 4.0)).To(Succeed())
		Expect(d.Params()).To(HaveKeyWithValue("vy", 4.0))
		Expect(d.SetParam("warp", 1.0)).To(MatchError(motion.ErrUnknownParam))
	})
})

var _ = Describe("Spinner", func() {
	It("advances angles at its per-axis rates", func() {
		sp := generators.NewSpinner()

		p := sp.Evaluate(1.0, 0)
		Expect(p).To(Equal(motion.Point{X: 10}))

		p = sp.Evaluate(2.0, 0)
		Expect(p).To(Equal(motion.Point{X: 30}))
	})

	It("wraps angles into [0, 360)", func() {
		sp := generators.NewSpinner()
		sp.Rates = motion.Point{X: 100, Y: -50}

		p := sp.Evaluate(4.0, 0)
		Expect(p.X).To(Equal(40.0))
		Expect(p.Y).To(Equal(160.0))
	})
})
