package generators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
)

var _ = Describe("Spiral", func() {
	var s *generators.Spiral

	BeforeEach(func() {
		s = generators.NewSpiral()
	})

	It("starts from documented defaults", func() {
		Expect(s.BaseRadius).To(Equal(2.0))
		Expect(s.Height).To(Equal(0.0))
		Expect(s.AngularSpeed).To(Equal(2.0))
		Expect(s.VerticalSpeed).To(Equal(0.5))
		Expect(s.TotalTime).To(Equal(0.0))
	})

	It("returns (0, 0, 2) for a zero-time frame", func() {
		p := s.Evaluate(0, 0)

		Expect(p.X).To(Equal(0.0))
		Expect(p.Y).To(Equal(0.0))
		Expect(p.Z).To(Equal(2.0))
		Expect(s.Height).To(Equal(0.0))
	})

	It("accumulates total time by exactly the supplied t", func() {
		for _, t := range []float64{0.016, 0.2, 0, 1.5, 0.033} {
			before := s.TotalTime
			s.Evaluate(t, 0.01)
			Expect(s.TotalTime).To(Equal(before + t))
		}
	})

	It("returns the height from before this frame's vertical step", func() {
		p1 := s.Evaluate(0.1, 1.0)
		Expect(p1.Y).To(Equal(0.0))

		p2 := s.Evaluate(0.1, 1.0)
		Expect(p2.Y).To(Equal(0.5))
	})

	It("derives planar position from the breathing radius", func() {
		s.Evaluate(1.0, 0)

		radius := 2.0 * (1 + 0.3*math.Sin(0.5))
		Expect(s.TotalTime).To(Equal(1.0))
		p := s.Evaluate(0, 0)
		Expect(p.X).To(BeNumerically("~", radius*math.Sin(2.0), 1e-12))
		Expect(p.Z).To(BeNumerically("~", radius*math.Cos(2.0), 1e-12))
	})

	Describe("bounce rule", func() {
		It("does not flip at exactly the bound", func() {
			// 12 steps of 0.25 land Height exactly on 3.0; the
			// predicate is strict, so no bounce yet.
			for i := 0; i < 12; i++ {
				s.Evaluate(0.016, 0.5)
			}
			Expect(s.Height).To(Equal(3.0))
			Expect(s.VerticalSpeed).To(Equal(0.5))

			s.Evaluate(0.016, 0.5)
			Expect(s.Height).To(Equal(3.25))
			Expect(s.VerticalSpeed).To(Equal(-0.5))
		})

		It("flips exactly on the crossing frame and holds until the next", func() {
			s.Evaluate(0, 7) // height 0 -> 3.5, crossed
			Expect(s.VerticalSpeed).To(Equal(-0.5))

			s.Evaluate(0, 7) // height 3.5 -> 0, inside bounds
			Expect(s.VerticalSpeed).To(Equal(-0.5))

			s.Evaluate(0, 7) // height 0 -> -3.5, crossed again
			Expect(s.VerticalSpeed).To(Equal(0.5))
		})

		It("flips iff the post-step height exceeds the bound", func() {
			for i := 0; i < 500; i++ {
				before := s.VerticalSpeed
				s.Evaluate(0.016, 0.4)
				if math.Abs(s.Height) > generators.BounceBound {
					Expect(s.VerticalSpeed).To(Equal(-before))
				} else {
					Expect(s.VerticalSpeed).To(Equal(before))
				}
			}
		})
	})

	It("produces bit-identical output for identical input streams", func() {
		other := generators.NewSpiral()
		inputs := [][2]float64{{0.016, 0.016}, {0.2, 0.1}, {0, 7}, {1.5, 0.016}, {0.033, 0.033}}

		for _, in := range inputs {
			a := s.Evaluate(in[0], in[1])
			b := other.Evaluate(in[0], in[1])
			Expect(a).To(Equal(b))
		}
		Expect(*s).To(Equal(*other))
	})

	It("restores defaults on Reset", func() {
		s.Evaluate(1.0, 7)
		s.Reset()
		Expect(*s).To(Equal(*generators.NewSpiral()))
	})

	Describe("parameters", func() {
		It("exposes tunables", func() {
			Expect(s.Params()).To(HaveKeyWithValue("base_radius", 2.0))
			Expect(s.Params()).To(HaveKeyWithValue("angular_speed", 2.0))
			Expect(s.Params()).To(HaveKeyWithValue("vertical_speed", 0.5))
		})

		It("rejects unknown names", func() {
			err := s.SetParam("girth", 1.0)
			Expect(err).To(MatchError(motion.ErrUnknownParam))
		})

		It("applies known names", func() {
			Expect(s.SetParam("base_radius", 4.0)).To(Succeed())
			Expect(s.BaseRadius).To(Equal(4.0))
		})
	})
})
