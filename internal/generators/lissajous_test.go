package generators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
)

var _ = Describe("Lissajous", func() {
	var l *generators.Lissajous

	BeforeEach(func() {
		l = generators.NewLissajous()
	})

	It("starts from documented defaults", func() {
		Expect(l.Phase).To(Equal(0.0))
		Expect(l.Scale).To(Equal(3.0))
		Expect(l.SpeedMultiplier).To(Equal(1.0))
		Expect(l.Direction).To(Equal(1.0))
	})

	It("returns the origin for a zero-time frame", func() {
		p := l.Evaluate(0, 0)

		Expect(l.Phase).To(Equal(0.0))
		Expect(p).To(Equal(motion.Point{}))
	})

	It("advances phase by t scaled with the multiplier", func() {
		l.Evaluate(0.25, 0)
		Expect(l.Phase).To(Equal(0.25))

		l.SpeedMultiplier = 2.0
		l.Evaluate(0.25, 0)
		Expect(l.Phase).To(Equal(0.75))
	})

	Describe("phase wrap", func() {
		It("leaves all three wrap fields alone below the threshold", func() {
			l.Evaluate(3.0, 0)

			Expect(l.Phase).To(Equal(3.0))
			Expect(l.SpeedMultiplier).To(Equal(1.0))
			Expect(l.Direction).To(Equal(1.0))
		})

		It("resets phase, re-rolls cadence and flips direction atomically", func() {
			l.Evaluate(3.0, 0)
			p := l.Evaluate(3.5, 0) // phase 6.5 > 2π

			Expect(l.Phase).To(Equal(0.0))
			Expect(l.SpeedMultiplier).To(BeNumerically("~", 0.5+math.Abs(math.Sin(3.5))*1.5, 1e-12))
			Expect(l.Direction).To(Equal(-1.0))
			Expect(p).To(Equal(motion.Point{}))
		})

		It("re-rolls within [0.5, 2.0)", func() {
			for i := 0; i < 200; i++ {
				t := 0.05 + float64(i)*0.013
				l.Evaluate(t, 0)
				Expect(l.SpeedMultiplier).To(BeNumerically(">=", 0.5))
				Expect(l.SpeedMultiplier).To(BeNumerically("<", 2.0))
				Expect(math.Abs(l.Direction)).To(Equal(1.0))
			}
		})

		It("alternates direction on successive wraps", func() {
			wraps := 0
			prev := l.Direction
			for i := 0; i < 5000 && wraps < 4; i++ {
				l.Evaluate(0.1, 0)
				if l.Direction != prev {
					wraps++
					prev = l.Direction
				}
			}
			Expect(wraps).To(Equal(4))
		})
	})

	It("stays inside its documented bounds", func() {
		for i := 0; i < 10000; i++ {
			p := l.Evaluate(0.071, 0)
			Expect(math.Abs(p.X)).To(BeNumerically("<=", l.Scale))
			Expect(math.Abs(p.Z)).To(BeNumerically("<=", l.Scale))
			Expect(math.Abs(p.Y)).To(BeNumerically("<=", 0.5))
		}
	})

	It("produces bit-identical output for identical input streams", func() {
		other := generators.NewLissajous()
		for i := 0; i < 1000; i++ {
			t := math.Mod(float64(i)*0.037, 0.9)
			Expect(l.Evaluate(t, 0)).To(Equal(other.Evaluate(t, 0)))
		}
		Expect(*l).To(Equal(*other))
	})

	It("restores defaults on Reset", func() {
		l.Evaluate(7.0, 0)
		l.Reset()
		Expect(*l).To(Equal(*generators.NewLissajous()))
	})
})
