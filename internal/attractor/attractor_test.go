package attractor_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/trajectory"
	"github.com/san-kum/attractor/internal/vecmath"
)

var _ = Describe("Params", func() {
	It("defaults to the classic chaotic regime", func() {
		p := attractor.DefaultParams()
		Expect(p.Sigma).To(BeNumerically("==", 10))
		Expect(p.Rho).To(BeNumerically("==", 28))
		Expect(p.Beta).To(BeNumerically("~", 8.0/3.0, 1e-6))
	})

	It("computes the Lorenz derivative", func() {
		d := attractor.DefaultParams().Derive(vecmath.New(1, 1, 1))
		Expect(d.X).To(BeNumerically("~", 0, 1e-6))
		Expect(d.Y).To(BeNumerically("~", 26, 1e-6))
		Expect(d.Z).To(BeNumerically("~", 1-8.0/3.0, 1e-5))
	})

	It("vanishes at the origin fixed point", func() {
		Expect(attractor.DefaultParams().Derive(vecmath.Zero)).To(Equal(vecmath.Zero))
	})
})

var _ = Describe("Attractor", func() {
	params := attractor.DefaultParams()

	Describe("New", func() {
		It("creates exactly n trajectories inside the seeding box", func() {
			a, err := attractor.New(200, params, attractor.WithSeed(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Len()).To(Equal(200))

			for _, t := range a.Trajectories() {
				Expect(t.Len()).To(Equal(1))
				Expect(t.Cap()).To(Equal(attractor.DefaultTrailLength))
				Expect(t.ShowPath()).To(BeTrue())

				p := t.Last()
				Expect(p.X).To(And(BeNumerically(">=", 0), BeNumerically("<", 10)))
				Expect(p.Y).To(And(BeNumerically(">=", 0), BeNumerically("<", 10)))
				Expect(p.Z).To(And(BeNumerically(">=", 10), BeNumerically("<", 20)))
			}
		})

		It("applies options", func() {
			a, err := attractor.New(3, params,
				attractor.WithTrailLength(7),
				attractor.WithPhysicsScale(1),
				attractor.WithShowPath(false),
				attractor.WithSeed(1),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.PhysicsScale()).To(BeNumerically("==", 1))
			Expect(a.TrailLength()).To(Equal(7))
			Expect(a.Trajectory(0).Cap()).To(Equal(7))
			Expect(a.Trajectory(0).ShowPath()).To(BeFalse())
		})

		It("seeds reproducibly from a fixed seed", func() {
			a, _ := attractor.New(10, params, attractor.WithSeed(42))
			b, _ := attractor.New(10, params, attractor.WithSeed(42))
			for i := 0; i < a.Len(); i++ {
				Expect(a.Trajectory(i).Last()).To(Equal(b.Trajectory(i).Last()))
			}
		})

		It("rejects an empty population", func() {
			for _, n := range []int{0, -5} {
				a, err := attractor.New(n, params)
				Expect(err).To(MatchError(attractor.ErrInvalidPopulation))
				Expect(a).To(BeNil())
			}
		})

		It("rejects a zero trail length", func() {
			_, err := attractor.New(1, params, attractor.WithTrailLength(0))
			Expect(err).To(MatchError(trajectory.ErrInvalidCapacity))
		})
	})

	Describe("Step", func() {
		It("matches the hand-computed Euler step", func() {
			a, _ := attractor.New(1, attractor.Params{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0},
				attractor.WithPhysicsScale(0.2))
			next := a.Step(vecmath.New(1, 1, 1), 0.01)

			Expect(next.X).To(BeNumerically("~", 1.0, 1e-4))
			Expect(next.Y).To(BeNumerically("~", 1.052, 1e-4))
			// dz = 1 - 8/3, so z moves by -1.667 * 0.01 * 0.2.
			Expect(next.Z).To(BeNumerically("~", 1+(1-8.0/3.0)*0.002, 1e-5))
			Expect(next.Z).To(BeNumerically("~", 0.99667, 1e-4))
		})

		It("is the identity for dt = 0", func() {
			a, _ := attractor.New(1, params)
			p := vecmath.New(3.5, -2.25, 17)
			Expect(a.Step(p, 0)).To(Equal(p))
		})

		It("moves faster without physics scaling", func() {
			scaled, _ := attractor.New(1, params)
			raw, _ := attractor.New(1, params, attractor.WithPhysicsScale(1))
			p := vecmath.New(1, 1, 1)

			ds := scaled.Step(p, 0.01).DistanceTo(p)
			dr := raw.Step(p, 0.01).DistanceTo(p)
			Expect(dr).To(BeNumerically("~", ds*5, 1e-4))
		})
	})

	Describe("Update", func() {
		var a *attractor.Attractor

		BeforeEach(func() {
			var err error
			a, err = attractor.New(25, params, attractor.WithSeed(3), attractor.WithTrailLength(4))
			Expect(err).NotTo(HaveOccurred())
		})

		It("appends one Euler step to every trajectory", func() {
			before := make([]vecmath.Vector3, a.Len())
			for i, t := range a.Trajectories() {
				before[i] = t.Last()
			}

			a.Update(1.0 / 240)

			Expect(a.Ticks()).To(BeEquivalentTo(1))
			for i, t := range a.Trajectories() {
				Expect(t.Len()).To(Equal(2))
				Expect(t.At(0)).To(Equal(before[i]))
				Expect(t.Last()).To(Equal(a.Step(before[i], 1.0/240)))
			}
		})

		It("leaves the current point unchanged for dt = 0", func() {
			before := a.Trajectory(0).Last()
			a.Update(0)
			Expect(a.Trajectory(0).Last()).To(Equal(before))
			Expect(a.Trajectory(0).Len()).To(Equal(2))
		})

		It("caps every trail at the configured length", func() {
			for i := 0; i < 20; i++ {
				a.Update(0.01)
			}
			for _, t := range a.Trajectories() {
				Expect(t.Len()).To(Equal(4))
			}
		})

		It("is deterministic on cloned state", func() {
			a.Update(0.02)
			c := a.Clone()
			for i := 0; i < 50; i++ {
				a.Update(0.004)
				c.Update(0.004)
			}
			for i := 0; i < a.Len(); i++ {
				Expect(c.Trajectory(i).Points(nil)).To(Equal(a.Trajectory(i).Points(nil)))
			}
		})

		It("does not allocate", func() {
			allocs := testing.AllocsPerRun(100, func() { a.Update(1.0 / 240) })
			Expect(allocs).To(BeZero())
		})

		It("stays finite over a long run", func() {
			for i := 0; i < 5000; i++ {
				a.Update(1.0 / 240)
			}
			for _, t := range a.Trajectories() {
				Expect(t.Last().IsFinite()).To(BeTrue())
			}
		})
	})

	Describe("Reset", func() {
		It("reseeds single-point trajectories and clears the tick count", func() {
			a, _ := attractor.New(5, params, attractor.WithSeed(9))
			a.SetShowPath(false)
			for i := 0; i < 10; i++ {
				a.Update(0.01)
			}
			a.Reset()

			Expect(a.Ticks()).To(BeZero())
			for _, t := range a.Trajectories() {
				Expect(t.Len()).To(Equal(1))
				Expect(t.ShowPath()).To(BeFalse())
				Expect(t.Last().Z).To(And(BeNumerically(">=", 10), BeNumerically("<", 20)))
			}
		})
	})
})

var _ = Describe("Clone", func() {
	params := attractor.DefaultParams()

	firstPoints := func(a *attractor.Attractor) []vecmath.Vector3 {
		pts := make([]vecmath.Vector3, a.Len())
		for i := range pts {
			pts[i] = a.Trajectory(i).Last()
		}
		return pts
	}

	It("does not advance the original's random source", func() {
		a, _ := attractor.New(4, params, attractor.WithSeed(11))
		b, _ := attractor.New(4, params, attractor.WithSeed(11))

		a.Clone()
		a.Reset()
		b.Reset()
		Expect(firstPoints(a)).To(Equal(firstPoints(b)))
	})

	It("resets to the same points as the original", func() {
		a, _ := attractor.New(4, params, attractor.WithSeed(12))
		c := a.Clone()

		a.Reset()
		c.Reset()
		Expect(firstPoints(c)).To(Equal(firstPoints(a)))

		c.Reset()
		Expect(firstPoints(c)).NotTo(Equal(firstPoints(a)))
	})
})
