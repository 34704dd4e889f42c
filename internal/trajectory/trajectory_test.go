package trajectory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/trajectory"
	"github.com/san-kum/attractor/internal/vecmath"
)

func pt(i int) vecmath.Vector3 {
	f := float32(i)
	return vecmath.New(f, f*2, f*3)
}

var _ = Describe("Trajectory", func() {
	var p0 = vecmath.New(1, 2, 3)

	Describe("New", func() {
		It("starts with exactly the initial point", func() {
			tr, err := trajectory.New(p0, 5, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(Equal(1))
			Expect(tr.Cap()).To(Equal(5))
			Expect(tr.At(0)).To(Equal(p0))
			Expect(tr.Last()).To(Equal(p0))
			Expect(tr.ShowPath()).To(BeTrue())
		})

		It("rejects a capacity below one", func() {
			for _, n := range []int{0, -1} {
				tr, err := trajectory.New(p0, n, true)
				Expect(err).To(MatchError(trajectory.ErrInvalidCapacity))
				Expect(tr).To(BeNil())
			}
		})
	})

	Describe("AddPoint", func() {
		It("grows until full, keeping insertion order", func() {
			tr, _ := trajectory.New(pt(0), 4, true)
			tr.AddPoint(pt(1))
			tr.AddPoint(pt(2))

			Expect(tr.Len()).To(Equal(3))
			Expect(tr.Points(nil)).To(Equal([]vecmath.Vector3{pt(0), pt(1), pt(2)}))
			Expect(tr.Last()).To(Equal(pt(2)))
		})

		It("retains exactly the last max points after overflow", func() {
			const maxPoints = 5
			tr, _ := trajectory.New(pt(0), maxPoints, true)
			for i := 1; i <= 23; i++ {
				tr.AddPoint(pt(i))
				Expect(tr.Len()).To(BeNumerically("<=", maxPoints))
			}

			Expect(tr.Len()).To(Equal(maxPoints))
			Expect(tr.Points(nil)).To(Equal([]vecmath.Vector3{pt(19), pt(20), pt(21), pt(22), pt(23)}))
			Expect(tr.At(0)).To(Equal(pt(19)))
			Expect(tr.Last()).To(Equal(pt(23)))
		})

		It("replaces the only point when capacity is one", func() {
			tr, _ := trajectory.New(pt(0), 1, false)
			tr.AddPoint(pt(7))
			tr.AddPoint(pt(8))

			Expect(tr.Len()).To(Equal(1))
			Expect(tr.Last()).To(Equal(pt(8)))
		})
	})

	Describe("reading", func() {
		var tr *trajectory.Trajectory

		BeforeEach(func() {
			tr, _ = trajectory.New(pt(0), 3, true)
			for i := 1; i <= 4; i++ {
				tr.AddPoint(pt(i))
			}
		})

		It("visits points oldest first", func() {
			var seen []vecmath.Vector3
			var idx []int
			tr.Each(func(i int, p vecmath.Vector3) {
				idx = append(idx, i)
				seen = append(seen, p)
			})
			Expect(idx).To(Equal([]int{0, 1, 2}))
			Expect(seen).To(Equal([]vecmath.Vector3{pt(2), pt(3), pt(4)}))
		})

		It("appends into a reused buffer", func() {
			buf := make([]vecmath.Vector3, 0, 8)
			buf = tr.Points(buf[:0])
			buf = tr.Points(buf[:0])
			Expect(buf).To(HaveLen(3))
			Expect(cap(buf)).To(Equal(8))
		})

		It("panics on out-of-range access", func() {
			Expect(func() { tr.At(3) }).To(Panic())
			Expect(func() { tr.At(-1) }).To(Panic())
		})

		It("clones independently", func() {
			c := tr.Clone()
			c.AddPoint(pt(99))
			Expect(tr.Last()).To(Equal(pt(4)))
			Expect(c.Last()).To(Equal(pt(99)))
		})
	})

	It("toggles the path flag without touching points", func() {
		tr, _ := trajectory.New(p0, 2, true)
		tr.SetShowPath(false)
		Expect(tr.ShowPath()).To(BeFalse())
		Expect(tr.Len()).To(Equal(1))
	})
})
