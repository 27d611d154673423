package phase_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajopt/internal/boundary"
	"github.com/san-kum/trajopt/internal/model"
	"github.com/san-kum/trajopt/internal/phase"
)

var _ = Describe("Phase", func() {
	var p *phase.Phase

	BeforeEach(func() {
		p = phase.New("climb")
		p.SetStateOptions("h", phase.VarOptions{Shape: []int{1}, Units: "m"})
		p.SetStateOptions("gam", phase.VarOptions{Shape: []int{1}, Units: "rad"})
		p.AddControl("alpha", phase.VarOptions{Shape: []int{1}, Units: "deg"})
	})

	Describe("AddBoundaryConstraint", func() {
		It("inherits shape and units from a declared state", func() {
			spec := boundary.ConstraintSpec{Name: "h", Ref: 1.0, ResRef: 1.0, Equals: boundary.Bound(20000)}
			Expect(p.AddBoundaryConstraint(boundary.Final, spec)).To(Succeed())

			specs := p.Registry(boundary.Final).Specs()
			Expect(specs).To(HaveLen(1))
			Expect(specs[0].Shape).To(Equal([]int{1}))
			Expect(specs[0].Units).To(Equal("m"))
		})

		It("accepts names the phase never declared", func() {
			spec := boundary.DefaultSpec("aero.mach")
			spec.Equals = boundary.Bound(1.0)
			Expect(p.AddBoundaryConstraint(boundary.Final, spec)).To(Succeed())
		})

		It("rejects an unknown location", func() {
			err := p.AddBoundaryConstraint("middle", boundary.DefaultSpec("h"))
			Expect(err).To(MatchError(boundary.ErrBadLoc))
		})

		It("rejects duplicates per location but not across locations", func() {
			Expect(p.AddBoundaryConstraint(boundary.Final, boundary.DefaultSpec("h"))).To(Succeed())
			Expect(p.AddBoundaryConstraint(boundary.Final, boundary.DefaultSpec("h"))).To(MatchError(boundary.ErrDuplicateName))
			Expect(p.AddBoundaryConstraint(boundary.Initial, boundary.DefaultSpec("h"))).To(Succeed())
		})
	})

	Describe("Setup", func() {
		var m *model.Model

		BeforeEach(func() {
			m = model.New()

			h := boundary.DefaultSpec("h")
			h.Units = "m"
			h.Equals = boundary.Bound(20000)
			h.Scaler = boundary.Scalar(1.0e-3)
			Expect(p.AddBoundaryConstraint(boundary.Final, h)).To(Succeed())

			gam := boundary.DefaultSpec("gam")
			gam.Units = "rad"
			gam.Lower = boundary.Bound(-1.5)
			Expect(p.AddBoundaryConstraint(boundary.Final, gam)).To(Succeed())

			v := boundary.DefaultSpec("v")
			v.Units = "m/s"
			v.Equals = boundary.Bound(135.964)
			Expect(p.AddBoundaryConstraint(boundary.Initial, v)).To(Succeed())
		})

		It("builds every declared pair into the model", func() {
			sys, err := p.Setup(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(sys.Comps()).To(HaveLen(2))
			Expect(sys.Vars()).To(HaveLen(3))

			Expect(m.Inputs()).To(ContainElements(
				"initial_value_in:v", "final_value_in:h", "final_value_in:gam"))
			Expect(m.Outputs()).To(ContainElements(
				"initial_value:v", "final_value:h", "final_value:gam"))
			Expect(m.ConstrainedOutputs()).To(HaveLen(3))
		})

		It("forwards normalized bounds to the constraint set", func() {
			_, err := p.Setup(m)
			Expect(err).NotTo(HaveOccurred())

			meta, ok := m.ConstraintOn("final_value:gam")
			Expect(ok).To(BeTrue())
			Expect(meta.Lower).To(Equal([]float64{-1.5}))
			Expect(meta.Upper).To(Equal([]float64{boundary.InfBound}))
		})

		It("runs exactly once", func() {
			_, err := p.Setup(m)
			Expect(err).NotTo(HaveOccurred())
			_, err = p.Setup(model.New())
			Expect(err).To(HaveOccurred())
		})

		It("rejects declarations after setup", func() {
			_, err := p.Setup(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.AddBoundaryConstraint(boundary.Final, boundary.DefaultSpec("late"))).To(HaveOccurred())
		})

		It("passes input values through on evaluate", func() {
			sys, err := p.Setup(m)
			Expect(err).NotTo(HaveOccurred())

			Expect(m.SetValue("final_value_in:h", []float64{19500})).To(Succeed())
			Expect(m.SetValue("final_value_in:gam", []float64{-0.05})).To(Succeed())
			Expect(m.SetValue("initial_value_in:v", []float64{135.964})).To(Succeed())

			sys.Evaluate()

			Expect(m.Value("final_value:h")).To(Equal([]float64{19500}))
			Expect(m.Value("final_value:gam")).To(Equal([]float64{-0.05}))
			Expect(m.Value("initial_value:v")).To(Equal([]float64{135.964}))

			// Next iteration sees refreshed inputs.
			m.Value("final_value_in:h")[0] = 20000
			sys.Evaluate()
			Expect(m.Value("final_value:h")).To(Equal([]float64{20000}))
		})
	})

	Describe("Setup with no declarations", func() {
		It("builds an empty system", func() {
			empty := phase.New("empty")
			sys, err := empty.Setup(model.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(sys.Comps()).To(BeEmpty())
		})
	})
})
