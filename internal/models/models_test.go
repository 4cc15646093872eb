package models_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zdaoudi/decaylab/internal/decay"
	"github.com/zdaoudi/decaylab/internal/models"
)

var _ = Describe("Single decay", func() {
	species := decay.Species{Symbol: "X", Name: "Test Nuclide", HalfLife: 10}

	It("rejects a non-positive half-life", func() {
		_, err := models.NewSingle(decay.Species{Symbol: "X", HalfLife: 0})
		Expect(err).To(MatchError(decay.ErrDomain))

		_, err = models.NewSingle(decay.Species{Symbol: "X", HalfLife: -3})
		Expect(err).To(MatchError(decay.ErrDomain))
	})

	It("converges to the analytic solution for a fine grid", func() {
		single, err := models.NewSingle(species)
		Expect(err).NotTo(HaveOccurred())

		g, err := decay.NewGrid(50, 5000)
		Expect(err).NotTo(HaveOccurred())

		sim := decay.New(single, decay.NewEuler())
		result, err := sim.Run(decay.State{1_000_000}, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.States).To(HaveLen(5001))

		tau := 10 / math.Ln2
		exact := 1_000_000 * math.Exp(-50/tau)
		final := result.States[len(result.States)-1][0]

		// Global Euler error is O(dt); dt = 0.01 here.
		Expect(final).To(BeNumerically("~", exact, 0.005*exact))
	})

	It("matches the analytic trace point by point on the shared grid", func() {
		single, err := models.NewSingle(species)
		Expect(err).NotTo(HaveOccurred())

		g, err := decay.NewGrid(20, 2000)
		Expect(err).NotTo(HaveOccurred())

		analytic := single.Analytic(500_000, g)
		Expect(analytic).To(HaveLen(2001))
		Expect(analytic[0]).To(Equal(500_000.0))

		times := g.Times()
		tau := 10 / math.Ln2
		for _, i := range []int{1, 500, 1000, 2000} {
			Expect(analytic[i]).To(BeNumerically("~", 500_000*math.Exp(-times[i]/tau), 1e-6))
		}
	})

	It("produces an all-zero trace for a zero initial population", func() {
		single, err := models.NewSingle(species)
		Expect(err).NotTo(HaveOccurred())

		g, _ := decay.NewGrid(50, 100)
		sim := decay.New(single, decay.NewEuler())
		result, err := sim.Run(decay.State{0}, g)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range result.States {
			Expect(s[0]).To(BeZero())
		}
		for _, v := range single.Analytic(0, g) {
			Expect(v).To(BeZero())
		}
	})

	It("goes negative in one oversized step, as explicit Euler must", func() {
		single, err := models.NewSingle(species)
		Expect(err).NotTo(HaveOccurred())

		// λ = ln2/10 ≈ 0.0693; dt = 20 gives λ·dt ≈ 1.39 > 1.
		g, err := decay.NewGrid(20, 1)
		Expect(err).NotTo(HaveOccurred())

		sim := decay.New(single, decay.NewEuler())
		result, err := sim.Run(decay.State{1000}, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.States[1][0]).To(BeNumerically("<", 0))
	})
})

var _ = Describe("Chain decay", func() {
	parent := decay.Species{Symbol: "238U", Name: "Uranium 238", HalfLife: 12}
	daughter := decay.Species{Symbol: "234Th", Name: "Thorium 234", HalfLife: 3}

	It("starts the daughter at zero", func() {
		chain, err := models.NewChain(parent, daughter)
		Expect(err).NotTo(HaveOccurred())
		Expect(chain.InitialState(1000)).To(Equal(decay.State{1000, 0}))
	})

	It("conserves mass transferred from parent to daughter at every step", func() {
		chain, err := models.NewChain(parent, daughter)
		Expect(err).NotTo(HaveOccurred())

		g, err := decay.NewGrid(30, 600)
		Expect(err).NotTo(HaveOccurred())
		dt := g.Dt()
		lambdaD := chain.Lambdas()[1]

		sim := decay.New(chain, decay.NewEuler())
		result, err := sim.Run(chain.InitialState(1_000_000), g)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < len(result.States)-1; i++ {
			parentLoss := result.States[i][0] - result.States[i+1][0]
			daughterGain := result.States[i+1][1] - result.States[i][1]
			daughterDecay := lambdaD * result.States[i][1] * dt

			Expect(parentLoss).To(BeNumerically("~", daughterGain+daughterDecay, 1e-7))
		}
	})
})

var _ = Describe("Branching decay", func() {
	parent := decay.Species{Symbol: "P", HalfLife: 8}
	daughterA := decay.Species{Symbol: "A", HalfLife: 2}
	daughterB := decay.Species{Symbol: "B", HalfLife: 5}

	It("rejects a branching ratio outside [0,1]", func() {
		_, err := models.NewBranching(parent, daughterA, daughterB, -0.1)
		Expect(err).To(MatchError(decay.ErrDomain))

		_, err = models.NewBranching(parent, daughterA, daughterB, 1.2)
		Expect(err).To(MatchError(decay.ErrDomain))
	})

	It("derives the complementary ratio", func() {
		b, err := models.NewBranching(parent, daughterA, daughterB, 0.3)
		Expect(err).NotTo(HaveOccurred())

		ra, rb := b.Ratios()
		Expect(ra).To(Equal(0.3))
		Expect(rb).To(Equal(0.7))
	})

	It("splits the parent's loss exactly between the daughters' production", func() {
		b, err := models.NewBranching(parent, daughterA, daughterB, 0.3)
		Expect(err).NotTo(HaveOccurred())

		g, err := decay.NewGrid(40, 800)
		Expect(err).NotTo(HaveOccurred())
		dt := g.Dt()
		lambdas := b.Lambdas()

		sim := decay.New(b, decay.NewEuler())
		result, err := sim.Run(b.InitialState(1_000_000), g)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < len(result.States)-1; i++ {
			parentLoss := result.States[i][0] - result.States[i+1][0]

			prodA := (result.States[i+1][1] - result.States[i][1]) + lambdas[1]*result.States[i][1]*dt
			prodB := (result.States[i+1][2] - result.States[i][2]) + lambdas[2]*result.States[i][2]*dt

			Expect(prodA + prodB).To(BeNumerically("~", parentLoss, 1e-7))
		}
	})

	It("reproduces identical traces across repeated runs", func() {
		b, err := models.NewBranching(parent, daughterA, daughterB, 0.42)
		Expect(err).NotTo(HaveOccurred())

		g, _ := decay.NewGrid(17, 333)
		sim := decay.New(b, decay.NewEuler())

		first, err := sim.Run(b.InitialState(98765), g)
		Expect(err).NotTo(HaveOccurred())
		second, err := sim.Run(b.InitialState(98765), g)
		Expect(err).NotTo(HaveOccurred())

		Expect(second.States).To(Equal(first.States))
		Expect(second.Times).To(Equal(first.Times))
	})
})
