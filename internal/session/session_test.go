package session_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/presets"
	"github.com/san-kum/epicycle/internal/session"
)

var _ = Describe("State", func() {
	var st session.State

	BeforeEach(func() {
		st = session.NewState(fourier.Normalize(presets.Heart(128)), 16)
	})

	It("starts uncomputed at generation 1", func() {
		Expect(st.Generation).To(Equal(uint64(1)))
		Expect(st.Computed()).To(BeFalse())
	})

	It("computes the coefficient set for its curve and K", func() {
		computed, err := st.Compute(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(computed.Computed()).To(BeTrue())
		Expect(computed.Set.Len()).To(Equal(33))
		Expect(st.Computed()).To(BeFalse(), "original value must stay untouched")
	})

	It("invalidates coefficients when the curve changes", func() {
		computed, err := st.Compute(context.Background())
		Expect(err).NotTo(HaveOccurred())

		next := computed.WithCurve(presets.Circle(64))
		Expect(next.Generation).To(Equal(computed.Generation + 1))
		Expect(next.Set).To(BeNil())
	})

	It("invalidates coefficients when K changes and keeps them otherwise", func() {
		computed, err := st.Compute(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(computed.WithK(16)).To(Equal(computed))
		next := computed.WithK(20)
		Expect(next.Set).To(BeNil())
		Expect(next.K).To(Equal(20))
	})

	It("refuses to compute without a curve", func() {
		_, err := session.NewState(nil, 4).Compute(context.Background())
		Expect(err).To(MatchError(session.ErrNoCurve))
	})
})

var _ = Describe("Computer", func() {
	var comp *session.Computer

	BeforeEach(func() {
		comp = session.NewComputer()
	})

	AfterEach(func() {
		comp.Close()
	})

	It("delivers a computed state", func() {
		st := session.NewState(presets.Circle(64), 8)
		var res session.Result
		Eventually(comp.Submit(context.Background(), st)).Should(Receive(&res))
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.State.Computed()).To(BeTrue())
		Expect(res.State.Set.ByMag[0].N).To(Equal(1))
	})

	It("rejects submissions older than the latest generation", func() {
		first := session.NewState(presets.Heart(256), 20)
		second := first.WithK(3)

		newer := comp.Submit(context.Background(), second)
		older := comp.Submit(context.Background(), first)

		var oldRes, newRes session.Result
		Eventually(older).Should(Receive(&oldRes))
		Eventually(newer, 10*time.Second).Should(Receive(&newRes))

		Expect(oldRes.Err).To(MatchError(session.ErrStale))
		Expect(oldRes.State.Computed()).To(BeFalse())
		Expect(newRes.Err).NotTo(HaveOccurred())
		Expect(newRes.State.Set.K).To(Equal(3))
		Expect(comp.IsLatest(second.Generation)).To(BeTrue())
	})

	It("marks a resubmitted generation's earlier run as stale", func() {
		st := session.NewState(presets.Heart(4096), 400)

		first := comp.Submit(context.Background(), st)
		again := comp.Submit(context.Background(), st)

		var firstRes, againRes session.Result
		Eventually(first, 10*time.Second).Should(Receive(&firstRes))
		Eventually(again, 10*time.Second).Should(Receive(&againRes))

		Expect(againRes.Err).NotTo(HaveOccurred())
		Expect(firstRes.Err).NotTo(MatchError(context.Canceled))
		if firstRes.Err != nil {
			Expect(firstRes.Err).To(MatchError(session.ErrStale))
		}
		Expect(againRes.State.Computed()).To(BeTrue())
	})

	It("never applies a result once a newer state is submitted", func() {
		first := session.NewState(presets.Heart(4096), 400)
		second := first.WithCurve(presets.Circle(64))

		older := comp.Submit(context.Background(), first)
		newer := comp.Submit(context.Background(), second)

		var oldRes, newRes session.Result
		Eventually(older, 10*time.Second).Should(Receive(&oldRes))
		Eventually(newer, 10*time.Second).Should(Receive(&newRes))

		Expect(newRes.Err).NotTo(HaveOccurred())
		if oldRes.Err == nil {
			// Finished before the newer submission existed.
			Expect(oldRes.State.Generation).To(Equal(first.Generation))
		} else {
			Expect(oldRes.Err).To(MatchError(session.ErrStale))
		}
	})
})

var _ = Describe("BuildPartials", func() {
	It("returns one curve per bound in bound order", func() {
		set, err := fourier.ComputeCoefficients(fourier.Normalize(presets.Flower(256)), 40)
		Expect(err).NotTo(HaveOccurred())

		bounds := []int{10, 1, 0, 40}
		partials, err := session.BuildPartials(context.Background(), set, bounds, fourier.ModeOrder, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(partials).To(HaveLen(4))

		for i, pc := range partials {
			Expect(*pc.Bound).To(Equal(bounds[i]))
			Expect(pc.Mode).To(Equal(fourier.ModeOrder))
			Expect(pc.Points).To(HaveLen(200))
		}
		for _, p := range partials[2].Points {
			Expect(p).To(Equal(fourier.Point{}))
		}
	})

	It("requires coefficients", func() {
		_, err := session.BuildPartials(context.Background(), nil, []int{1}, fourier.ModeMag, 10)
		Expect(err).To(MatchError(session.ErrNoCoefficients))
	})

	It("stops when the context is cancelled", func() {
		set, err := fourier.ComputeCoefficients(presets.Circle(32), 4)
		Expect(err).NotTo(HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = session.BuildPartials(ctx, set, []int{1, 2}, fourier.ModeOrder, 10)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("AnimationChain", func() {
	var set *fourier.CoefficientSet

	BeforeEach(func() {
		var err error
		set, err = fourier.ComputeCoefficients(fourier.Normalize(presets.Heart(200)), 10)
		Expect(err).NotTo(HaveOccurred())
	})

	It("interleaves orders in order mode", func() {
		chain := session.AnimationChain(set, 2, fourier.ModeOrder)
		orders := make([]int, len(chain))
		for i, c := range chain {
			orders[i] = c.N
		}
		Expect(orders).To(Equal([]int{0, 1, -1, 2, -2}))
	})

	It("takes the strongest terms in magnitude mode", func() {
		chain := session.AnimationChain(set, 3, fourier.ModeMag)
		Expect(chain).To(Equal(set.ByMag[:3]))
	})

	It("is empty for a zero bound", func() {
		Expect(session.AnimationChain(set, 0, fourier.ModeOrder)).To(BeEmpty())
	})
})

var _ = Describe("Clock", func() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := session.NewClock(start, 8*time.Second)

	DescribeTable("phase",
		func(offset time.Duration, want float64) {
			Expect(clock.Phase(start.Add(offset))).To(BeNumerically("~", want, 1e-12))
		},
		Entry("at start", time.Duration(0), 0.0),
		Entry("quarter", 2*time.Second, 0.25),
		Entry("wraps", 10*time.Second, 0.25),
		Entry("before start", -time.Second, 0.0),
	)
})

var _ = Describe("Tail", func() {
	It("keeps the most recent points, oldest first", func() {
		tail := session.NewTail(3)
		for i := 0; i < 5; i++ {
			tail.Push(fourier.Pt(float64(i), 0))
		}
		Expect(tail.Len()).To(Equal(3))
		Expect(tail.Points()).To(Equal(fourier.Curve{{X: 2}, {X: 3}, {X: 4}}))

		tail.Reset()
		Expect(tail.Points()).To(BeEmpty())
	})

	It("ignores pushes with zero capacity", func() {
		tail := session.NewTail(0)
		tail.Push(fourier.Pt(1, 1))
		Expect(tail.Len()).To(Equal(0))
	})
})
