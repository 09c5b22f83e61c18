package dutfixture_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/deltasim/dutfixture"
)

var _ = Describe("CounterModel", func() {
	It("increments its count on every posedge of clk and only on the posedge", func() {
		m := dutfixture.NewCounterModel()

		*m.ClkPtr() = true
		m.Eval()
		Expect(*m.CountPtr()).To(Equal(uint8(1)))

		m.Eval() // clk still high: no further edge
		Expect(*m.CountPtr()).To(Equal(uint8(1)))

		*m.ClkPtr() = false
		m.Eval()
		*m.ClkPtr() = true
		m.Eval()
		Expect(*m.CountPtr()).To(Equal(uint8(2)))
	})
})

var _ = Describe("PassthroughModel", func() {
	It("registers data through to the output on an accepted beat", func() {
		m := dutfixture.NewPassthroughModel()

		*m.ValidPtr() = true
		*m.DataPtr() = 7
		*m.ClkPtr() = true
		m.Eval()

		Expect(*m.OutValidPtr()).To(BeTrue())
		Expect(*m.OutDataPtr()).To(Equal(uint32(7)))
	})

	It("drops the beat when valid is not asserted", func() {
		m := dutfixture.NewPassthroughModel()

		*m.ClkPtr() = true
		m.Eval()

		Expect(*m.OutValidPtr()).To(BeFalse())
	})
})

var _ = Describe("AutonomousEventModel", func() {
	It("fires exactly once, at its configured fire time", func() {
		m := dutfixture.NewAutonomousEventModel(5)
		now := dutfixture.Time(0)
		clocked := dutfixture.WithClock{AutonomousEventModel: m, Now: func() dutfixture.Time { return now }}

		clocked.Eval()
		Expect(*m.EventOutPtr()).To(BeFalse())
		Expect(m.EventsPending()).To(BeTrue())

		now = 5
		clocked.Eval()
		Expect(*m.EventOutPtr()).To(BeTrue())
		Expect(m.EventsPending()).To(BeFalse())

		now = 9
		clocked.Eval()
		Expect(m.NextTimeSlot()).To(Equal(uint64(5)))
	})
})
