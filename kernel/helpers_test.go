package kernel_test

import (
	"github.com/sarchlab/deltasim/dutfixture"
	"github.com/sarchlab/deltasim/kernel"
)

// nopModel is the minimal dut.Model-shaped double for kernel tests that
// exercise the scheduler's own control flow without needing a stateful
// DUT: it never reports internal events and never finishes on its own.
type nopModel struct {
	evalCount int
}

func (m *nopModel) Eval()                { m.evalCount++ }
func (m *nopModel) EventsPending() bool  { return false }
func (m *nopModel) NextTimeSlot() uint64 { return 0 }
func (m *nopModel) Final()               {}
func (m *nopModel) Finished() bool       { return false }

// recordingSink captures every time passed to Dump, in call order.
type recordingSink struct {
	times []kernel.Time
}

func (s *recordingSink) Dump(t kernel.Time) {
	s.times = append(s.times, t)
}

// countingModel wraps a dutfixture.WithClock DUT to count Eval invocations,
// for tests asserting the scheduler calls Eval exactly as many times as the
// phase discipline requires and no more.
type countingModel struct {
	dutfixture.WithClock
	evalCount *int
}

func (m countingModel) Eval() {
	*m.evalCount++
	m.WithClock.Eval()
}
