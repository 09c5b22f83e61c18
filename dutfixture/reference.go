// Package dutfixture provides DUT doubles that satisfy the kernel's capability
// contract (see package dut), used by the kernel's own tests and as worked
// examples of how a real compiled hardware model would be wired in. None of
// this is part of the co-simulation core: it stands in for the externally
// compiled model the core treats as opaque.
package dutfixture

// CounterModel is the DUT for the clock+counter scenario: an N-bit counter
// that increments on every posedge of clk. Eval, called once per delta,
// detects the edge by comparing clk against the value it saw on the
// previous call — the same "decode, mutate state, advance" shape as the
// teacher's Tick-driven instruction interpreter, generalized from opcode
// dispatch to a single always-block.
type CounterModel struct {
	Clk   bool
	Count uint8

	prevClk bool
}

// NewCounterModel returns a counter DUT with both cells zeroed.
func NewCounterModel() *CounterModel {
	return &CounterModel{}
}

// ClkPtr exposes the clock cell for binding to an InputPort.
func (m *CounterModel) ClkPtr() *bool { return &m.Clk }

// CountPtr exposes the counter cell for binding to an OutputPort.
func (m *CounterModel) CountPtr() *uint8 { return &m.Count }

func (m *CounterModel) Eval() {
	if !m.prevClk && m.Clk {
		m.Count++
	}
	m.prevClk = m.Clk
}

func (m *CounterModel) EventsPending() bool  { return false }
func (m *CounterModel) NextTimeSlot() uint64 { return 0 }
func (m *CounterModel) Final()               {}
func (m *CounterModel) Finished() bool       { return false }

// PassthroughModel is the DUT for the ready/valid handshake scenario: data
// presented with valid asserted is registered through to the output on the
// next posedge of clk whenever ready is asserted. Ready is always high
// (an unconstrained sink), so every beat with valid asserted is accepted on
// the following edge.
type PassthroughModel struct {
	Clk   bool
	Valid bool
	Data  uint32

	Ready    bool
	OutValid bool
	OutData  uint32

	prevClk bool
}

// NewPassthroughModel returns a ready/valid pass-through DUT with Ready tied
// high.
func NewPassthroughModel() *PassthroughModel {
	return &PassthroughModel{Ready: true}
}

func (m *PassthroughModel) ClkPtr() *bool       { return &m.Clk }
func (m *PassthroughModel) ValidPtr() *bool     { return &m.Valid }
func (m *PassthroughModel) DataPtr() *uint32    { return &m.Data }
func (m *PassthroughModel) ReadyPtr() *bool     { return &m.Ready }
func (m *PassthroughModel) OutValidPtr() *bool  { return &m.OutValid }
func (m *PassthroughModel) OutDataPtr() *uint32 { return &m.OutData }

func (m *PassthroughModel) Eval() {
	if !m.prevClk && m.Clk {
		accept := m.Valid && m.Ready
		m.OutValid = accept
		if accept {
			m.OutData = m.Data
		}
	}
	m.prevClk = m.Clk
}

func (m *PassthroughModel) EventsPending() bool  { return false }
func (m *PassthroughModel) NextTimeSlot() uint64 { return 0 }
func (m *PassthroughModel) Final()               {}
func (m *PassthroughModel) Finished() bool       { return false }

// AutonomousEventModel is the DUT for the DUT-initiated event scenario: it
// raises EventOut exactly once, at an internally determined time, without
// any testbench stimulus driving it there. EventsPending/NextTimeSlot
// advertise that time to the kernel's time-arbitration loop so it is picked
// up even though the testbench queue is otherwise empty.
type AutonomousEventModel struct {
	EventOut bool

	fireAt Time
	fired  bool
}

// Time mirrors kernel.Time's representation without importing kernel, to
// keep dutfixture's reference models free of a dependency on the package
// they are built to exercise from the outside.
type Time = uint64

// NewAutonomousEventModel returns a DUT that will raise EventOut the first
// time Eval observes simulation time at or after fireAt.
func NewAutonomousEventModel(fireAt Time) *AutonomousEventModel {
	return &AutonomousEventModel{fireAt: fireAt}
}

func (m *AutonomousEventModel) EventOutPtr() *bool { return &m.EventOut }

// evalAt takes the kernel's current time explicitly because, unlike the other
// reference models, this DUT's behavior depends on time rather than on
// input edges; eval() itself carries no time parameter in the capability
// contract, so the adapter below threads it through a closure instead.
func (m *AutonomousEventModel) evalAt(now Time) {
	if !m.fired && now >= m.fireAt {
		m.EventOut = true
		m.fired = true
	}
}

func (m *AutonomousEventModel) EventsPending() bool {
	return !m.fired
}

func (m *AutonomousEventModel) NextTimeSlot() uint64 {
	return m.fireAt
}

func (m *AutonomousEventModel) Final()         {}
func (m *AutonomousEventModel) Finished() bool { return false }

// WithClock wraps an AutonomousEventModel's time-dependent Eval behind the
// no-argument Eval the dut.Model contract requires, by closing over a clock
// function supplied by the caller (typically scheduler.Now).
type WithClock struct {
	*AutonomousEventModel
	Now func() Time
}

func (w WithClock) Eval() {
	w.evalAt(w.Now())
}
