package dutfixture

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
)

// AkitaTicker is a DUT realized as an akita-simulated ticking component,
// demonstrating that a DUT need not be a foreign binary: it can itself be
// built from the akita ecosystem's own Component/TickingComponent machinery
// (the same base the teacher builds every core and tile from) and still
// satisfy the kernel's opaque capability contract. It models a free-running
// counter with its own akita clock domain, independent of DeltaSim's
// unitless tick count, which NextTimeSlot converts at the boundary.
type AkitaTicker struct {
	*sim.TickingComponent

	engine sim.Engine
	freq   sim.Freq
	vTime  sim.VTimeInSec

	ticks    uint64
	countPtr *uint32
}

// NewAkitaTicker builds a free-running counter DUT clocked at freq, writing
// its count through countPtr.
func NewAkitaTicker(name string, freq sim.Freq, countPtr *uint32) *AkitaTicker {
	a := &AkitaTicker{freq: freq, countPtr: countPtr}
	a.engine = sim.NewSerialEngine()
	a.TickingComponent = sim.NewTickingComponent(name, a.engine, freq, a)
	return a
}

// RegisterWith attaches the ticker to an akita monitor, exactly as
// config.DeviceBuilder registers each tile's core.
func (a *AkitaTicker) RegisterWith(m *monitoring.Monitor) {
	if m != nil {
		m.RegisterComponent(a.TickingComponent)
	}
}

// Tick is the akita TickingComponent handler: one period of the ticker's own
// clock domain. DeltaSim never schedules this through the akita engine's
// event queue directly — Eval below calls it once per delta-kernel
// evaluation — so the component stays a faithful akita citizen (usable with
// akita's own hooks and monitor) while remaining driven by the outer
// time-arbitration loop rather than by engine.Run.
func (a *AkitaTicker) Tick(now sim.VTimeInSec) (madeProgress bool) {
	a.ticks++
	*a.countPtr = uint32(a.ticks)
	return true
}

// CountPtr exposes the counter cell for binding to an OutputPort.
func (a *AkitaTicker) CountPtr() *uint32 { return a.countPtr }

// Eval implements dut.Model: advance the akita clock domain by one period
// and run the handler.
func (a *AkitaTicker) Eval() {
	a.vTime += sim.VTimeInSec(1 / float64(a.freq))
	a.Tick(a.vTime)
}

// EventsPending is always true: this DUT is free-running and always has a
// next tick due.
func (a *AkitaTicker) EventsPending() bool { return true }

// NextTimeSlot reports the ticker's next due cycle as a DeltaSim tick count,
// independent of the akita VTimeInSec the ticker uses internally.
func (a *AkitaTicker) NextTimeSlot() uint64 { return a.ticks + 1 }

func (a *AkitaTicker) Final()         {}
func (a *AkitaTicker) Finished() bool { return false }
