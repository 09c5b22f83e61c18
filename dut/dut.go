// Package dut defines the capability contract the kernel requires from a
// DUT (device under test) and from a waveform sink. Both are external
// collaborators: a DUT is an opaque, externally compiled hardware model, and
// a sink is an opaque dump target. Neither's internals are in scope here —
// only the fixed surface the scheduler calls.
package dut

import "github.com/sarchlab/deltasim/kernel"

// Model is the capability set a DUT must expose. Port memory (the raw
// mutable cells InputPort/OutputPort wrap) is obtained separately, by the
// testbench, as plain Go pointers into the DUT's address space; it is not
// part of this interface because its identity must be stable for the DUT's
// lifetime and is typed per-signal (bool or an unsigned width), not
// uniform.
type Model interface {
	// Eval evaluates one round of internal activity at the current
	// simulation time. Mandatory on the first delta of every time step even
	// with no stimulus, since DUT-internal clocks may schedule work
	// autonomously.
	Eval()

	// EventsPending reports whether the DUT has time-based internal events
	// queued.
	EventsPending() bool

	// NextTimeSlot returns the earliest internal event time. Valid only
	// when EventsPending is true.
	NextTimeSlot() uint64

	// Final runs terminate-side cleanup after the run completes.
	Final()

	// Finished reports the DUT-raised finish flag.
	Finished() bool
}

// WaveformSink receives one notification per converged time step, plus an
// initial call at time zero.
type WaveformSink interface {
	Dump(t kernel.Time)
}

// NopSink is a WaveformSink that discards every call. Useful when a run
// needs no waveform; Scheduler.Run treats a nil sink the same way.
type NopSink struct{}

// Dump does nothing.
func (NopSink) Dump(kernel.Time) {}
