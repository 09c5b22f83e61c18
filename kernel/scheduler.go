package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tebeka/atexit"
)

// Model is the capability set the kernel requires from a DUT. It is
// duplicated here, as a mirror of dut.Model, purely to avoid an
// import cycle between kernel and dut (dut.WaveformSink's Dump takes a
// kernel.Time). Scheduler.Run accepts anything satisfying this shape, so
// callers pass a dut.Model value directly.
type Model interface {
	Eval()
	EventsPending() bool
	NextTimeSlot() uint64
	Final()
	Finished() bool
}

// WaveformSink is the kernel's mirror of dut.WaveformSink, for the same
// import-cycle reason as Model.
type WaveformSink interface {
	Dump(t Time)
}

// Scheduler is the testbench-facing API: the time-stratified delta-cycle
// scheduler itself. It owns every Observable and every timed action
// registered against it; user code holds only non-owning handles (the
// *InputPort[T], *OutputPort[T], *InternalSignal[T], ProcessID, and
// EventHandle values returned by its registration methods).
type Scheduler struct {
	reg    *registry
	events *eventQueue

	committables []committable
	samplers     []sampleable
	observables  []Observable

	combinationalLoopBound int
	pastScheduleRejected   bool
	tieBreak               TieBreak
	logger                 *slog.Logger

	now Time
}

// Now returns the current simulation time.
func (s *Scheduler) Now() Time { return s.now }

func (s *Scheduler) registerCommittable(c committable) { s.committables = append(s.committables, c) }
func (s *Scheduler) registerSampleable(sm sampleable)  { s.samplers = append(s.samplers, sm) }
func (s *Scheduler) registerObservable(o Observable)   { s.observables = append(s.observables, o) }

// Input registers ptr, a DUT-owned cell, as a testbench-writable boundary
// signal and returns a non-owning handle to it.
func Input[T Value](s *Scheduler, name string, ptr *T) *InputPort[T] {
	p := NewInputPort(name, ptr)
	s.registerCommittable(p)
	s.registerObservable(p)
	return p
}

// Output registers ptr, a DUT-owned cell, as a testbench-readable boundary
// signal and returns a non-owning handle to it.
func Output[T Value](s *Scheduler, name string, ptr *T) *OutputPort[T] {
	p := NewOutputPort(name, ptr)
	s.registerSampleable(p)
	s.registerObservable(p)
	return p
}

// Signal registers a testbench-private signal with the given initial value
// and returns a non-owning handle to it.
func Signal[T Value](s *Scheduler, name string, initial T) *InternalSignal[T] {
	p := NewInternalSignal(name, initial)
	s.registerCommittable(p)
	s.registerObservable(p)
	return p
}

// Process registers a callback that fires during REACT in any delta where
// at least one Observable in sensitivity has Changed() true. It panics with a
// ProgrammerError if an Observable in sensitivity was not registered with s.
func (s *Scheduler) Process(sensitivity []Observable, cb Callback) ProcessID {
	for _, o := range sensitivity {
		registered := false
		for _, r := range s.observables {
			registered = registered || r == o
		}
		if !registered {
			panic(&ProgrammerError{
				Op:      "Process",
				Message: fmt.Sprintf("observable %q is not registered with this scheduler", o.Name()),
			})
		}
	}
	pid := s.reg.register(cb, false)
	for _, o := range sensitivity {
		o.AddDependent(pid)
	}
	return pid
}

// Always registers a callback that fires during REACT in every delta.
func (s *Scheduler) Always(cb Callback) ProcessID {
	return s.reg.register(cb, true)
}

// ScheduleAfter schedules action to fire delay ticks after the current
// simulation time.
func (s *Scheduler) ScheduleAfter(delay Time, action Action) EventHandle {
	return s.events.schedule(s.now+delay, action)
}

// ScheduleAt schedules action to fire at time t. If t is before now, the
// default policy coerces it to now ("as soon as possible at or after now");
// WithPastScheduleRejected instead makes this a ProgrammerError panic.
func (s *Scheduler) ScheduleAt(t Time, action Action) EventHandle {
	if t < s.now {
		if s.pastScheduleRejected {
			panic(&ProgrammerError{
				Op:      "ScheduleAt",
				Message: fmt.Sprintf("t=%d is before now=%d", t, s.now),
			})
		}
		t = s.now
	}
	return s.events.schedule(t, action)
}

// Cancel tombstones a previously scheduled event. Returns false if the
// handle is unknown or the event already fired or was already cancelled.
func (s *Scheduler) Cancel(h EventHandle) bool {
	return s.events.cancel(h)
}

// Run drives the time-arbitration outer loop until the DUT raises its
// finish flag, the timeout is reached, or both event timelines quiesce.
// It returns nil on quiescence, *FinishedError or *TimeoutError for the
// other two normal terminations, or *CombinationalLoopError if a time step
// fails to converge within the configured bound. Panics from user callbacks
// propagate unmodified; Observable state is left well-formed (a COMMIT
// either completes in full or not at all, never partially) when that
// happens.
func (s *Scheduler) Run(model Model, sink WaveformSink, timeout Time) error {
	if sink == nil {
		sink = noopSink{}
	}

	// Guarantee model.Final() runs even if the host process exits (e.g. via
	// atexit.Exit elsewhere) without this Run call ever returning normally —
	// mirroring the teacher's own atexit.Exit-terminated samples, but from
	// the cleanup side rather than the entry-point side.
	var finalizeOnce sync.Once
	finalize := func() { finalizeOnce.Do(model.Final) }
	atexit.Register(finalize)

	s.now = 0
	if err := s.runTimeStep(model, sink, 0); err != nil {
		finalize()
		return err
	}

	for {
		if model.Finished() {
			finalize()
			s.logger.Warn("dut finished", "at", s.now)
			return &FinishedError{At: s.now}
		}
		if s.now >= timeout {
			finalize()
			s.logger.Warn("timeout reached", "at", s.now)
			return &TimeoutError{At: s.now}
		}

		tTB, hasTB := s.events.nextTime()
		tDUT, hasDUT := dutNextTime(model)
		if !hasTB && !hasDUT {
			finalize()
			return nil
		}

		t := tTB
		if !hasTB || (hasDUT && tDUT < t) {
			t = tDUT
		}

		s.now = t
		if err := s.runTimeStep(model, sink, t); err != nil {
			finalize()
			return err
		}
	}
}

func dutNextTime(model Model) (Time, bool) {
	if !model.EventsPending() {
		return 0, false
	}
	return Time(model.NextTimeSlot()), true
}

// runTimeStep drains every testbench event due at t, runs the inner delta
// loop to convergence, and notifies the waveform sink.
func (s *Scheduler) runTimeStep(model Model, sink WaveformSink, t Time) error {
	preEvaluated := false
	if s.tieBreak == DUTFirst {
		if dutT, ok := dutNextTime(model); ok && dutT == t {
			model.Eval()
			preEvaluated = true
		}
	}

	s.events.drainAt(t)

	// runDeltaLoop's first iteration always forces an eval unless we already
	// ran one above: the DUTFirst pre-eval and the "always eval on the first
	// delta of a time step" rule both exist to satisfy the same obligation,
	// so honoring both would eval the model twice for one time step.
	if err := s.runDeltaLoop(model, !preEvaluated); err != nil {
		return err
	}

	sink.Dump(t)
	return nil
}

// runDeltaLoop runs {COMMIT, EVAL, SAMPLE, REACT, CONVERGE?} until no
// InputPort or InternalSignal is left dirty, or the combinational-loop bound
// is exceeded.
func (s *Scheduler) runDeltaLoop(model Model, firstDeltaOfStep bool) error {
	first := firstDeltaOfStep

	for iteration := 1; ; iteration++ {
		if iteration > s.combinationalLoopBound {
			dirty := s.dirtyNames()
			s.logger.Warn("combinational loop detected", "at", s.now, "bound", s.combinationalLoopBound, "dirty", dirty)
			return &CombinationalLoopError{
				At:         s.now,
				Bound:      s.combinationalLoopBound,
				DirtyNames: dirty,
			}
		}

		s.logger.Log(context.Background(), LevelPhase, "commit", "t", s.now, "iteration", iteration)
		committed := s.commitPhase()

		s.logger.Log(context.Background(), LevelPhase, "eval", "t", s.now, "iteration", iteration)
		s.evalPhase(model, committed, first)

		s.logger.Log(context.Background(), LevelPhase, "sample", "t", s.now, "iteration", iteration)
		s.samplePhase()

		s.logger.Log(context.Background(), LevelPhase, "react", "t", s.now, "iteration", iteration)
		s.reactPhase()

		s.logger.Log(context.Background(), LevelPhase, "converge", "t", s.now, "iteration", iteration)
		if !s.anyDirty() {
			s.logger.Log(context.Background(), LevelDelta, "converged", "t", s.now, "iterations", iteration)
			return nil
		}

		first = false
	}
}

// commitPhase promotes every staged write to its visible value (and, for
// InputPorts, writes through to DUT memory). It returns whether any
// committable was dirty going into the phase, which gates EVAL.
func (s *Scheduler) commitPhase() bool {
	any := false
	for _, c := range s.committables {
		if c.dirty() {
			any = true
		}
		c.commit()
	}
	return any
}

// evalPhase calls model.Eval() exactly when spec.md's four trigger
// conditions are met: an InputPort write committed this delta, an
// InternalSignal write committed this delta, a pending DUT-internal event at
// or before now, or the first delta of the time step.
func (s *Scheduler) evalPhase(model Model, committed, firstDelta bool) {
	dutDue := false
	if t, ok := dutNextTime(model); ok {
		dutDue = t <= s.now
	}

	if committed || dutDue || firstDelta {
		model.Eval()
	}
}

func (s *Scheduler) samplePhase() {
	for _, smp := range s.samplers {
		smp.sample()
	}
}

// reactPhase distributes triggers from every Observable that changed this
// delta to its dependent processes, then runs every triggered or
// always-active process in registration order.
func (s *Scheduler) reactPhase() {
	s.reg.resetTriggers()

	for _, o := range s.observables {
		if !o.Changed() {
			continue
		}
		for _, pid := range o.Dependents() {
			s.reg.trigger(pid)
		}
	}

	s.reg.runDue()
}

func (s *Scheduler) anyDirty() bool {
	for _, c := range s.committables {
		if c.dirty() {
			return true
		}
	}
	return false
}

func (s *Scheduler) dirtyNames() []string {
	var names []string
	for _, c := range s.committables {
		if c.dirty() {
			if n, ok := c.(interface{ Name() string }); ok {
				names = append(names, n.Name())
			}
		}
	}
	return names
}

type noopSink struct{}

func (noopSink) Dump(Time) {}
