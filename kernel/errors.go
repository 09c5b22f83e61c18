package kernel

import "fmt"

// ProgrammerError reports a defect in the testbench code itself: a contract
// violation the scheduler can detect but never recovers from, such as
// scheduling an event at a past time when the scheduler is configured to
// reject rather than coerce it.
type ProgrammerError struct {
	Op      string
	Message string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("deltasim: programmer error in %s: %s", e.Op, e.Message)
}

// CombinationalLoopError is returned by Run when a time step fails to reach
// a fixed point within the configured loop bound. It names the time and the
// observables that were still dirty when the bound was hit, so the caller
// can print a diagnostic naming both, per the simulation-failure contract.
type CombinationalLoopError struct {
	At         Time
	Bound      int
	DirtyNames []string
}

func (e *CombinationalLoopError) Error() string {
	return fmt.Sprintf(
		"deltasim: combinational loop detected at t=%d after %d delta iterations (still dirty: %v)",
		e.At, e.Bound, e.DirtyNames,
	)
}

// TimeoutError is returned by Run when the configured timeout is reached
// before the event queues quiesce. It is a normal termination outcome, not a
// simulation failure, but callers often want to tell it apart from
// quiescence (which Run reports as a nil error).
type TimeoutError struct {
	At Time
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("deltasim: timeout reached at t=%d", e.At)
}

// FinishedError is returned by Run when the DUT raised its finish flag. Like
// TimeoutError it is a normal termination outcome.
type FinishedError struct {
	At Time
}

func (e *FinishedError) Error() string {
	return fmt.Sprintf("deltasim: DUT finished at t=%d", e.At)
}
