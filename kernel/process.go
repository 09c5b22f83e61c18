package kernel

// Callback is the body of a registered process. It may write any port or
// signal obtained from the same Scheduler, and may schedule timed actions;
// it must not touch DUT memory directly (the only path into the DUT is a
// COMMIT write or eval()).
type Callback func()

// process pairs a callback with its activation rule: either it always fires
// every delta, or it fires only when the registry marks its trigger flag
// during REACT.
type process struct {
	callback     Callback
	alwaysActive bool
	triggered    bool
}

// registry is the append-only process table. Sensitivity is stored in
// reverse, on each Observable (id lists of dependents), so trigger
// distribution during REACT is O(changed observables x fanout) rather than
// O(processes x sensitivity list), per the design rationale.
type registry struct {
	processes []process
}

func newRegistry() *registry {
	return &registry{}
}

// register appends a new process and returns its stable id.
func (r *registry) register(cb Callback, alwaysActive bool) ProcessID {
	r.processes = append(r.processes, process{callback: cb, alwaysActive: alwaysActive})
	return ProcessID(len(r.processes) - 1)
}

// trigger marks pid as due to fire this delta.
func (r *registry) trigger(pid ProcessID) {
	r.processes[int(pid)].triggered = true
}

// resetTriggers zeroes every transient trigger flag, done once at the start
// of each REACT phase.
func (r *registry) resetTriggers() {
	for i := range r.processes {
		r.processes[i].triggered = false
	}
}

// runDue invokes every process that is always-active or was triggered this
// delta, in registration order. It clears the triggered flag for whichever
// processes it fires so a re-entrant REACT (next delta iteration) starts
// clean.
func (r *registry) runDue() {
	for i := range r.processes {
		p := &r.processes[i]
		if p.alwaysActive || p.triggered {
			p.triggered = false
			p.callback()
		}
	}
}
