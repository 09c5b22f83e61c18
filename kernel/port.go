package kernel

// InputPort is the testbench→DUT boundary. It wraps a DUT-owned memory cell
// of scalar type T. Writes stage into pending under NBA discipline; the
// visible value, and the DUT memory it mirrors, only move during COMMIT.
//
// Invariant: between deltas, *ptr == current.
type InputPort[T Value] struct {
	observableBase

	ptr *T // borrowed; lifetime >= the owning Scheduler's

	current, previous T
	pending           T
	isDirty           bool
}

// NewInputPort wraps ptr, a DUT-owned cell, as a testbench-writable port.
// ptr must outlive the scheduler; the port never frees or reassigns it.
func NewInputPort[T Value](name string, ptr *T) *InputPort[T] {
	return &InputPort[T]{
		observableBase: observableBase{name: name},
		ptr:            ptr,
		current:        *ptr,
		previous:       *ptr,
		pending:        *ptr,
	}
}

// Write stages v to be applied on the next COMMIT. It does not touch *ptr.
// Two writes within the same delta collapse to the last one, matching HDL
// non-blocking-assignment semantics.
func (p *InputPort[T]) Write(v T) {
	p.pending = v
	p.isDirty = true
}

// Val returns the value visible to the testbench this delta.
func (p *InputPort[T]) Val() T { return p.current }

// Prev returns the value visible in the previous delta.
func (p *InputPort[T]) Prev() T { return p.previous }

func (p *InputPort[T]) Changed() bool { c, _, _ := edgeOf(p.previous, p.current); return c }
func (p *InputPort[T]) Posedge() bool { _, pe, _ := edgeOf(p.previous, p.current); return pe }
func (p *InputPort[T]) Negedge() bool { _, _, ne := edgeOf(p.previous, p.current); return ne }

func (p *InputPort[T]) dirty() bool { return p.isDirty }

// commit promotes the staged write to current and writes through to the DUT
// cell. Called only by the kernel, only during COMMIT.
func (p *InputPort[T]) commit() {
	p.previous = p.current
	if p.isDirty {
		p.current = p.pending
		*p.ptr = p.current
		p.isDirty = false
	}
}

// OutputPort is the DUT→testbench boundary. It wraps a DUT-owned memory cell
// and is read-only from the testbench side; sampled lags *ptr by up to one
// delta boundary, refreshed during SAMPLE.
//
// Invariant: the user-visible value equals the value captured after the most
// recent eval().
type OutputPort[T Value] struct {
	observableBase

	ptr      *T
	sampled  T
	previous T
}

// NewOutputPort wraps ptr, a DUT-owned cell, as a testbench-readable port.
func NewOutputPort[T Value](name string, ptr *T) *OutputPort[T] {
	return &OutputPort[T]{
		observableBase: observableBase{name: name},
		ptr:            ptr,
		sampled:        *ptr,
		previous:       *ptr,
	}
}

// Val returns the most recently sampled value.
func (p *OutputPort[T]) Val() T { return p.sampled }

// Prev returns the previously sampled value.
func (p *OutputPort[T]) Prev() T { return p.previous }

func (p *OutputPort[T]) Changed() bool { c, _, _ := edgeOf(p.previous, p.sampled); return c }
func (p *OutputPort[T]) Posedge() bool { _, pe, _ := edgeOf(p.previous, p.sampled); return pe }
func (p *OutputPort[T]) Negedge() bool { _, _, ne := edgeOf(p.previous, p.sampled); return ne }

// sample captures the DUT cell into the observation window. Called only by
// the kernel, only during SAMPLE.
func (p *OutputPort[T]) sample() {
	p.previous = p.sampled
	p.sampled = *p.ptr
}
