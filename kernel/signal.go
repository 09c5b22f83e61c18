package kernel

// InternalSignal is testbench-private state with the same NBA write
// discipline as InputPort but no DUT-owned cell behind it. It is used for
// derived clocks, reference-model registers, and cross-process
// coordination that never crosses into DUT memory.
type InternalSignal[T Value] struct {
	observableBase

	current, previous T
	pending           T
	isDirty           bool
}

// NewInternalSignal creates a testbench-only signal with the given initial
// value.
func NewInternalSignal[T Value](name string, initial T) *InternalSignal[T] {
	return &InternalSignal[T]{
		observableBase: observableBase{name: name},
		current:        initial,
		previous:       initial,
		pending:        initial,
	}
}

// Write stages v to be applied on the next COMMIT.
func (s *InternalSignal[T]) Write(v T) {
	s.pending = v
	s.isDirty = true
}

// Val returns the value visible to the testbench this delta.
func (s *InternalSignal[T]) Val() T { return s.current }

// Prev returns the value visible in the previous delta.
func (s *InternalSignal[T]) Prev() T { return s.previous }

func (s *InternalSignal[T]) Changed() bool { c, _, _ := edgeOf(s.previous, s.current); return c }
func (s *InternalSignal[T]) Posedge() bool { _, pe, _ := edgeOf(s.previous, s.current); return pe }
func (s *InternalSignal[T]) Negedge() bool { _, _, ne := edgeOf(s.previous, s.current); return ne }

func (s *InternalSignal[T]) dirty() bool { return s.isDirty }

func (s *InternalSignal[T]) commit() {
	s.previous = s.current
	if s.isDirty {
		s.current = s.pending
		s.isDirty = false
	}
}
