package kernel

// Value is the scalar-width family that ports and signals may carry: a
// single bit or an unsigned integer of some fixed width. This is the type
// erasure boundary called for in the design notes — a small monomorphized
// family behind a uniform capability surface, rather than a reflective sum
// type.
type Value interface {
	~bool | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ProcessID is a stable, opaque handle into the process registry. Observables
// reference processes only by id, never by pointer, so the sensitivity graph
// (which is cyclic in general) never creates a cycle in ownership.
type ProcessID int

// Observable is the common capability set shared by InputPort, OutputPort,
// and InternalSignal: anything that can change value in a delta and trigger
// dependent processes. A uniform surface lets a process subscribe to a mix
// of testbench-driven, DUT-produced, and testbench-derived signals without
// caring which.
type Observable interface {
	// Name identifies the observable for diagnostics.
	Name() string

	// Changed reports whether this observable's visible value moved during
	// the current delta.
	Changed() bool

	// Posedge reports a zero-to-nonzero transition during the current delta.
	Posedge() bool

	// Negedge reports a nonzero-to-zero transition during the current delta.
	Negedge() bool

	// AddDependent registers a process as sensitive to this observable.
	// Append-only: valid only during setup, before Run.
	AddDependent(pid ProcessID)

	// Dependents returns the process ids sensitive to this observable.
	Dependents() []ProcessID
}

// observableBase implements the dependent-tracking shared by every concrete
// Observable. It is embedded, never used standalone.
type observableBase struct {
	name       string
	dependents []ProcessID
}

func (o *observableBase) Name() string {
	return o.name
}

func (o *observableBase) AddDependent(pid ProcessID) {
	o.dependents = append(o.dependents, pid)
}

func (o *observableBase) Dependents() []ProcessID {
	return o.dependents
}

// edgeOf reports (changed, posedge, negedge) for a value transition from
// prev to cur, using the zero value of T as the boolean interpretation
// boundary ("nonzero" for integers, literal false/true for bool).
func edgeOf[T Value](prev, cur T) (changed, posedge, negedge bool) {
	var zero T
	changed = prev != cur
	posedge = prev == zero && cur != zero
	negedge = prev != zero && cur == zero
	return changed, posedge, negedge
}

// committable is implemented by observables that stage writes under NBA
// discipline (InputPort, InternalSignal) and must be promoted during COMMIT.
type committable interface {
	dirty() bool
	commit()
}

// sampleable is implemented by observables that mirror DUT memory into the
// testbench's observation window (OutputPort) and must be refreshed during
// SAMPLE.
type sampleable interface {
	sample()
}

// deltaChanged is implemented by every concrete observable so the kernel can
// distribute triggers during REACT without knowing the concrete type.
type deltaChanged interface {
	Observable
}
