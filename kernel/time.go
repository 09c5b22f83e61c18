// Package kernel implements the time-stratified delta-cycle scheduler that
// drives a co-simulation between a Go testbench and an externally compiled
// hardware model.
package kernel

// Time is a tick count. It carries no unit of its own: resolution and
// meaning belong to the DUT, per the External Interfaces contract in dut.
type Time uint64

// TieBreak picks which timeline drains first when the testbench's next
// event and the DUT's next internal time slot land on the same Time.
type TieBreak int

const (
	// TestbenchFirst drains every testbench-timed event at the tied
	// timestamp before EVAL observes the DUT's own slot. This is the
	// default: it guarantees the testbench presents a stable input
	// picture before the DUT advances.
	TestbenchFirst TieBreak = iota
	// DUTFirst is the alternate, documented-but-discouraged ordering.
	DUTFirst
)

// DefaultCombinationalLoopBound is the number of delta iterations a single
// time step may run before the kernel declares a combinational loop.
const DefaultCombinationalLoopBound = 1000
