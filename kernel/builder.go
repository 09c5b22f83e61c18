package kernel

import "log/slog"

// Builder configures a Scheduler before Build, following the teacher
// codebase's fluent With* construction style.
type Builder struct {
	combinationalLoopBound int
	pastScheduleRejected   bool
	tieBreak               TieBreak
	logger                 *slog.Logger
}

// NewBuilder returns a Builder with the spec's default policy: a 1,000
// delta-iteration combinational-loop bound, past ScheduleAt calls coerced to
// now rather than rejected, and testbench-first draining on tied
// timestamps.
func NewBuilder() Builder {
	return Builder{
		combinationalLoopBound: DefaultCombinationalLoopBound,
		tieBreak:               TestbenchFirst,
	}
}

// WithCombinationalLoopBound overrides the default 1,000-iteration bound on
// the inner delta loop.
func (b Builder) WithCombinationalLoopBound(n int) Builder {
	if n <= 0 {
		panic("deltasim: combinational loop bound must be positive")
	}
	b.combinationalLoopBound = n
	return b
}

// WithPastScheduleRejected makes ScheduleAt panic with a ProgrammerError when
// given a time before now, instead of coercing it to now.
func (b Builder) WithPastScheduleRejected() Builder {
	b.pastScheduleRejected = true
	return b
}

// WithTieBreak selects which timeline drains first when the testbench's
// next event and the DUT's next internal time slot land on the same time.
func (b Builder) WithTieBreak(t TieBreak) Builder {
	b.tieBreak = t
	return b
}

// WithLogger sets the logger used for phase and delta tracing and for
// termination diagnostics. If unset, Build defaults to slog.Default().
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a Scheduler with the configured policy.
func (b Builder) Build() *Scheduler {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		reg:                    newRegistry(),
		events:                 newEventQueue(),
		combinationalLoopBound: b.combinationalLoopBound,
		pastScheduleRejected:   b.pastScheduleRejected,
		tieBreak:               b.tieBreak,
		logger:                 logger,
	}
}
