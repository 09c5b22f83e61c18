package kernel

import "log/slog"

// Sub-debug log levels for the kernel's own phase-by-phase tracing, in the
// same spirit as the teacher's own custom slog.Level constants: named levels
// outside the four standard ones, reserved for the kernel's internal
// bookkeeping rather than general application logging.
const (
	// LevelPhase traces entry into each of the five inner-loop phases. Far
	// too noisy for routine debugging; intended for diagnosing convergence
	// issues one phase at a time.
	LevelPhase slog.Level = slog.LevelDebug - 4

	// LevelDelta logs one line per converged delta, with the iteration
	// count it took to reach the fixed point.
	LevelDelta slog.Level = slog.LevelDebug - 2
)
