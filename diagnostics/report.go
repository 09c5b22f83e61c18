// Package diagnostics renders kernel termination outcomes as human-readable
// reports, in the same spirit as the teacher's verify.VerificationReport:
// a plain Go value the kernel itself never constructs a string for, and a
// separate formatter the caller invokes when it wants one.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/deltasim/kernel"
)

// FormatCombinationalLoop writes a table describing a combinational-loop
// failure: the failing time, the configured bound, and every observable
// that was still dirty when the bound was hit.
func FormatCombinationalLoop(w io.Writer, err *kernel.CombinationalLoopError) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("COMBINATIONAL LOOP DETECTED")
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Time", err.At})
	t.AppendRow(table.Row{"Delta bound", err.Bound})
	t.AppendRow(table.Row{"Still dirty", fmt.Sprintf("%v", err.DirtyNames)})
	t.Render()
}

// RunSummary is a plain record of how a Run call ended, for callers that
// want a uniform report regardless of which termination path was taken.
type RunSummary struct {
	FinalTime Time
	Outcome   string
	Detail    string
}

// Time mirrors kernel.Time so callers can build a RunSummary without
// importing kernel just for the time type.
type Time = kernel.Time

// Summarize classifies a Scheduler.Run error (or nil) into a RunSummary.
func Summarize(finalTime Time, err error) RunSummary {
	switch e := err.(type) {
	case nil:
		return RunSummary{FinalTime: finalTime, Outcome: "quiescent"}
	case *kernel.FinishedError:
		return RunSummary{FinalTime: e.At, Outcome: "finished"}
	case *kernel.TimeoutError:
		return RunSummary{FinalTime: e.At, Outcome: "timeout"}
	case *kernel.CombinationalLoopError:
		return RunSummary{FinalTime: e.At, Outcome: "combinational-loop", Detail: e.Error()}
	default:
		return RunSummary{FinalTime: finalTime, Outcome: "error", Detail: err.Error()}
	}
}

// FormatRunSummary writes a one-row table summarizing how a run ended,
// grounded on the teacher's VerificationReport.WriteReport formatting.
func FormatRunSummary(w io.Writer, s RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("RUN SUMMARY")
	t.AppendHeader(table.Row{"Final time", "Outcome", "Detail"})
	t.AppendRow(table.Row{s.FinalTime, s.Outcome, s.Detail})
	t.Render()
}
