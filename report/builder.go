package report

import (
	"errors"
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
	"github.com/pflow-xyz/go-sudoku/trace"
)

// Builder helps construct a Report from solver output
type Builder struct {
	report Report
}

// NewBuilder creates a new report builder
func NewBuilder() *Builder {
	return &Builder{
		report: Report{
			Version: SchemaVersion,
			Metadata: Metadata{
				Timestamp: time.Now(),
				Solver:    "backtracking",
			},
		},
	}
}

// WithPuzzle sets the input grid
func (b *Builder) WithPuzzle(g *grid.Grid, source string) *Builder {
	b.report.Puzzle = Puzzle{
		Givens: g.Compact(),
		CID:    g.CID(),
		Blanks: g.Remaining(),
		Source: source,
	}
	return b
}

// WithDifficulty records the difficulty of a generated puzzle
func (b *Builder) WithDifficulty(d string) *Builder {
	b.report.Puzzle.Difficulty = d
	return b
}

// WithResult processes a successful solve
func (b *Builder) WithResult(res *solver.Result) *Builder {
	b.report.Metadata.Status = "solved"
	b.report.Metadata.ComputeTime = res.Duration.Seconds()
	b.report.Solution = &Solution{
		Grid: res.Solution.Compact(),
		CID:  res.Solution.CID(),
	}
	b.report.Search = Search{
		Copies:     res.Stats.Copies,
		Forced:     res.Stats.Forced,
		Branches:   res.Stats.Branches,
		Iterations: res.Stats.Iterations,
		MaxDepth:   res.Stats.MaxDepth,
	}
	return b
}

// WithError sets the failure status. An unsolvable puzzle is reported as
// its own status since it is an answer, not a fault.
func (b *Builder) WithError(err error) *Builder {
	if errors.Is(err, solver.ErrUnsolvable) {
		b.report.Metadata.Status = "unsolvable"
	} else {
		b.report.Metadata.Status = "error"
	}
	b.report.Metadata.Error = err.Error()
	return b
}

// WithTrace attaches the recorded search trace
func (b *Builder) WithTrace(events []trace.Event) *Builder {
	b.report.Trace = events
	return b
}

// Build returns the constructed Report
func (b *Builder) Build() *Report {
	return &b.report
}
