package solver

import (
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// SearchStats counts the work a solve performed. The counters ride on the
// Result rather than living in package state, so a solve stays a pure
// function of its input.
type SearchStats struct {
	Copies     int // board clones made at branch points
	Forced     int // single-candidate assignments made in place
	Branches   int // cells that required guessing
	Iterations int // passes over the sorted open cells
	MaxDepth   int // deepest recursion level reached
}

// Progress is the snapshot handed to the progress hook after each
// assignment.
type Progress struct {
	Depth     int
	Remaining int
	Row, Col  int
	Value     int
	Forced    bool
}

// Result is a completed solve.
type Result struct {
	Solution *grid.Grid
	Stats    SearchStats
	Duration time.Duration
}
