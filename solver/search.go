// Package solver implements the constraint-propagation and backtracking
// search that completes Sudoku grids. Propagation computes each open cell's
// legal digits from its row, column, and box peers; forced moves fill
// single-candidate cells on the current board; branch points recurse over
// independent board copies in ascending digit order until the grid is
// solved or every branch is exhausted.
package solver

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/trace"
)

// Error types for the solver package.
var (
	// ErrUnsolvable is returned when every branch is exhausted at the root.
	// A contradictory puzzle is a normal outcome, not a solver failure.
	ErrUnsolvable = errors.New("puzzle has no solution")

	// ErrDepthExceeded is returned when recursion passes the depth bound.
	// Depth can never legitimately exceed the number of originally blank
	// cells, so this signals a solver bug rather than a hard puzzle.
	ErrDepthExceeded = errors.New("search depth exceeded bound")
)

// DefaultMaxDepth bounds recursion at one level per cell.
const DefaultMaxDepth = grid.Size * grid.Size

// Searcher runs the backtracking search. Configure with the With* methods
// before calling Solve; a Searcher from New solves with defaults.
type Searcher struct {
	maxDepth int
	progress func(Progress)
	recorder *trace.Recorder
}

// New creates a Searcher with the default depth bound.
func New() *Searcher {
	return &Searcher{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth overrides the recursion depth bound.
func (s *Searcher) WithMaxDepth(d int) *Searcher {
	s.maxDepth = d
	return s
}

// WithProgress installs a hook invoked after every assignment. The hook
// observes the search; it cannot influence it.
func (s *Searcher) WithProgress(fn func(Progress)) *Searcher {
	s.progress = fn
	return s
}

// WithRecorder installs a trace recorder capturing every step.
func (s *Searcher) WithRecorder(rec *trace.Recorder) *Searcher {
	s.recorder = rec
	return s
}

// Solve completes the given grid or reports that no completion exists. The
// input grid is never mutated; the solution is an independent copy whose
// solver-filled cells are marked dirty. Returns ErrUnsolvable when the
// puzzle has no solution and ErrDepthExceeded if the depth guard fires.
func (s *Searcher) Solve(g *grid.Grid) (*Result, error) {
	start := time.Now()
	work := g.Clone()
	PropagateAll(work)

	stats := &SearchStats{}
	solved, err := s.search(work, 0, stats)
	if err != nil {
		return nil, err
	}
	if solved == nil {
		s.record(trace.Event{Kind: trace.KindExhausted, Remaining: work.Remaining()})
		return nil, ErrUnsolvable
	}
	s.record(trace.Event{Kind: trace.KindSolved, Depth: stats.MaxDepth})
	return &Result{
		Solution: solved,
		Stats:    *stats,
		Duration: time.Since(start),
	}, nil
}

// search runs one recursion level. It returns the solved grid, or nil when
// this branch is exhausted; the error return is reserved for the depth
// guard and propagates straight to the root.
func (s *Searcher) search(g *grid.Grid, depth int, stats *SearchStats) (*grid.Grid, error) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if g.Remaining() == 0 {
		return g, nil
	}
	if depth > s.maxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrDepthExceeded, depth)
	}

	for {
		stats.Iterations++
		open := openByCandidates(g)
		if len(open) == 0 {
			return g, nil
		}

		cell := open[0]
		count := cell.Candidates.Count()
		switch {
		case count == 0:
			// Most constrained cell has no legal digit: dead branch.
			return nil, nil

		case count == 1:
			// Forced move: assign on the current board, no clone.
			v := cell.Candidates.Digits()[0]
			g.Assign(cell.Row, cell.Col, v)
			stats.Forced++
			s.emit(Progress{Depth: depth, Remaining: g.Remaining(), Row: cell.Row, Col: cell.Col, Value: v, Forced: true})
			s.record(trace.Event{Kind: trace.KindAssign, Depth: depth, Row: cell.Row, Col: cell.Col, Value: v, Remaining: g.Remaining(), Candidates: 1})
			PropagateAll(g)

		default:
			stats.Branches++
			for _, v := range cell.Candidates.Digits() {
				child := g.Clone()
				stats.Copies++
				child.Assign(cell.Row, cell.Col, v)
				s.emit(Progress{Depth: depth + 1, Remaining: child.Remaining(), Row: cell.Row, Col: cell.Col, Value: v})
				s.record(trace.Event{Kind: trace.KindBranch, Depth: depth + 1, Row: cell.Row, Col: cell.Col, Value: v, Remaining: child.Remaining(), Candidates: count})
				PropagateAll(child)

				solved, err := s.search(child, depth+1, stats)
				if err != nil {
					return nil, err
				}
				if solved != nil {
					return solved, nil
				}
				s.record(trace.Event{Kind: trace.KindBacktrack, Depth: depth + 1, Row: cell.Row, Col: cell.Col, Value: v, Remaining: g.Remaining()})
			}
			return nil, nil
		}
	}
}

// openByCandidates returns the unassigned cells ordered by ascending
// candidate count, ties broken by row-major position. Resolving the most
// constrained cells first keeps the branching factor small; the fixed tie
// break keeps results deterministic.
func openByCandidates(g *grid.Grid) []*grid.Cell {
	open := make([]*grid.Cell, 0, grid.Size*grid.Size)
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if cell := g.At(r, c); cell.Value == 0 {
				open = append(open, cell)
			}
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Candidates.Count() < open[j].Candidates.Count()
	})
	return open
}

func (s *Searcher) emit(p Progress) {
	if s.progress != nil {
		s.progress(p)
	}
}

func (s *Searcher) record(e trace.Event) {
	if s.recorder != nil {
		s.recorder.Record(e)
	}
}

// Solve completes g with a default Searcher.
func Solve(g *grid.Grid) (*Result, error) {
	return New().Solve(g)
}
