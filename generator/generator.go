// Package generator produces complete Sudoku grids and playable puzzles.
// A complete grid is the solver's completion of a board whose diagonal
// boxes were filled from a seeded shuffle; puzzles are dug out of complete
// grids by blanking cells. Generated puzzles always have at least one
// solution but are not checked for uniqueness.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

// Difficulty selects how many cells are blanked when digging a puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Removals returns how many cells are blanked for this difficulty.
func (d Difficulty) Removals() int {
	switch d {
	case Easy:
		return 35
	case Medium:
		return 45
	case Hard:
		return 55
	case Expert:
		return 65
	default:
		return 45
	}
}

// ParseDifficulty maps a difficulty name to its level.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, medium, hard, or expert)", s)
	}
}

// Complete returns a full valid grid. Seed 0 solves the empty board and
// always yields the same canonical grid; any other seed shuffles the three
// diagonal boxes first, so each seed yields its own completion. Calls with
// equal seeds return equal grids.
func Complete(seed int64) (*grid.Grid, error) {
	g := grid.New()
	if seed != 0 {
		seedDiagonal(g, rand.New(rand.NewSource(seed)))
	}
	res, err := solver.Solve(g)
	if err != nil {
		return nil, fmt.Errorf("complete grid: %w", err)
	}
	out := res.Solution
	out.ClearDirty()
	return out, nil
}

// Puzzle digs a playable puzzle out of a complete grid, blanking the number
// of cells the difficulty asks for. The same difficulty and seed always
// produce the same puzzle.
func Puzzle(d Difficulty, seed int64) (*grid.Grid, error) {
	g, err := Complete(seed)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed + int64(d)))
	positions := rng.Perm(grid.Size * grid.Size)
	for _, pos := range positions[:d.Removals()] {
		cell := g.At(pos/grid.Size, pos%grid.Size)
		cell.Value = 0
		cell.Candidates = 0
	}
	return g, nil
}

// seedDiagonal fills boxes 0, 4, and 8 with shuffled digits. The diagonal
// boxes share no row or column, so any filling is consistent and the
// solver can always extend it.
func seedDiagonal(g *grid.Grid, rng *rand.Rand) {
	for b := 0; b < grid.Size; b += grid.BoxSize + 1 {
		origin := (b / grid.BoxSize) * grid.BoxSize
		digits := rng.Perm(grid.Size)
		i := 0
		for r := origin; r < origin+grid.BoxSize; r++ {
			for c := origin; c < origin+grid.BoxSize; c++ {
				g.At(r, c).Value = digits[i] + 1
				i++
			}
		}
	}
}
