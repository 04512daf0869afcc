// Package grid provides the 9x9 Sudoku board model: cells holding either a
// fixed digit or a set of candidate digits, deep copies for backtracking,
// parsing and rendering, and content fingerprints for caching and storage.
package grid

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Size is the number of rows and columns.
const Size = 9

// BoxSize is the side of each 3x3 box.
const BoxSize = 3

// Error types for the grid package.
var (
	// ErrMalformed is returned when input is not a 9x9 grid of values in [0,9].
	ErrMalformed = errors.New("malformed grid")
)

// Candidates is a set of digits 1-9 packed into a bitmask.
// Bit d is set when digit d remains possible. The packed form makes
// ascending-digit iteration the natural enumeration order, which the
// search relies on for deterministic results.
type Candidates uint16

// AllDigits is the candidate set containing every digit 1-9.
const AllDigits Candidates = 0x3fe

// Has reports whether digit d is in the set.
func (c Candidates) Has(d int) bool { return c&(1<<uint(d)) != 0 }

// Add puts digit d into the set.
func (c *Candidates) Add(d int) { *c |= 1 << uint(d) }

// Remove takes digit d out of the set.
func (c *Candidates) Remove(d int) { *c &^= 1 << uint(d) }

// Count returns the number of digits in the set.
func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

// Digits returns the digits in the set in ascending order.
func (c Candidates) Digits() []int {
	out := make([]int, 0, c.Count())
	for d := 1; d <= Size; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as "{1 4 9}".
func (c Candidates) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, d := range c.Digits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Cell is one of the 81 board positions.
type Cell struct {
	Row, Col   int        // position, fixed for the cell's lifetime
	Value      int        // assigned digit; 0 means unassigned
	Candidates Candidates // legal digits, meaningful only while Value == 0
	Dirty      bool       // assigned since last ClearDirty; display only
}

// Grid is the 9x9 board. Construct grids with New, FromRows, or the parsers
// so every cell knows its position.
type Grid struct {
	Cells [Size][Size]Cell
}

// New returns an empty grid.
func New() *Grid {
	g := &Grid{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.Cells[r][c] = Cell{Row: r, Col: c}
		}
	}
	return g
}

// FromRows builds a grid from 9 rows of 9 values in [0,9], 0 marking a
// blank cell.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, Size, len(rows))
	}
	g := New()
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d values", ErrMalformed, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > Size {
				return nil, fmt.Errorf("%w: value %d at row %d col %d", ErrMalformed, v, r, c)
			}
			g.Cells[r][c].Value = v
		}
	}
	return g, nil
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) *Cell {
	return &g.Cells[row][col]
}

// Clone returns a fully independent deep copy. Cells hold no pointers, so
// copying the backing array copies everything.
func (g *Grid) Clone() *Grid {
	dup := *g
	return &dup
}

// Remaining returns the number of unassigned cells. A grid is solved when
// this reaches zero.
func (g *Grid) Remaining() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Cells[r][c].Value == 0 {
				n++
			}
		}
	}
	return n
}

// Assign fixes value v at (row, col), clears the cell's candidates, and
// marks it dirty for display.
func (g *Grid) Assign(row, col, v int) {
	cell := &g.Cells[row][col]
	cell.Value = v
	cell.Candidates = 0
	cell.Dirty = true
}

// ClearDirty resets every cell's display flag.
func (g *Grid) ClearDirty() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.Cells[r][c].Dirty = false
		}
	}
}

// Equal reports whether both grids hold the same values. Candidate sets and
// dirty flags are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Cells[r][c].Value != other.Cells[r][c].Value {
				return false
			}
		}
	}
	return true
}

// Values returns the grid values as 9 rows of 9 ints.
func (g *Grid) Values() [][]int {
	rows := make([][]int, Size)
	for r := 0; r < Size; r++ {
		rows[r] = make([]int, Size)
		for c := 0; c < Size; c++ {
			rows[r][c] = g.Cells[r][c].Value
		}
	}
	return rows
}

// BoxOrigin returns the top-left position of the 3x3 box containing (row, col).
func BoxOrigin(row, col int) (int, int) {
	return (row / BoxSize) * BoxSize, (col / BoxSize) * BoxSize
}
