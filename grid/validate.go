package grid

import "fmt"

// IsComplete reports whether every cell holds a digit.
func (g *Grid) IsComplete() bool {
	return g.Remaining() == 0
}

// CheckSolution verifies that the grid is a complete, rule-valid solution:
// every row, column, and 3x3 box holds the digits 1-9 exactly once. The
// returned error names the first violation found.
func (g *Grid) CheckSolution() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Cells[r][c].Value == 0 {
				return fmt.Errorf("cell %d,%d is unassigned", r, c)
			}
		}
	}
	for r := 0; r < Size; r++ {
		if d := duplicateIn(g.row(r)); d != 0 {
			return fmt.Errorf("row %d repeats %d", r, d)
		}
	}
	for c := 0; c < Size; c++ {
		if d := duplicateIn(g.col(c)); d != 0 {
			return fmt.Errorf("column %d repeats %d", c, d)
		}
	}
	for br := 0; br < Size; br += BoxSize {
		for bc := 0; bc < Size; bc += BoxSize {
			if d := duplicateIn(g.box(br, bc)); d != 0 {
				return fmt.Errorf("box %d,%d repeats %d", br/BoxSize, bc/BoxSize, d)
			}
		}
	}
	return nil
}

// IsValidSolution reports whether CheckSolution passes.
func (g *Grid) IsValidSolution() bool {
	return g.CheckSolution() == nil
}

func (g *Grid) row(r int) []int {
	out := make([]int, Size)
	for c := 0; c < Size; c++ {
		out[c] = g.Cells[r][c].Value
	}
	return out
}

func (g *Grid) col(c int) []int {
	out := make([]int, Size)
	for r := 0; r < Size; r++ {
		out[r] = g.Cells[r][c].Value
	}
	return out
}

func (g *Grid) box(br, bc int) []int {
	out := make([]int, 0, Size)
	for r := br; r < br+BoxSize; r++ {
		for c := bc; c < bc+BoxSize; c++ {
			out = append(out, g.Cells[r][c].Value)
		}
	}
	return out
}

// duplicateIn returns the first repeated nonzero value, or 0 if none.
func duplicateIn(values []int) int {
	seen := make(map[int]bool)
	for _, v := range values {
		if v == 0 {
			continue
		}
		if seen[v] {
			return v
		}
		seen[v] = true
	}
	return 0
}
