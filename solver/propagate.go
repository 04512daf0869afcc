package solver

import "github.com/pflow-xyz/go-sudoku/grid"

// PropagateAll recomputes the candidate set of every unassigned cell as
// the digits 1-9 not fixed anywhere in its row, column, or 3x3 box.
// Assigned cells keep an empty set. The scan is a pure function of the
// current values: calling it twice without an intervening assignment
// changes nothing. It must run again after every assignment because the
// computation is a full scan, not an incremental update.
func PropagateAll(g *grid.Grid) {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := g.At(r, c)
			if cell.Value != 0 {
				cell.Candidates = 0
				continue
			}
			cell.Candidates = candidatesFor(g, r, c)
		}
	}
}

// candidatesFor scans the peers of (row, col) and returns the digits not
// yet taken by any of them.
func candidatesFor(g *grid.Grid, row, col int) grid.Candidates {
	cand := grid.AllDigits
	for c := 0; c < grid.Size; c++ {
		if v := g.Cells[row][c].Value; v != 0 {
			cand.Remove(v)
		}
	}
	for r := 0; r < grid.Size; r++ {
		if v := g.Cells[r][col].Value; v != 0 {
			cand.Remove(v)
		}
	}
	br, bc := grid.BoxOrigin(row, col)
	for r := br; r < br+grid.BoxSize; r++ {
		for c := bc; c < bc+grid.BoxSize; c++ {
			if v := g.Cells[r][c].Value; v != 0 {
				cand.Remove(v)
			}
		}
	}
	return cand
}
