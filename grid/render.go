package grid

import (
	"fmt"
	"strings"
)

// String renders the grid as 9 tab-separated lines. Cells assigned since
// the last ClearDirty carry a '*' suffix so solver-filled cells stand out.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			cell := &g.Cells[r][c]
			fmt.Fprintf(&sb, "%d", cell.Value)
			if cell.Dirty {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the grid as an 81-character row-major digit string.
func (g *Grid) Compact() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte('0' + g.Cells[r][c].Value))
		}
	}
	return sb.String()
}

// Pretty renders the grid with box-drawing borders, '.' for blanks.
func (g *Grid) Pretty() string {
	var sb strings.Builder
	sb.WriteString("┌───────┬───────┬───────┐\n")
	for r := 0; r < Size; r++ {
		if r > 0 && r%BoxSize == 0 {
			sb.WriteString("├───────┼───────┼───────┤\n")
		}
		sb.WriteString("│")
		for c := 0; c < Size; c++ {
			if c > 0 && c%BoxSize == 0 {
				sb.WriteString(" │")
			}
			if v := g.Cells[r][c].Value; v == 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, " %d", v)
			}
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString("└───────┴───────┴───────┘\n")
	return sb.String()
}

// CandidatesString lists the candidate set of every unassigned cell, one
// per line in row-major order, for diagnostics.
func (g *Grid) CandidatesString() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := &g.Cells[r][c]
			if cell.Value == 0 {
				fmt.Fprintf(&sb, "%d,%d: %s\n", r, c, cell.Candidates)
			}
		}
	}
	return sb.String()
}
