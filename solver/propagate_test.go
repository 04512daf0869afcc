package solver

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
)

func TestPropagateAllBlankGrid(t *testing.T) {
	g := grid.New()
	PropagateAll(g)

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if got := g.At(r, c).Candidates; got != grid.AllDigits {
				t.Fatalf("cell %d,%d should have all digits, got %s", r, c, got)
			}
		}
	}
}

func TestPropagateAllExcludesPeers(t *testing.T) {
	g := grid.New()
	g.At(0, 0).Value = 5
	g.At(0, 8).Value = 3
	g.At(8, 0).Value = 7
	g.At(1, 1).Value = 2 // same box as 0,0
	PropagateAll(g)

	cand := g.At(0, 1).Candidates // shares row with 5 and 3, box with 5 and 2
	for _, d := range []int{5, 3, 2} {
		if cand.Has(d) {
			t.Errorf("candidate %d should be excluded at 0,1", d)
		}
	}
	if !cand.Has(7) {
		t.Error("7 is in a different row, column, and box; it should remain")
	}

	cand = g.At(1, 0).Candidates // shares column with 5 and 7, box with 5 and 2
	for _, d := range []int{5, 7, 2} {
		if cand.Has(d) {
			t.Errorf("candidate %d should be excluded at 1,0", d)
		}
	}

	// Assigned cells carry no candidates
	if g.At(0, 0).Candidates != 0 {
		t.Error("assigned cell should have an empty candidate set")
	}
}

func TestPropagateAllIdempotent(t *testing.T) {
	g := grid.MustParse("530070000600195000098000060800060003400803001700020006060000280000419005000080079")

	PropagateAll(g)
	before := snapshot(g)
	PropagateAll(g)
	after := snapshot(g)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("candidates changed on repeat propagation at index %d", i)
		}
	}
}

func TestPropagateAllAfterAssignment(t *testing.T) {
	g := grid.New()
	PropagateAll(g)

	g.Assign(4, 4, 9)
	PropagateAll(g)

	if g.At(4, 0).Candidates.Has(9) {
		t.Error("row peer should lose candidate 9")
	}
	if g.At(0, 4).Candidates.Has(9) {
		t.Error("column peer should lose candidate 9")
	}
	if g.At(3, 3).Candidates.Has(9) {
		t.Error("box peer should lose candidate 9")
	}
	if !g.At(0, 0).Candidates.Has(9) {
		t.Error("unrelated cell should keep candidate 9")
	}
}

func snapshot(g *grid.Grid) []grid.Candidates {
	out := make([]grid.Candidates, 0, grid.Size*grid.Size)
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			out = append(out, g.At(r, c).Candidates)
		}
	}
	return out
}
