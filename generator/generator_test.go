package generator

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

func TestCompleteCanonical(t *testing.T) {
	g, err := Complete(0)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := g.CheckSolution(); err != nil {
		t.Fatalf("canonical grid invalid: %v", err)
	}

	again, err := Complete(0)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !g.Equal(again) {
		t.Error("seed 0 should always give the same grid")
	}
}

func TestCompleteSeeded(t *testing.T) {
	a, err := Complete(42)
	if err != nil {
		t.Fatalf("Complete(42): %v", err)
	}
	if err := a.CheckSolution(); err != nil {
		t.Fatalf("seeded grid invalid: %v", err)
	}

	b, err := Complete(42)
	if err != nil {
		t.Fatalf("Complete(42): %v", err)
	}
	if !a.Equal(b) {
		t.Error("equal seeds should give equal grids")
	}

	c, err := Complete(7)
	if err != nil {
		t.Fatalf("Complete(7): %v", err)
	}
	if a.Equal(c) {
		t.Error("different seeds gave the same grid")
	}
}

func TestCompleteHasNoDirtyCells(t *testing.T) {
	g, err := Complete(3)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g.At(r, c).Dirty {
				t.Fatalf("cell %d,%d still dirty", r, c)
			}
		}
	}
}

func TestPuzzleBlanksPerDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		t.Run(d.String(), func(t *testing.T) {
			p, err := Puzzle(d, 11)
			if err != nil {
				t.Fatalf("Puzzle: %v", err)
			}
			if got := p.Remaining(); got != d.Removals() {
				t.Errorf("blank cells = %d, want %d", got, d.Removals())
			}

			// Digging from a complete grid keeps at least one solution.
			res, err := solver.Solve(p)
			if err != nil {
				t.Fatalf("generated puzzle unsolvable: %v", err)
			}
			if err := res.Solution.CheckSolution(); err != nil {
				t.Fatalf("solution invalid: %v", err)
			}
		})
	}
}

func TestPuzzleDeterministic(t *testing.T) {
	a, err := Puzzle(Hard, 99)
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	b, err := Puzzle(Hard, 99)
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	if !a.Equal(b) {
		t.Error("equal difficulty and seed should give equal puzzles")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"expert", Expert},
	}
	for _, tc := range cases {
		got, err := ParseDifficulty(tc.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestRemovals(t *testing.T) {
	if Easy.Removals() >= Expert.Removals() {
		t.Error("expert should blank more cells than easy")
	}
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		n := d.Removals()
		if n <= 0 || n >= grid.Size*grid.Size {
			t.Errorf("%v removals out of range: %d", d, n)
		}
	}
}
