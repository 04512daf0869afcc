package solver

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
)

func BenchmarkSolveClassic(b *testing.B) {
	g, err := grid.FromRows(classicPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveHardest(b *testing.B) {
	g, err := grid.FromRows(hardestPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveBlank(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Solve(grid.New()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPropagateAll(b *testing.B) {
	g, err := grid.FromRows(classicPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PropagateAll(g)
	}
}
