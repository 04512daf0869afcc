package grid

import (
	"strings"
	"testing"
)

func TestCheckSolutionValid(t *testing.T) {
	g, _ := FromRows(classicSolution)
	if err := g.CheckSolution(); err != nil {
		t.Errorf("known solution reported invalid: %v", err)
	}
	if !g.IsValidSolution() {
		t.Error("IsValidSolution should be true")
	}
}

func TestCheckSolutionIncomplete(t *testing.T) {
	g, _ := FromRows(classicSolution)
	g.Cells[3][4].Value = 0
	err := g.CheckSolution()
	if err == nil {
		t.Fatal("incomplete grid should fail the check")
	}
	if !strings.Contains(err.Error(), "unassigned") {
		t.Errorf("error should name the blank cell, got: %v", err)
	}
	if g.IsComplete() {
		t.Error("IsComplete should be false with a blank cell")
	}
}

func TestCheckSolutionDuplicates(t *testing.T) {
	// Row duplicate
	g, _ := FromRows(classicSolution)
	g.Cells[0][1].Value = g.Cells[0][0].Value
	if err := g.CheckSolution(); err == nil {
		t.Error("row duplicate not detected")
	}

	// Column duplicate without a row duplicate: swap two values within a row
	g, _ = FromRows(classicSolution)
	g.Cells[4][0].Value, g.Cells[4][1].Value = g.Cells[4][1].Value, g.Cells[4][0].Value
	if err := g.CheckSolution(); err == nil {
		t.Error("column duplicate not detected")
	}
}

func TestDuplicateIn(t *testing.T) {
	if d := duplicateIn([]int{1, 2, 3, 0, 0, 4}); d != 0 {
		t.Errorf("no duplicate expected, got %d", d)
	}
	if d := duplicateIn([]int{1, 2, 3, 2}); d != 2 {
		t.Errorf("expected duplicate 2, got %d", d)
	}
	// Zeros never count as duplicates
	if d := duplicateIn([]int{0, 0, 0}); d != 0 {
		t.Errorf("zeros should not be duplicates, got %d", d)
	}
}
