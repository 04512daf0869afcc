package prover

import (
	"strings"
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
)

const (
	classicPuzzle   = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	hardestPuzzle   = "800000000003600000070090200050007000000045700000100030001000068008500010090000400"
)

// One prover for the whole test run; setup is expensive and idempotent.
var testProver = New()

func TestSetup(t *testing.T) {
	if err := testProver.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cc, err := testProver.Circuit()
	if err != nil {
		t.Fatalf("circuit: %v", err)
	}

	t.Logf("Circuit compiled:")
	t.Logf("  Constraints: %d", cc.Constraints)
	t.Logf("  Public vars: %d", cc.PublicVars)
	t.Logf("  Private vars: %d", cc.PrivateVars)

	if cc.Constraints == 0 {
		t.Error("expected non-zero constraints")
	}
	if cc.PublicVars < grid.Size*grid.Size {
		t.Errorf("public vars = %d, want at least 81", cc.PublicVars)
	}
	if cc.PrivateVars < grid.Size*grid.Size {
		t.Errorf("private vars = %d, want at least 81", cc.PrivateVars)
	}
}

func TestProve(t *testing.T) {
	puzzle := grid.MustParse(classicPuzzle)
	solution := grid.MustParse(classicSolution)

	result, err := testProver.Prove(puzzle, solution)
	if err != nil {
		t.Fatalf("prove failed: %v", err)
	}

	t.Logf("Proof generated:")
	t.Logf("  Puzzle: %s", result.PuzzleCID)
	t.Logf("  Constraints: %d", result.Constraints)
	t.Logf("  Public inputs: %d", len(result.PublicInputs))

	if result.A[0] == nil || result.A[1] == nil {
		t.Error("proof point A not initialized")
	}
	if result.C[0] == nil || result.C[1] == nil {
		t.Error("proof point C not initialized")
	}
	if len(result.RawProof) != 8 {
		t.Errorf("raw proof has %d elements, want 8", len(result.RawProof))
	}
	if !strings.HasPrefix(result.PuzzleCID, "sudoku:") {
		t.Errorf("puzzle cid = %q", result.PuzzleCID)
	}
	if len(result.PublicInputs) < grid.Size*grid.Size {
		t.Errorf("public inputs = %d, want at least 81", len(result.PublicInputs))
	}
}

func TestVerify(t *testing.T) {
	puzzle := grid.MustParse(classicPuzzle)
	solution := grid.MustParse(classicSolution)

	if err := testProver.Verify(puzzle, solution); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	t.Log("Proof verified successfully")
}

func TestProveRejectsBrokenSolution(t *testing.T) {
	puzzle := grid.MustParse(classicPuzzle)
	solution := grid.MustParse(classicSolution)

	// Swapping two cells in a row keeps the row a permutation but breaks
	// both columns and the given at 0,0.
	a, b := solution.At(0, 0), solution.At(0, 1)
	a.Value, b.Value = b.Value, a.Value

	if _, err := testProver.Prove(puzzle, solution); err == nil {
		t.Error("expected prove to fail for a broken solution")
	} else {
		t.Logf("Prove correctly failed: %v", err)
	}
}

func TestProveRejectsMismatchedGivens(t *testing.T) {
	// The solution is a perfectly valid grid, just not for these givens.
	puzzle := grid.MustParse(hardestPuzzle)
	solution := grid.MustParse(classicSolution)

	if _, err := testProver.Prove(puzzle, solution); err == nil {
		t.Error("expected prove to fail for mismatched givens")
	}
}

func TestNewAssignmentIncomplete(t *testing.T) {
	puzzle := grid.MustParse(classicPuzzle)

	if _, err := NewAssignment(puzzle, puzzle); err == nil {
		t.Error("expected error for an incomplete solution")
	}
	if _, err := NewAssignment(nil, nil); err == nil {
		t.Error("expected error for nil grids")
	}
}

func TestExportVerifier(t *testing.T) {
	solidity, err := testProver.ExportVerifier()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	t.Logf("Exported Solidity verifier: %d bytes", len(solidity))
	if len(solidity) < 1000 {
		t.Errorf("exported Solidity too short: %d bytes", len(solidity))
	}
}

func TestProveParallel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping parallel proving in short mode")
	}

	puzzle := grid.MustParse(classicPuzzle)
	solution := grid.MustParse(classicSolution)

	jobs := []ProofJob{
		{ID: 0, Puzzle: puzzle, Solution: solution},
		{ID: 1, Puzzle: puzzle, Solution: solution},
	}

	results := testProver.ProveParallel(jobs, 2)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("job %d failed: %v", r.ID, r.Error)
		}
		if r.Proof == nil {
			t.Errorf("job %d has no proof", r.ID)
		}
	}
}
