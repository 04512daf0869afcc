package prover

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// SolutionCircuit proves knowledge of a complete Sudoku solution matching
// a set of public givens, without revealing the solver-filled cells.
// Cells are row-major; a zero given marks a cell that was blank in the
// puzzle, and every nonzero given must carry through to the solution.
type SolutionCircuit struct {
	Givens   [grid.Size * grid.Size]frontend.Variable `gnark:",public"`
	Solution [grid.Size * grid.Size]frontend.Variable
}

// Define declares the Sudoku constraints:
//
//	each solution cell is a digit 1..9
//	each row, column, and box holds nine distinct digits
//	each nonzero given equals its solution cell
func (c *SolutionCircuit) Define(api frontend.API) error {
	for i := 0; i < len(c.Solution); i++ {
		api.AssertIsLessOrEqual(1, c.Solution[i])
		api.AssertIsLessOrEqual(c.Solution[i], 9)
	}

	unit := make([]frontend.Variable, grid.Size)
	for r := 0; r < grid.Size; r++ {
		for col := 0; col < grid.Size; col++ {
			unit[col] = c.Solution[r*grid.Size+col]
		}
		assertAllDifferent(api, unit)
	}
	for col := 0; col < grid.Size; col++ {
		for r := 0; r < grid.Size; r++ {
			unit[r] = c.Solution[r*grid.Size+col]
		}
		assertAllDifferent(api, unit)
	}
	for br := 0; br < grid.Size; br += grid.BoxSize {
		for bc := 0; bc < grid.Size; bc += grid.BoxSize {
			i := 0
			for r := br; r < br+grid.BoxSize; r++ {
				for col := bc; col < bc+grid.BoxSize; col++ {
					unit[i] = c.Solution[r*grid.Size+col]
					i++
				}
			}
			assertAllDifferent(api, unit)
		}
	}

	// given * (given - solution) == 0: zero givens constrain nothing,
	// nonzero givens must match the solution cell.
	for i := 0; i < len(c.Givens); i++ {
		api.AssertIsEqual(api.Mul(c.Givens[i], api.Sub(c.Givens[i], c.Solution[i])), 0)
	}

	return nil
}

func assertAllDifferent(api frontend.API, vars []frontend.Variable) {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			api.AssertIsDifferent(vars[i], vars[j])
		}
	}
}

// NewAssignment builds a witness assignment from a puzzle and its solution.
func NewAssignment(puzzle, solution *grid.Grid) (*SolutionCircuit, error) {
	if puzzle == nil || solution == nil {
		return nil, fmt.Errorf("assignment needs both puzzle and solution")
	}
	if !solution.IsComplete() {
		return nil, fmt.Errorf("solution has %d open cells", solution.Remaining())
	}

	a := &SolutionCircuit{}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			i := r*grid.Size + c
			a.Givens[i] = puzzle.At(r, c).Value
			a.Solution[i] = solution.At(r, c).Value
		}
	}
	return a, nil
}

// NewPublicAssignment builds a verification-side assignment carrying only
// the public givens. Use with frontend.PublicOnly when checking a stored
// proof.
func NewPublicAssignment(puzzle *grid.Grid) *SolutionCircuit {
	a := &SolutionCircuit{}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			a.Givens[r*grid.Size+c] = puzzle.At(r, c).Value
		}
	}
	return a
}
