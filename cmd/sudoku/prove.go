package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/prover"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	keys := fs.String("keys", ".sudoku-keys", "Directory for circuit keys (created on first run)")
	out := fs.String("out", "", "Write the proof in binary form to this file")
	verifier := fs.String("verifier", "", "Also export a Solidity verifier contract to this file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku prove <puzzle> <solution> [options]

Generate a Groth16 proof that the solution completes the puzzle. The
puzzle's givens are public; the solution stays private. The first run
compiles the circuit and writes keys under --keys; later runs reuse
them, and a proof only verifies against keys from the same setup.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Proof as Solidity-ready JSON on stdout
  sudoku prove puzzle.tsv solution.tsv

  # Binary proof file for later verification
  sudoku prove puzzle.tsv solution.tsv --out puzzle.proof

  # Export the on-chain verifier as well
  sudoku prove puzzle.tsv solution.tsv --verifier Verifier.sol
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("puzzle and solution required")
	}

	puzzle, err := loadGrid(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}
	solution, err := loadGrid(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("load solution: %w", err)
	}

	p := prover.NewWithKeyDir(*keys)

	fmt.Fprintf(os.Stderr, "Setting up circuit (first run takes a while)...\n")
	if err := p.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if *out != "" {
		proof, err := p.ProveRaw(puzzle, solution)
		if err != nil {
			return fmt.Errorf("prove: %w", err)
		}
		if err := prover.SaveProof(proof, *out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Proof written\n")
		fmt.Fprintf(os.Stderr, "  Puzzle: %s\n", puzzle.CID())
		fmt.Fprintf(os.Stderr, "  Output: %s\n", *out)
	} else {
		result, err := p.Prove(puzzle, solution)
		if err != nil {
			return fmt.Errorf("prove: %w", err)
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal proof: %w", err)
		}
		fmt.Println(string(data))
		fmt.Fprintf(os.Stderr, "Proved %s (%d constraints)\n", result.PuzzleCID, result.Constraints)
	}

	if *verifier != "" {
		sol, err := p.ExportVerifier()
		if err != nil {
			return fmt.Errorf("export verifier: %w", err)
		}
		if err := os.WriteFile(*verifier, []byte(sol), 0644); err != nil {
			return fmt.Errorf("write verifier: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Verifier: %s\n", *verifier)
	}

	return nil
}
