package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/prover"
)

func verify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	keys := fs.String("keys", ".sudoku-keys", "Directory holding the circuit keys from the proving run")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku verify <puzzle> <proof> [options]

Verify a stored proof against a puzzle's givens. Succeeds only if the
proof was generated for exactly these givens with the keys in --keys.
The solution itself is never needed.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku verify puzzle.tsv puzzle.proof
  sudoku verify puzzle.tsv puzzle.proof --keys ./keys
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("puzzle and proof file required")
	}

	puzzle, err := loadGrid(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}

	p := prover.NewWithKeyDir(*keys)
	if err := p.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	proof, err := p.LoadProof(fs.Arg(1))
	if err != nil {
		return err
	}

	if err := p.VerifyProof(proof, puzzle); err != nil {
		return fmt.Errorf("proof rejected: %w", err)
	}

	fmt.Printf("Proof verified for %s\n", puzzle.CID())
	return nil
}
