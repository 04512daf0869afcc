package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/solver"
)

func printGrid(args []string) error {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	candidates := fs.Bool("candidates", false, "Print the candidate table after propagation")
	pretty := fs.Bool("pretty", true, "Print with box borders (plain TSV when false)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku print <puzzle> [options]

Pretty-print a puzzle from a file or an inline 81-character string.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku print puzzle.tsv
  sudoku print puzzle.tsv --candidates
  sudoku print 530070000600195000098000060800060003400803001700020006060000280000419005000080079
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle required")
	}

	g, err := loadGrid(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}

	if *pretty {
		fmt.Print(g.Pretty())
	} else {
		fmt.Print(g.String())
	}

	if *candidates {
		work := g.Clone()
		solver.PropagateAll(work)
		fmt.Print(work.CandidatesString())
	}

	return nil
}
