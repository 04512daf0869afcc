package main

import (
	"flag"
	"fmt"
	"os"
)

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku check <grid>

Verify that a completed grid is a valid solution: every row, column, and
box holds the digits 1-9 exactly once. The grid may be a file or an
inline 81-character string. Exits nonzero on the first violation.

Examples:
  sudoku check solution.tsv
  sudoku check 534678912672195348198342567859761423426853791713924856961537284287419635345286179
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("grid required")
	}

	g, err := loadGrid(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load grid: %w", err)
	}

	if err := g.CheckSolution(); err != nil {
		return fmt.Errorf("invalid solution: %w", err)
	}

	fmt.Println("Valid solution")
	return nil
}
