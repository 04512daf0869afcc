package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "print":
		if err := printGrid(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "verify":
		if err := verify(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "puzzles":
		if err := puzzles(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "trace":
		if err := showTrace(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("sudoku version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sudoku - constraint propagation Sudoku solver

Usage:
  sudoku <command> [options]

Commands:
  solve      Solve a puzzle from a file or inline grid
  generate   Generate a complete grid or a graded puzzle
  check      Verify a completed grid
  print      Pretty-print a puzzle or its candidate table
  prove      Generate a zero-knowledge proof of a solution
  verify     Verify a stored proof against a puzzle's givens
  puzzles    Manage the puzzle database
  trace      Summarize a recorded search trace
  help       Show this help message
  version    Show version information

Examples:
  # Solve a puzzle from a TSV file
  sudoku solve puzzle.tsv

  # Solve an inline grid and save a report
  sudoku solve --grid 530070000600195...080079 --output report.json

  # Generate a hard puzzle
  sudoku generate --difficulty hard --seed 7

  # Prove a solution without revealing it
  sudoku prove puzzle.tsv solution.tsv --out puzzle.proof
  sudoku verify puzzle.tsv puzzle.proof

For command-specific help, run:
  sudoku <command> --help`)
}
