package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/report"
	"github.com/pflow-xyz/go-sudoku/solver"
	"github.com/pflow-xyz/go-sudoku/store"
	"github.com/pflow-xyz/go-sudoku/trace"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	gridFlag := fs.String("grid", "", "Puzzle as an 81-character string (alternative to a file argument)")
	progress := fs.Bool("progress", false, "Print each assignment as the search makes it")
	candidates := fs.Bool("candidates", false, "Print the candidate table after propagation")
	stats := fs.Bool("stats", false, "Print search statistics")
	pretty := fs.Bool("pretty", false, "Print the solution with box borders")
	output := fs.String("output", "", "Write a JSON report to this file")
	traceFile := fs.String("trace", "", "Write search events to this JSONL file")
	dbPath := fs.String("db", "", "Record the puzzle and solve session in this SQLite database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku solve <puzzle.tsv> [options]

Solve a puzzle by constraint propagation and backtracking search. The
puzzle comes from a TSV file (9 lines, 0 for blanks) or an inline grid.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Solve from a file
  sudoku solve puzzle.tsv

  # Solve an inline grid, pretty-printed
  sudoku solve --grid 530070000600195000098000060800060003400803001700020006060000280000419005000080079 --pretty

  # Record the search and write a report
  sudoku solve puzzle.tsv --trace steps.jsonl --output report.json

  # Keep a session history in SQLite
  sudoku solve puzzle.tsv --db sudoku.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		g      *grid.Grid
		source string
		err    error
	)
	switch {
	case *gridFlag != "":
		g, err = grid.Parse(*gridFlag)
		source = "inline"
	case fs.NArg() >= 1:
		g, err = grid.Load(fs.Arg(0))
		source = fs.Arg(0)
	default:
		fs.Usage()
		return fmt.Errorf("puzzle file or --grid required")
	}
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}

	if *candidates {
		work := g.Clone()
		solver.PropagateAll(work)
		fmt.Print(work.CandidatesString())
	}

	searcher := solver.New()

	var rec *trace.Recorder
	if *traceFile != "" {
		rec = trace.NewRecorder()
		searcher = searcher.WithRecorder(rec)
	}

	if *progress {
		searcher = searcher.WithProgress(func(p solver.Progress) {
			kind := "branch"
			if p.Forced {
				kind = "forced"
			}
			fmt.Fprintf(os.Stderr, "depth %2d  %s %d at %d,%d  (%d open)\n",
				p.Depth, kind, p.Value, p.Row, p.Col, p.Remaining)
		})
	}

	res, solveErr := searcher.Solve(g)

	// Side outputs are written even for failed solves, so an unsolvable
	// run still leaves a report and a session row behind.
	if *traceFile != "" {
		if err := trace.SaveJSONL(rec.Events, *traceFile); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	if *output != "" {
		builder := report.NewBuilder().WithPuzzle(g, source)
		if solveErr != nil {
			builder.WithError(solveErr)
		} else {
			builder.WithResult(res)
		}
		if rec != nil {
			builder.WithTrace(rec.Events)
		}
		if err := report.WriteJSON(builder.Build(), *output); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if *dbPath != "" {
		st, err := store.New(*dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		cid, err := st.SavePuzzle(g, "", source)
		if err != nil {
			return fmt.Errorf("save puzzle: %w", err)
		}
		if _, err := st.RecordSolve(cid, res, solveErr); err != nil {
			return fmt.Errorf("record session: %w", err)
		}
	}

	if solveErr != nil {
		return solveErr
	}

	if *pretty {
		fmt.Print(res.Solution.Pretty())
	} else {
		fmt.Print(res.Solution.String())
	}

	// Summary goes to stderr so it doesn't interfere with piping.
	fmt.Fprintf(os.Stderr, "Solved in %s\n", res.Duration)
	if *stats {
		fmt.Fprintf(os.Stderr, "  Forced moves: %d\n", res.Stats.Forced)
		fmt.Fprintf(os.Stderr, "  Branch points: %d\n", res.Stats.Branches)
		fmt.Fprintf(os.Stderr, "  Board copies: %d\n", res.Stats.Copies)
		fmt.Fprintf(os.Stderr, "  Iterations: %d\n", res.Stats.Iterations)
		fmt.Fprintf(os.Stderr, "  Max depth: %d\n", res.Stats.MaxDepth)
	}

	return nil
}

// loadGrid reads a puzzle from arg, which may be a file path (TSV or
// compact) or an inline 81-character grid string.
func loadGrid(arg string) (*grid.Grid, error) {
	if _, err := os.Stat(arg); err == nil {
		return grid.Load(arg)
	}
	return grid.Parse(arg)
}
