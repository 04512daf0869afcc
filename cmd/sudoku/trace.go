package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pflow-xyz/go-sudoku/trace"
)

func showTrace(args []string) error {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	kindFilter := fs.String("kind", "", "Filter by event kind (assign, branch, backtrack, solved, exhausted)")
	events := fs.Bool("events", false, "Print every event, not just the summary")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku trace <steps.jsonl> [options]

Summarize a search trace recorded with solve --trace.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Quick summary
  sudoku trace steps.jsonl

  # Full timeline
  sudoku trace steps.jsonl --events

  # Backtracks only
  sudoku trace steps.jsonl --events --kind backtrack
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("trace file required")
	}

	all, err := trace.LoadJSONL(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read trace: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No events recorded")
		return nil
	}

	display := all
	if *kindFilter != "" {
		var filtered []trace.Event
		for _, e := range all {
			if e.Kind == *kindFilter {
				filtered = append(filtered, e)
			}
		}
		if len(filtered) == 0 {
			fmt.Printf("No events of kind '%s'\n", *kindFilter)
			return nil
		}
		display = filtered
	}

	if *events {
		fmt.Printf("=== Search Trace (%d events) ===\n\n", len(display))
		for _, e := range display {
			switch e.Kind {
			case trace.KindSolved, trace.KindExhausted:
				fmt.Printf("%5d  %-10s depth %d\n", e.Seq, e.Kind, e.Depth)
			default:
				fmt.Printf("%5d  %-10s %d at %d,%d  depth %-3d %d open\n",
					e.Seq, e.Kind, e.Value, e.Row, e.Col, e.Depth, e.Remaining)
			}
		}
		fmt.Println()
	}

	sum := trace.Summarize(all)
	fmt.Printf("Events: %d\n", sum.Events)
	kinds := make([]string, 0, len(sum.ByKind))
	for k := range sum.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-10s %d\n", k, sum.ByKind[k])
	}
	fmt.Printf("Max depth: %d\n", sum.MaxDepth)
	fmt.Printf("Duration: %s\n", sum.Duration)

	return nil
}
