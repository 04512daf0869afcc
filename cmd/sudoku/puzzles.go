package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pflow-xyz/go-sudoku/store"
)

func puzzles(args []string) error {
	fs := flag.NewFlagSet("puzzles", flag.ExitOnError)
	dbPath := fs.String("db", "sudoku.db", "SQLite database path")
	add := fs.String("add", "", "Add a puzzle from this file")
	show := fs.String("show", "", "Export one puzzle and its sessions as JSON by CID")
	remove := fs.String("delete", "", "Delete a puzzle and its sessions by CID")
	difficulty := fs.String("difficulty", "", "Difficulty label for --add, or filter for listing")
	limit := fs.Int("limit", 20, "Maximum number of puzzles to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku puzzles [options]

Manage the puzzle database. With no action flag, lists stored puzzles.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Add a puzzle with a difficulty label
  sudoku puzzles --db sudoku.db --add puzzle.tsv --difficulty hard

  # List hard puzzles
  sudoku puzzles --db sudoku.db --difficulty hard

  # Export one puzzle with its solve history
  sudoku puzzles --db sudoku.db --show sudoku:93ac649c... > puzzle.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.New(*dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	switch {
	case *add != "":
		g, err := loadGrid(*add)
		if err != nil {
			return fmt.Errorf("load puzzle: %w", err)
		}
		cid, err := st.SavePuzzle(g, *difficulty, *add)
		if err != nil {
			return fmt.Errorf("save puzzle: %w", err)
		}
		fmt.Println(cid)
		return nil

	case *show != "":
		data, err := st.ExportPuzzleJSON(*show)
		if err != nil {
			return fmt.Errorf("export puzzle: %w", err)
		}
		fmt.Println(string(data))
		return nil

	case *remove != "":
		if err := st.DeletePuzzle(*remove); err != nil {
			return fmt.Errorf("delete puzzle: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Deleted %s\n", *remove)
		return nil
	}

	list, err := st.ListPuzzles(*difficulty, *limit)
	if err != nil {
		return fmt.Errorf("list puzzles: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No puzzles stored")
		return nil
	}

	fmt.Printf("%-22s  %-8s  %-6s  %s\n", "CID", "LEVEL", "BLANKS", "ADDED")
	for _, p := range list {
		g, err := p.Grid()
		if err != nil {
			return fmt.Errorf("decode puzzle %s: %w", p.CID, err)
		}
		level := p.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("%-22s  %-8s  %-6d  %s\n",
			shortCID(p.CID), level, g.Remaining(), p.CreatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := st.Stats()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	fmt.Fprintf(os.Stderr, "\n%d puzzles, %d sessions (%d solved)\n",
		counts.Puzzles, counts.Sessions, counts.Solved)

	return nil
}

// shortCID trims a content identifier for table display.
func shortCID(cid string) string {
	const max = 22
	if len(cid) <= max {
		return cid
	}
	return strings.TrimSuffix(cid[:max-3], ":") + "..."
}
