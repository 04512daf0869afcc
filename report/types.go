// Package report defines the structured output format for solve runs
package report

import (
	"time"

	"github.com/pflow-xyz/go-sudoku/trace"
)

const SchemaVersion = "1.0.0"

// Report contains complete solve output
type Report struct {
	Version  string        `json:"version"`
	Metadata Metadata      `json:"metadata"`
	Puzzle   Puzzle        `json:"puzzle"`
	Solution *Solution     `json:"solution,omitempty"`
	Search   Search        `json:"search"`
	Trace    []trace.Event `json:"trace,omitempty"`
}

// Metadata contains solve execution information
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Solver      string    `json:"solver"`
	Status      string    `json:"status"` // solved, unsolvable, error
	Error       string    `json:"error,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
}

// Puzzle describes the input grid
type Puzzle struct {
	Givens     string `json:"givens"` // 81-character row-major form
	CID        string `json:"cid"`
	Blanks     int    `json:"blanks"`
	Source     string `json:"source,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Solution describes the completed grid
type Solution struct {
	Grid string `json:"grid"` // 81-character row-major form
	CID  string `json:"cid"`
}

// Search summarizes the work the solver did
type Search struct {
	Copies     int `json:"copies"`
	Forced     int `json:"forced"`
	Branches   int `json:"branches"`
	Iterations int `json:"iterations"`
	MaxDepth   int `json:"maxDepth"`
}
