// Package trace records the steps a solve takes: forced assignments, branch
// guesses, backtracks, and the terminal outcome. Traces can be written as
// JSONL for later analysis and summarized for quick inspection.
package trace

import (
	"fmt"
	"time"
)

// Event kinds.
const (
	KindAssign    = "assign"    // forced single-candidate move
	KindBranch    = "branch"    // guess committed at a branch point
	KindBacktrack = "backtrack" // guess failed, returning to the parent
	KindSolved    = "solved"
	KindExhausted = "exhausted"
)

// Event is a single step in a solve.
type Event struct {
	Seq        int       `json:"seq"`
	Kind       string    `json:"kind"`
	Depth      int       `json:"depth"`
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	Value      int       `json:"value"`
	Remaining  int       `json:"remaining"`
	Candidates int       `json:"candidates"` // candidate count at the decision point
	Timestamp  time.Time `json:"timestamp"`
}

// Recorder collects events during a single solve. The solver stamps one
// event per assignment and per backtrack; the recorder assigns sequence
// numbers and timestamps.
type Recorder struct {
	Events []Event
	start  time.Time
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{start: time.Now()}
}

// Record appends an event, stamping its sequence number and timestamp.
func (r *Recorder) Record(e Event) {
	e.Seq = len(r.Events)
	e.Timestamp = time.Now()
	r.Events = append(r.Events, e)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.Events)
}

// Summary provides basic statistics over a trace.
type Summary struct {
	Events   int
	ByKind   map[string]int
	MaxDepth int
	Duration time.Duration
}

// Summarize computes summary statistics for a slice of events.
func Summarize(events []Event) Summary {
	summary := Summary{
		Events: len(events),
		ByKind: make(map[string]int),
	}
	if len(events) == 0 {
		return summary
	}

	for _, e := range events {
		summary.ByKind[e.Kind]++
		if e.Depth > summary.MaxDepth {
			summary.MaxDepth = e.Depth
		}
	}
	summary.Duration = events[len(events)-1].Timestamp.Sub(events[0].Timestamp)
	return summary
}

// Summary computes statistics over the recorder's events.
func (r *Recorder) Summary() Summary {
	return Summarize(r.Events)
}

// Print prints the summary.
func (s Summary) Print() {
	fmt.Println("=== Solve Trace Summary ===")
	fmt.Printf("Events: %d\n", s.Events)
	for _, kind := range []string{KindAssign, KindBranch, KindBacktrack, KindSolved, KindExhausted} {
		if n := s.ByKind[kind]; n > 0 {
			fmt.Printf("  %s: %d\n", kind, n)
		}
	}
	fmt.Printf("Max depth: %d\n", s.MaxDepth)
	fmt.Printf("Duration: %v\n", s.Duration)
}
