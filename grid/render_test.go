package grid

import (
	"strings"
	"testing"
)

func TestStringDirtyMarker(t *testing.T) {
	g, _ := FromRows(classicPuzzle)
	g.Assign(0, 2, 4)

	out := g.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("expected %d lines, got %d", Size, len(lines))
	}
	first := strings.Split(lines[0], "\t")
	if first[2] != "4*" {
		t.Errorf("assigned cell should render as 4*, got %q", first[2])
	}
	if first[0] != "5" {
		t.Errorf("given cell should render without marker, got %q", first[0])
	}

	g.ClearDirty()
	first = strings.Split(strings.Split(g.String(), "\n")[0], "\t")
	if first[2] != "4" {
		t.Errorf("marker should disappear after ClearDirty, got %q", first[2])
	}
}

func TestCompact(t *testing.T) {
	g, _ := FromRows(classicPuzzle)
	s := g.Compact()
	if len(s) != Size*Size {
		t.Fatalf("expected %d characters, got %d", Size*Size, len(s))
	}
	if !strings.HasPrefix(s, "530070000") {
		t.Errorf("unexpected first row encoding: %s", s[:Size])
	}
}

func TestPretty(t *testing.T) {
	g, _ := FromRows(classicPuzzle)
	out := g.Pretty()
	if !strings.Contains(out, ".") {
		t.Error("blanks should render as dots")
	}
	if !strings.Contains(out, "│ 5 3 .") {
		t.Errorf("unexpected first row rendering:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != Size+4 {
		t.Errorf("expected %d lines, got %d", Size+4, lines)
	}
}

func TestCandidatesString(t *testing.T) {
	g := New()
	g.Assign(0, 0, 1)
	g.ClearDirty()
	g.At(0, 1).Candidates = AllDigits

	out := g.CandidatesString()
	if strings.Contains(out, "0,0:") {
		t.Error("assigned cells should not be listed")
	}
	if !strings.Contains(out, "0,1: {1 2 3 4 5 6 7 8 9}") {
		t.Errorf("unexpected candidates line:\n%s", out)
	}
}
