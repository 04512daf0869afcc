package grid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func rowsToTSV(rows [][]int) string {
	var sb strings.Builder
	for _, row := range rows {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestParseTSV(t *testing.T) {
	input := "# classic puzzle\n\n" + rowsToTSV(classicPuzzle)
	g, err := ParseTSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}

	want, _ := FromRows(classicPuzzle)
	if !g.Equal(want) {
		t.Error("parsed grid does not match source rows")
	}
}

func TestParseTSVMalformed(t *testing.T) {
	nine := rowsToTSV(classicPuzzle)
	cases := []struct {
		name  string
		input string
	}{
		{"too few lines", rowsToTSV(classicPuzzle[:8])},
		{"too many lines", nine + "0\t0\t0\t0\t0\t0\t0\t0\t0\n"},
		{"short line", strings.Replace(nine, "5\t3\t0\t0\t7\t0\t0\t0\t0", "5\t3\t0", 1)},
		{"non-numeric field", strings.Replace(nine, "5\t3", "x\t3", 1)},
		{"value out of range", strings.Replace(nine, "5\t3", "15\t3", 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTSV(strings.NewReader(tc.input)); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParseCompact(t *testing.T) {
	g, _ := FromRows(classicPuzzle)
	parsed, err := ParseCompact(g.Compact())
	if err != nil {
		t.Fatalf("ParseCompact failed: %v", err)
	}
	if !parsed.Equal(g) {
		t.Error("compact round trip changed the grid")
	}

	// Dots are accepted for blanks
	dotted := strings.ReplaceAll(g.Compact(), "0", ".")
	parsed, err = ParseCompact(dotted)
	if err != nil {
		t.Fatalf("ParseCompact with dots failed: %v", err)
	}
	if !parsed.Equal(g) {
		t.Error("dotted form should parse to the same grid")
	}
}

func TestParseCompactMalformed(t *testing.T) {
	if _, err := ParseCompact("123"); !errors.Is(err, ErrMalformed) {
		t.Errorf("short input: expected ErrMalformed, got %v", err)
	}
	bad := strings.Repeat("0", 80) + "x"
	if _, err := ParseCompact(bad); !errors.Is(err, ErrMalformed) {
		t.Errorf("bad character: expected ErrMalformed, got %v", err)
	}
}

func TestParseAutoDetect(t *testing.T) {
	g, _ := FromRows(classicPuzzle)

	fromTSV, err := Parse(rowsToTSV(classicPuzzle))
	if err != nil {
		t.Fatalf("Parse TSV failed: %v", err)
	}
	if !fromTSV.Equal(g) {
		t.Error("multi-line input should parse as TSV")
	}

	fromCompact, err := Parse(g.Compact())
	if err != nil {
		t.Fatalf("Parse compact failed: %v", err)
	}
	if !fromCompact.Equal(g) {
		t.Error("single-line input should parse as compact")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.tsv")
	content := "# saved puzzle\n" + rowsToTSV(classicPuzzle)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want, _ := FromRows(classicPuzzle)
	if !g.Equal(want) {
		t.Error("loaded grid does not match source")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
