package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseTSV reads a grid from 9 tab-separated data lines. Blank lines and
// lines starting with '#' are skipped; 0 marks a blank cell.
func ParseTSV(r io.Reader) (*Grid, error) {
	rows := make([][]int, 0, Size)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if len(rows) == Size {
			return nil, fmt.Errorf("%w: more than %d data lines", ErrMalformed, Size)
		}
		fields := strings.Split(line, "\t")
		if len(fields) != Size {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformed, lineNo, len(fields))
		}
		row := make([]int, Size)
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q", ErrMalformed, lineNo, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d data lines, got %d", ErrMalformed, Size, len(rows))
	}
	return FromRows(rows)
}

// ParseCompact reads a grid from an 81-character row-major digit string,
// with '0' or '.' marking blanks.
func ParseCompact(s string) (*Grid, error) {
	s = strings.TrimSpace(s)
	if len(s) != Size*Size {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrMalformed, Size*Size, len(s))
	}
	g := New()
	for i := 0; i < len(s); i++ {
		ch := s[i]
		v := 0
		switch {
		case ch == '.':
		case ch >= '0' && ch <= '9':
			v = int(ch - '0')
		default:
			return nil, fmt.Errorf("%w: character %q at position %d", ErrMalformed, ch, i)
		}
		g.Cells[i/Size][i%Size].Value = v
	}
	return g, nil
}

// Parse accepts either supported format: multi-line input is treated as
// TSV, a single line as the compact 81-character form.
func Parse(s string) (*Grid, error) {
	if strings.ContainsRune(strings.TrimSpace(s), '\n') {
		return ParseTSV(strings.NewReader(s))
	}
	return ParseCompact(s)
}

// Load reads a grid from a file in either supported format.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// MustParse parses a grid in either format and panics on error. Intended
// for fixtures and examples with known-good input.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
