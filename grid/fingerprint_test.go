package grid

import (
	"strings"
	"testing"
)

func TestFingerprintStable(t *testing.T) {
	a, _ := FromRows(classicPuzzle)
	b, _ := FromRows(classicPuzzle)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal grids should share a fingerprint")
	}
	if a.CID() != b.CID() {
		t.Error("equal grids should share a CID")
	}
}

func TestFingerprintChangesWithValues(t *testing.T) {
	a, _ := FromRows(classicPuzzle)
	b := a.Clone()
	b.Assign(0, 2, 4)

	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different values should produce different fingerprints")
	}
	if a.CID() == b.CID() {
		t.Error("different values should produce different CIDs")
	}
}

func TestFingerprintIgnoresTransientState(t *testing.T) {
	a, _ := FromRows(classicPuzzle)
	b := a.Clone()
	b.At(0, 2).Candidates = AllDigits
	b.At(0, 0).Dirty = true

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("candidates and dirty flags must not affect the fingerprint")
	}
}

func TestCIDFormat(t *testing.T) {
	g, _ := FromRows(classicPuzzle)
	cid := g.CID()
	if !strings.HasPrefix(cid, "sudoku:") {
		t.Errorf("CID should carry the sudoku: prefix, got %s", cid)
	}
	if len(cid) != len("sudoku:")+64 {
		t.Errorf("CID should be a 64-hex digest, got length %d", len(cid))
	}

	// Fingerprint as map key
	seen := map[string]bool{cid: true}
	if !seen[g.Clone().CID()] {
		t.Error("cloned grid should map to the same CID key")
	}
}
