package grid

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/holiman/uint256"
)

// Fingerprint returns the SHA-256 of the grid's compact form as a 256-bit
// integer. Grids with the same values share a fingerprint; candidate sets
// and dirty flags do not contribute. The value form is comparable and
// serves directly as a map key.
func (g *Grid) Fingerprint() uint256.Int {
	sum := sha256.Sum256([]byte(g.Compact()))
	var fp uint256.Int
	fp.SetBytes(sum[:])
	return fp
}

// CID returns the grid's content identifier: "sudoku:" followed by the
// hex-encoded fingerprint. Any change to a cell value changes the CID.
func (g *Grid) CID() string {
	sum := sha256.Sum256([]byte(g.Compact()))
	return "sudoku:" + hex.EncodeToString(sum[:])
}
