package rules

import "github.com/hailam/ninuki/internal/board"

// IsValidMove reports whether color may legally play at pos: the cell must
// be empty, and the move must not be a forbidden double-three (unless it
// also captures).
func IsValidMove(b *board.Board, pos board.Pos, color board.Stone) bool {
	if !pos.Valid() || !b.IsEmpty(pos) {
		return false
	}
	return !IsDoubleThree(b, pos, color)
}
