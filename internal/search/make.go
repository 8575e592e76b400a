package search

import (
	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/rules"
)

// MoveRecord captures everything Unmake needs to exactly reverse a Make:
// the placed position, its color, and the ordered list of positions it
// captured (spec §3 "Move record").
type MoveRecord struct {
	Pos      board.Pos
	Color    board.Stone
	Captured []board.Pos
}

// Make places color at pos, executes any resulting captures, and returns
// the incrementally updated hash plus a MoveRecord for Unmake. Caller must
// have already verified the move is legal.
func Make(b *board.Board, hash uint64, pos board.Pos, color board.Stone) (uint64, MoveRecord) {
	captured := rules.CapturedPositions(b, pos, color)

	b.Place(pos, color)
	hash = board.UpdatePlaceOrRemove(hash, pos, color)

	if len(captured) > 0 {
		oldCount := b.Captures(color)
		rules.ExecuteCaptures(b, captured, color)
		newCount := b.Captures(color)
		opp := color.Opponent()
		for _, c := range captured {
			hash = board.UpdateCaptureOnly(hash, c, opp)
		}
		hash = board.UpdateCaptureCount(hash, color, oldCount, newCount)
	}

	return hash, MoveRecord{Pos: pos, Color: color, Captured: captured}
}

// Unmake exactly reverses the Make that produced rec, restoring the board
// and hash bit-for-bit (spec §8 make/unmake reversibility).
func Unmake(b *board.Board, hash uint64, rec MoveRecord) uint64 {
	if len(rec.Captured) > 0 {
		newCount := b.Captures(rec.Color)
		oldCount := newCount - len(rec.Captured)/2
		hash = board.UpdateCaptureCount(hash, rec.Color, newCount, oldCount)
		opp := rec.Color.Opponent()
		rules.UndoCaptures(b, rec.Captured, rec.Color)
		for _, c := range rec.Captured {
			hash = board.UpdateCaptureOnly(hash, c, opp)
		}
	}

	b.Remove(rec.Pos)
	hash = board.UpdatePlaceOrRemove(hash, rec.Pos, rec.Color)

	return hash
}
