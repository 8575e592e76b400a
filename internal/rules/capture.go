// Package rules implements the Ninuki-renju rule kernel: pair capture,
// five-in-a-row detection with the capture-break exception, winner
// determination, and double-three forbidden-move detection.
package rules

import "github.com/hailam/ninuki/internal/board"

// CapturedPositions returns the positions captured by placing color at pos.
// The cell at pos itself is not read, so it may be called before or after
// the stone is placed. For each of the four line directions and both
// orientations, a capture triggers when the pattern along that ray is
// opponent, opponent, own — i.e. placing at pos completes an X-O-O-X
// bracket. Each triggered direction contributes exactly two captured
// positions; at most 8 pairs (4 directions x 2 orientations, 16 stones) can
// be captured by a single move.
func CapturedPositions(b *board.Board, pos board.Pos, color board.Stone) []board.Pos {
	opp := color.Opponent()
	var captured []board.Pos

	for _, d := range board.Directions {
		for _, sign := range [2]int{1, -1} {
			dr, dc := d[0]*sign, d[1]*sign
			p1 := pos.Add(dr, dc)
			p2 := pos.Add(2*dr, 2*dc)
			p3 := pos.Add(3*dr, 3*dc)
			if !p3.Valid() {
				continue
			}
			if b.At(p1) == opp && b.At(p2) == opp && b.At(p3) == color {
				captured = append(captured, p1, p2)
			}
		}
	}
	return captured
}

// HasCapture reports whether placing color at pos would capture anything,
// without allocating the capture list.
func HasCapture(b *board.Board, pos board.Pos, color board.Stone) bool {
	opp := color.Opponent()
	for _, d := range board.Directions {
		for _, sign := range [2]int{1, -1} {
			dr, dc := d[0]*sign, d[1]*sign
			p1 := pos.Add(dr, dc)
			p2 := pos.Add(2*dr, 2*dc)
			p3 := pos.Add(3*dr, 3*dc)
			if !p3.Valid() {
				continue
			}
			if b.At(p1) == opp && b.At(p2) == opp && b.At(p3) == color {
				return true
			}
		}
	}
	return false
}

// CountCaptures returns the number of pairs placing color at pos would
// capture.
func CountCaptures(b *board.Board, pos board.Pos, color board.Stone) int {
	return len(CapturedPositions(b, pos, color)) / 2
}

// ExecuteCaptures removes every position in captured from the board (all
// are opponent-colored, already placed) and credits color with
// len(captured)/2 pairs. Returns the same list, for the caller to retain in
// a move record for later UndoCaptures.
func ExecuteCaptures(b *board.Board, captured []board.Pos, color board.Stone) []board.Pos {
	for _, p := range captured {
		b.Remove(p)
	}
	b.AddCaptures(color, len(captured)/2)
	return captured
}

// UndoCaptures restores every captured position with opponent's stone and
// decrements color's pair count, the exact inverse of ExecuteCaptures.
func UndoCaptures(b *board.Board, captured []board.Pos, color board.Stone) {
	opp := color.Opponent()
	for _, p := range captured {
		b.Place(p, opp)
	}
	b.SubCaptures(color, len(captured)/2)
}
