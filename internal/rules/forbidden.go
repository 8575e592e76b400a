package rules

import "github.com/hailam/ninuki/internal/board"

// formsFreeThree reports whether, with color already placed at pos, the
// line through pos in direction (dr,dc) contains a free-three: a window of
// span 3 (three consecutive own stones) or span 4 (three own stones with
// exactly one internal empty gap) that contains pos, with both cells just
// outside the window empty and on-board.
//
// Enumerating every window overlapping pos (rather than growing a single
// run outward from pos) finds a true 3-consecutive subset even when a
// longer gap-joined run also touches pos — the case that a naive
// grow-outward-with-one-gap scan can miss (a gap-joined fourth stone can
// hide a genuine 3-in-a-row inside it). This is the "canonical H10
// regression" guarded against by construction instead of by a second pass.
func formsFreeThree(b *board.Board, pos board.Pos, color board.Stone, dr, dc int) bool {
	cellAt := func(offset int) board.Stone {
		p := pos.Add(dr*offset, dc*offset)
		if !p.Valid() {
			return -1 // sentinel: off-board, never Empty/color
		}
		return b.At(p)
	}

	// span-3 windows: start offsets -2..0, all three cells must be color.
	for start := -2; start <= 0; start++ {
		ok := true
		for i := 0; i < 3; i++ {
			if cellAt(start+i) != color {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if cellAt(start-1) == board.Empty && cellAt(start+3) == board.Empty {
			return true
		}
	}

	// span-4 windows: start offsets -3..0, exactly one internal gap
	// (position 1 or 2 of the window), the other three cells color.
	for start := -3; start <= 0; start++ {
		gapIdx := -1
		ok := true
		for i := 0; i < 4; i++ {
			c := cellAt(start + i)
			if c == color {
				continue
			}
			if c == board.Empty && (i == 1 || i == 2) && gapIdx == -1 {
				gapIdx = i
				continue
			}
			ok = false
			break
		}
		if !ok || gapIdx == -1 {
			continue
		}
		if cellAt(start-1) == board.Empty && cellAt(start+4) == board.Empty {
			return true
		}
	}

	return false
}

// CountFreeThrees places color at pos (pos must currently be empty),
// counts how many of the four line directions through pos form a
// free-three, then restores the board.
func CountFreeThrees(b *board.Board, pos board.Pos, color board.Stone) int {
	b.Place(pos, color)
	defer b.Remove(pos)

	count := 0
	for _, d := range board.Directions {
		if formsFreeThree(b, pos, color, d[0], d[1]) {
			count++
		}
	}
	return count
}

// IsDoubleThree reports whether placing color at pos would create two or
// more free-threes simultaneously. Exempt if the move also captures (spec
// §4.3.5).
func IsDoubleThree(b *board.Board, pos board.Pos, color board.Stone) bool {
	if HasCapture(b, pos, color) {
		return false
	}
	return CountFreeThrees(b, pos, color) >= 2
}
