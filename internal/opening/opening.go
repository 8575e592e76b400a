// Package opening supplies the facade's opening-game shortcut: for the
// first few stones played, a lightweight heuristic move stands in for a
// full search. There is no published opening-book data for this variant,
// so unlike a Polyglot-style lookup this is computed directly from the
// board rather than read from a file; the package keeps the same
// lookup-shaped boundary (one function, a move and an ok flag) so the
// facade wires it exactly like a book lookup.
package opening

import (
	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/rules"
)

// MaxStones is the stone count above which the opening shortcut no longer
// applies and the facade falls through to full search (spec §4.8 step 1).
const MaxStones = 3

var center = board.NewPos(board.Size/2, board.Size/2)

var ringOffsets = [8][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Lookup returns a heuristic opening move for color, or ok=false once the
// board has grown past MaxStones and the caller should fall through to
// full search.
func Lookup(b *board.Board, color board.Stone) (board.Pos, bool) {
	if b.StoneCount() > MaxStones {
		return board.Pos{}, false
	}
	if b.StoneCount() == 0 {
		return center, true
	}
	if b.IsEmpty(center) && rules.IsValidMove(b, center, color) {
		return center, true
	}

	cr, cc, count := 0, 0, 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := board.NewPos(r, c)
			if !b.IsEmpty(p) {
				cr += r
				cc += c
				count++
			}
		}
	}
	if count == 0 {
		return center, true
	}
	centroid := board.NewPos(cr/count, cc/count)

	for radius := 1; radius <= 3; radius++ {
		for _, o := range ringOffsets {
			p := centroid.Add(o[0]*radius, o[1]*radius)
			if p.Valid() && rules.IsValidMove(b, p, color) {
				return p, true
			}
		}
	}

	for r := center.Row - 2; r <= center.Row+2; r++ {
		for c := center.Col - 2; c <= center.Col+2; c++ {
			p := board.NewPos(int(r), int(c))
			if p.Valid() && rules.IsValidMove(b, p, color) {
				return p, true
			}
		}
	}
	return board.Pos{}, false
}
