package search

import (
	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/rules"
)

// CandidateMoves returns the legal moves worth searching: on an empty
// board, the center only; otherwise every empty, non-double-three cell
// within Chebyshev distance 2 of any occupied cell (spec §4.6 "Move
// generation").
func CandidateMoves(b *board.Board, color board.Stone) []board.Pos {
	if b.StoneCount() == 0 {
		return []board.Pos{board.NewPos(board.Size/2, board.Size/2)}
	}

	var occupied []board.Pos
	occupied = append(occupied, b.Stones(board.Black).Positions()...)
	occupied = append(occupied, b.Stones(board.White).Positions()...)

	seen := make(map[board.Pos]bool)
	var out []board.Pos
	for _, o := range occupied {
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				p := o.Add(dr, dc)
				if !p.Valid() || seen[p] || !b.IsEmpty(p) {
					continue
				}
				seen[p] = true
				if rules.IsValidMove(b, p, color) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
