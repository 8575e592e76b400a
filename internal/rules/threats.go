package rules

import "github.com/hailam/ninuki/internal/board"

// FindFourThreats scans the whole board for every stone of color that
// anchors a line of 4-or-more consecutive stones of color with at least one
// open extension, and returns the union of those extension cells. Used by
// the facade's "block opponent's four" pipeline stage (spec §4.8 step 4):
// these are existing stones already on the board, not a hypothetical
// placement.
func FindFourThreats(b *board.Board, color board.Stone) []board.Pos {
	var out []board.Pos
	seen := map[board.Pos]bool{}

	b.Stones(color).Iterate(func(idx int) bool {
		pos := board.PosFromIndex(idx)
		for _, d := range board.Directions {
			count := 1
			var ends []board.Pos

			cur := pos.Add(d[0], d[1])
			for cur.Valid() && b.At(cur) == color {
				count++
				cur = cur.Add(d[0], d[1])
			}
			if cur.Valid() && b.At(cur) == board.Empty {
				ends = append(ends, cur)
			}

			cur = pos.Add(-d[0], -d[1])
			for cur.Valid() && b.At(cur) == color {
				count++
				cur = cur.Add(-d[0], -d[1])
			}
			if cur.Valid() && b.At(cur) == board.Empty {
				ends = append(ends, cur)
			}

			if count >= 4 {
				for _, e := range ends {
					if !seen[e] {
						seen[e] = true
						out = append(out, e)
					}
				}
			}
		}
		return true
	})
	return out
}
