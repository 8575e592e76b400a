package rules

import "github.com/hailam/ninuki/internal/board"

// HasFiveAt scans the four line directions through pos in both
// orientations, counting consecutive color stones, and reports whether any
// direction reaches 5 or more (overlines count, per the variant's rules).
// pos itself is assumed to hold color.
func HasFiveAt(b *board.Board, pos board.Pos, color board.Stone) bool {
	for _, d := range board.Directions {
		count := 1
		for _, sign := range [2]int{1, -1} {
			dr, dc := d[0]*sign, d[1]*sign
			cur := pos.Add(dr, dc)
			for cur.Valid() && b.At(cur) == color {
				count++
				cur = cur.Add(dr, dc)
			}
		}
		if count >= 5 {
			return true
		}
	}
	return false
}

// FindFivePositions globally scans every stone of color and returns the
// first line of 5 or more it finds, as positions ordered along the line.
// Returns nil if color has no five anywhere on the board.
func FindFivePositions(b *board.Board, color board.Stone) []board.Pos {
	var result []board.Pos
	b.Stones(color).Iterate(func(idx int) bool {
		pos := board.PosFromIndex(idx)
		for _, d := range board.Directions {
			line := []board.Pos{pos}
			// extend negative direction, prepending
			cur := pos.Add(-d[0], -d[1])
			for cur.Valid() && b.At(cur) == color {
				line = append([]board.Pos{cur}, line...)
				cur = cur.Add(-d[0], -d[1])
			}
			// extend positive direction, appending
			cur = pos.Add(d[0], d[1])
			for cur.Valid() && b.At(cur) == color {
				line = append(line, cur)
				cur = cur.Add(d[0], d[1])
			}
			if len(line) >= 5 {
				result = line
				return false
			}
		}
		return true
	})
	return result
}

// CanBreakFiveByCapture reports whether the opponent of lineColor can, in
// one move, capture a pair containing at least one stone of five. It checks
// every empty cell 8-adjacent to any cell of five, and for each such
// candidate determines whether the opponent playing there would capture
// anything that lands inside five.
func CanBreakFiveByCapture(b *board.Board, five []board.Pos, lineColor board.Stone) bool {
	opp := lineColor.Opponent()
	inLine := make(map[board.Pos]bool, len(five))
	for _, p := range five {
		inLine[p] = true
	}

	tried := make(map[board.Pos]bool)
	for _, p := range five {
		for _, n := range board.Neighbors8 {
			cand := p.Add(n[0], n[1])
			if !cand.Valid() || tried[cand] || !b.IsEmpty(cand) {
				continue
			}
			tried[cand] = true

			b.Place(cand, opp)
			captured := CapturedPositions(b, cand, opp)
			b.Remove(cand)

			for _, c := range captured {
				if inLine[c] {
					return true
				}
			}
		}
	}
	return false
}

// Winner reports the winning color, if any. Capture wins (>=5 pairs) take
// precedence over five-in-a-row wins; a five that the opponent could break
// by capture on their next move is not a win (spec §4.3.3/§4.3.4).
func Winner(b *board.Board) board.Stone {
	if b.Captures(board.Black) >= 5 {
		return board.Black
	}
	if b.Captures(board.White) >= 5 {
		return board.White
	}
	for _, color := range [2]board.Stone{board.Black, board.White} {
		five := FindFivePositions(b, color)
		if five != nil && !CanBreakFiveByCapture(b, five, color) {
			return color
		}
	}
	return board.Empty
}
