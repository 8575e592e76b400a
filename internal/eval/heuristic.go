package eval

import "github.com/hailam/ninuki/internal/board"

type patternKind int

const (
	kindNone patternKind = iota
	kindTwo
	kindThree
	kindFour
	kindFive
)

func abs(n int8) int {
	if n < 0 {
		return int(-n)
	}
	return int(n)
}

func manhattan(p board.Pos) int {
	const c = 9
	return abs(p.Row-c) + abs(p.Col-c)
}

// evaluateLine scores the line through pos in direction (dr,dc), counting
// only forward from pos. pos must be the "start of line" for this
// direction: when the cell one step behind is the same color it returns a
// zero score, so every consecutive group is scored exactly once per
// direction (spec §4.4 "start of line" rule).
func evaluateLine(b *board.Board, pos board.Pos, dr, dc int, color board.Stone) (score int, open bool, four bool, three bool, two bool) {
	behind := pos.Add(-dr, -dc)
	if behind.Valid() && b.At(behind) == color {
		return 0, false, false, false, false
	}

	openEnds := 0
	if behind.Valid() && b.At(behind) == board.Empty {
		openEnds++
	}

	count := 1
	hasGap := false
	farthest := 0
	forwardOpen := false

	offset := 0
	for {
		offset++
		p := pos.Add(dr*offset, dc*offset)
		if !p.Valid() {
			break
		}
		s := b.At(p)
		if s == color {
			count++
			farthest = offset
			continue
		}
		if s == board.Empty {
			if !hasGap {
				next := pos.Add(dr*(offset+1), dc*(offset+1))
				if next.Valid() && b.At(next) == color {
					hasGap = true
					farthest = offset
					continue
				}
			}
			forwardOpen = true
			break
		}
		break // opponent stone blocks
	}
	if forwardOpen {
		openEnds++
	}
	span := farthest + 1

	if hasGap {
		switch {
		case count >= 5:
			return OpenFour, false, true, false, false
		case count == 4 && span == 5:
			return OpenFour, false, true, false, false
		case count == 4:
			return ClosedFour, false, true, false, false
		case count == 3 && openEnds == 2:
			return OpenThree, true, false, true, false
		case count == 3 && openEnds == 1:
			return ClosedThree, false, false, true, false
		default:
			return 0, false, false, false, false
		}
	}

	switch {
	case count >= 5:
		return Five, false, false, false, false
	case count == 4 && openEnds == 2:
		return OpenFour, false, true, false, false
	case count == 4 && openEnds == 1:
		return ClosedFour, false, true, false, false
	case count == 3 && openEnds == 2:
		return OpenThree, true, false, true, false
	case count == 3 && openEnds == 1:
		return ClosedThree, false, false, true, false
	case count == 2 && openEnds == 2:
		return OpenTwo, false, false, false, true
	case count == 2 && openEnds == 1:
		return ClosedTwo, false, false, false, true
	default:
		return 0, false, false, false, false
	}
}

// pairVulnerable reports whether the ally pair (p, p+d) can be captured by
// the opponent playing one more stone: one flank empty, the other already
// opponent-colored.
func pairVulnerable(b *board.Board, p board.Pos, dr, dc int, color board.Stone) bool {
	opp := color.Opponent()
	before := p.Add(-dr, -dc)
	after := p.Add(2*dr, 2*dc)
	if !before.Valid() || !after.Valid() {
		return false
	}
	a, c := b.At(before), b.At(after)
	return (a == board.Empty && c == opp) || (a == opp && c == board.Empty)
}

type colorEval struct {
	score                                  int
	vuln                                   int
	openFours, closedFours, openThrees, openTwos int
}

func evaluateColor(b *board.Board, color board.Stone) colorEval {
	var e colorEval

	b.Stones(color).Iterate(func(idx int) bool {
		pos := board.PosFromIndex(idx)

		for _, d := range board.Directions {
			score, isOpenThree, isFour, isThree, isTwo := evaluateLine(b, pos, d[0], d[1], color)
			e.score += score
			switch {
			case isFour && isOpenThreeForFour(score):
				e.openFours++
			case isFour:
				e.closedFours++
			case isThree && isOpenThree:
				e.openThrees++
			case isThree:
				// closed three contributes to score only
			case isTwo && score == OpenTwo:
				e.openTwos++
			}
		}

		// position bonus
		e.score += (MaxCenterDist - manhattan(pos)) * PositionWeight

		// connectivity bonus: 4 directions, both orientations
		for _, d := range board.Directions {
			for _, sign := range [2]int{1, -1} {
				n := pos.Add(d[0]*sign, d[1]*sign)
				if n.Valid() && b.At(n) == color {
					e.score += ConnectivityBonus
				}
			}
		}

		// vulnerability: forward-only direction to count each pair once
		for _, d := range board.Directions {
			ally := pos.Add(d[0], d[1])
			if ally.Valid() && b.At(ally) == color && pairVulnerable(b, pos, d[0], d[1], color) {
				e.vuln++
			}
		}

		return true
	})

	if (e.openFours >= 1 && (e.closedFours >= 1 || e.openThrees >= 1)) ||
		e.closedFours >= 2 ||
		(e.closedFours >= 1 && e.openThrees >= 1) ||
		e.openThrees >= 2 {
		e.score += OpenFour
	}

	switch {
	case e.openTwos >= 4:
		e.score += 8000
	case e.openTwos >= 3:
		e.score += 5000
	case e.openTwos >= 2:
		e.score += 3000
	}

	return e
}

func isOpenThreeForFour(score int) bool { return score == OpenFour }

// Evaluate returns a signed score from color's point of view. Hard
// contract: Evaluate(b, Black) == -Evaluate(b, White) for every board
// (negamax correctness, spec §4.4).
func Evaluate(b *board.Board, color board.Stone) int {
	opp := color.Opponent()

	if b.Captures(color) >= 5 {
		return Five
	}
	if b.Captures(opp) >= 5 {
		return -Five
	}

	capScore := CaptureScore(b.Captures(color), b.Captures(opp))

	my := evaluateColor(b, color)
	their := evaluateColor(b, opp)

	vulnPenalty := my.vuln*VulnWeight(b.Captures(opp)) - their.vuln*VulnWeight(b.Captures(color))

	return capScore + (my.score - their.score) - vulnPenalty
}
