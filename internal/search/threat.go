package search

import (
	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/rules"
)

// DefaultVCFDepth and DefaultVCTDepth are the attacker-ply bounds used when
// the caller doesn't override them. Source-specific tuning values (spec §9
// Open Questions): large enough to find practical forced wins, not a
// theoretical limit.
const (
	DefaultVCFDepth = 30
	DefaultVCTDepth = 20
)

// ThreatResult is the outcome of a VCF or VCT search: the attacker's move
// sequence (first move is the recommended move) and whether it forces a win.
type ThreatResult struct {
	Found    bool
	Sequence []board.Pos
	Nodes    uint64
}

// lineInfo describes one line direction through a freshly placed stone.
type lineInfo struct {
	ends   []board.Pos // empty cells extending the line
	stones []board.Pos // every same-color stone in the line, including the placed one
}

func (li lineInfo) count() int { return len(li.stones) }

func scanLineThrough(b *board.Board, pos board.Pos, color board.Stone, d [2]int) lineInfo {
	stones := []board.Pos{pos}

	cur := pos.Add(-d[0], -d[1])
	for cur.Valid() && b.At(cur) == color {
		stones = append([]board.Pos{cur}, stones...)
		cur = cur.Add(-d[0], -d[1])
	}
	negEnd := cur

	cur2 := pos.Add(d[0], d[1])
	for cur2.Valid() && b.At(cur2) == color {
		stones = append(stones, cur2)
		cur2 = cur2.Add(d[0], d[1])
	}
	posEnd := cur2

	var ends []board.Pos
	if negEnd.Valid() && b.At(negEnd) == board.Empty {
		ends = append(ends, negEnd)
	}
	if posEnd.Valid() && b.At(posEnd) == board.Empty {
		ends = append(ends, posEnd)
	}
	return lineInfo{ends: ends, stones: stones}
}

// moveClass is the move-class breakdown of a hypothetical placement, per
// spec §4.7 "Move classes".
type moveClass struct {
	isFive     bool
	fourLines  []lineInfo
	threeLines []lineInfo
}

func classifyMove(b *board.Board, pos board.Pos, color board.Stone) moveClass {
	b.Place(pos, color)
	defer b.Remove(pos)

	var mc moveClass
	for _, d := range board.Directions {
		li := scanLineThrough(b, pos, color, d)
		switch {
		case li.count() >= 5:
			mc.isFive = true
		case li.count() == 4 && len(li.ends) >= 1:
			mc.fourLines = append(mc.fourLines, li)
		case li.count() == 3 && len(li.ends) == 2:
			mc.threeLines = append(mc.threeLines, li)
		}
	}
	return mc
}

// capturesEnableDefenderFive is the "capture-enables-defender-five trap"
// check (spec §9): after a capturing attacker move, would replaying any
// freshly emptied cell let the defender complete an immediate five?
func capturesEnableDefenderFive(b *board.Board, captured []board.Pos, defender board.Stone) bool {
	for _, c := range captured {
		if !b.IsEmpty(c) {
			continue
		}
		b.Place(c, defender)
		win := rules.HasFiveAt(b, c, defender)
		b.Remove(c)
		if win {
			return true
		}
	}
	return false
}

func lineStoneAndEndSets(lines ...[]lineInfo) (ends, stones map[board.Pos]bool) {
	ends = map[board.Pos]bool{}
	stones = map[board.Pos]bool{}
	for _, group := range lines {
		for _, li := range group {
			for _, e := range li.ends {
				ends[e] = true
			}
			for _, s := range li.stones {
				stones[s] = true
			}
		}
	}
	return
}

// vcfDefenses computes the defender's forced responses to an attacker four
// (spec §4.7.1 step 6): direct blocks at the four's open ends, any capture
// that removes a stone of the four-line, and — if the defender already has
// 3+ captured pairs — any capturing move at all (they may race to a
// capture win instead of blocking).
func vcfDefenses(b *board.Board, fourLines []lineInfo, attacker board.Stone) []board.Pos {
	defender := attacker.Opponent()
	defSet, lineStones := lineStoneAndEndSets(fourLines)

	highCaptures := b.Captures(defender) >= 3
	for _, c := range CandidateMoves(b, defender) {
		if defSet[c] {
			continue
		}
		captured := rules.CapturedPositions(b, c, defender)
		if len(captured) == 0 {
			continue
		}
		if highCaptures {
			defSet[c] = true
			continue
		}
		for _, cap := range captured {
			if lineStones[cap] {
				defSet[c] = true
				break
			}
		}
	}

	out := make([]board.Pos, 0, len(defSet))
	for p := range defSet {
		out = append(out, p)
	}
	return out
}

// vctDefenses is the broader defense set for VCT (spec §4.7.2): blocks at
// the extension of any line of >=3 attacker stones through the threat move,
// plus any capture removing a stone of such a line. No capture-count
// override — VCT's defender cannot escape into a capture-race exemption.
func vctDefenses(b *board.Board, fourLines, threeLines []lineInfo, attacker board.Stone) []board.Pos {
	defender := attacker.Opponent()
	defSet, lineStones := lineStoneAndEndSets(fourLines, threeLines)

	for _, c := range CandidateMoves(b, defender) {
		if defSet[c] {
			continue
		}
		captured := rules.CapturedPositions(b, c, defender)
		for _, cap := range captured {
			if lineStones[cap] {
				defSet[c] = true
				break
			}
		}
	}

	out := make([]board.Pos, 0, len(defSet))
	for p := range defSet {
		out = append(out, p)
	}
	return out
}

// checkImmediateSuccess applies the shared win/breakable-five/trap logic
// used by both VCF and VCT after making a threat move. Caller still owns
// unmaking rec.
func checkImmediateSuccess(b *board.Board, color board.Stone, captured []board.Pos) (win, rejected bool) {
	five := rules.FindFivePositions(b, color)
	breakable := five != nil && rules.CanBreakFiveByCapture(b, five, color)
	if five != nil && !breakable {
		return true, false
	}
	if b.Captures(color) >= 5 {
		return true, false
	}
	if breakable || capturesEnableDefenderFive(b, captured, color.Opponent()) {
		return false, true
	}
	return false, false
}

// VCF runs a Victory-by-Continuous-Fours search: only five-makers and
// fours are considered as attacker moves, and a candidate move only
// succeeds if every one of the defender's possible responses still leads
// to an attacker win (an open four's two extension cells are each
// individually a "defense", but blocking either one still lets the
// attacker complete a five at the other).
func VCF(b *board.Board, color board.Stone, maxDepth int) ThreatResult {
	var nodes uint64
	found, seq := vcf(b, color, maxDepth, 0, &nodes)
	return ThreatResult{Found: found, Sequence: seq, Nodes: nodes}
}

func vcf(b *board.Board, color board.Stone, maxDepth, ply int, nodes *uint64) (bool, []board.Pos) {
	*nodes++
	if ply >= maxDepth {
		return false, nil
	}

	type scored struct {
		pos board.Pos
		mc  moveClass
	}
	var fives, fours []scored
	for _, pos := range CandidateMoves(b, color) {
		mc := classifyMove(b, pos, color)
		switch {
		case mc.isFive:
			fives = append(fives, scored{pos, mc})
		case len(mc.fourLines) > 0:
			fours = append(fours, scored{pos, mc})
		}
	}
	ordered := append(fives, fours...)

	hash := board.HashFull(b, color)
	for _, sc := range ordered {
		m := sc.pos
		captured := rules.CapturedPositions(b, m, color)
		newHash, rec := Make(b, hash, m, color)

		win, rejected := checkImmediateSuccess(b, color, captured)
		if win {
			Unmake(b, newHash, rec)
			return true, []board.Pos{m}
		}
		if rejected {
			Unmake(b, newHash, rec)
			continue
		}

		defenses := vcfDefenses(b, sc.mc.fourLines, color)
		if len(defenses) == 0 {
			Unmake(b, newHash, rec)
			return true, []board.Pos{m}
		}

		// Every defense must still lead to an attacker win (an open four's
		// two ends are both "defenses" individually, but blocking either
		// one still leaves the other open for the next five).
		allBeaten := true
		var continuation []board.Pos
		for _, def := range defenses {
			defHash, defRec := Make(b, newHash, def, color.Opponent())
			ok, rest := vcf(b, color, maxDepth, ply+1, nodes)
			Unmake(b, defHash, defRec)
			if !ok {
				allBeaten = false
				break
			}
			if continuation == nil {
				continuation = rest
			}
		}
		Unmake(b, newHash, rec)
		if allBeaten {
			return true, append([]board.Pos{m}, continuation...)
		}
	}
	return false, nil
}

// VCT runs a Victory-by-Continuous-Threats search: five-makers, fours, and
// open-threes are all threats; a threat move must beat every defense (a
// universal quantifier, not existential), but first tries the strictly
// cheaper VCF-from-here shortcut.
func VCT(b *board.Board, color board.Stone, maxDepth int) ThreatResult {
	var nodes uint64
	found, seq := vct(b, color, maxDepth, 0, &nodes)
	return ThreatResult{Found: found, Sequence: seq, Nodes: nodes}
}

func vct(b *board.Board, color board.Stone, maxDepth, ply int, nodes *uint64) (bool, []board.Pos) {
	*nodes++
	if ply >= maxDepth {
		return false, nil
	}

	type scored struct {
		pos board.Pos
		mc  moveClass
	}
	var fives, fours, threes []scored
	for _, pos := range CandidateMoves(b, color) {
		mc := classifyMove(b, pos, color)
		switch {
		case mc.isFive:
			fives = append(fives, scored{pos, mc})
		case len(mc.fourLines) > 0:
			fours = append(fours, scored{pos, mc})
		case len(mc.threeLines) > 0:
			threes = append(threes, scored{pos, mc})
		}
	}
	ordered := append(append(fives, fours...), threes...)

	hash := board.HashFull(b, color)
	for _, sc := range ordered {
		m := sc.pos
		captured := rules.CapturedPositions(b, m, color)
		newHash, rec := Make(b, hash, m, color)

		win, rejected := checkImmediateSuccess(b, color, captured)
		if win {
			Unmake(b, newHash, rec)
			return true, []board.Pos{m}
		}
		if rejected {
			Unmake(b, newHash, rec)
			continue
		}

		if ok, seq := vcf(b, color, DefaultVCFDepth, 0, nodes); ok {
			Unmake(b, newHash, rec)
			return true, append([]board.Pos{m}, seq...)
		}

		defenses := vctDefenses(b, sc.mc.fourLines, sc.mc.threeLines, color)
		if len(defenses) == 0 {
			Unmake(b, newHash, rec)
			return true, []board.Pos{m}
		}

		allBeaten := true
		var continuation []board.Pos
		for _, def := range defenses {
			defHash, defRec := Make(b, newHash, def, color.Opponent())
			ok, seq := vct(b, color, maxDepth, ply+1, nodes)
			Unmake(b, defHash, defRec)
			if !ok {
				allBeaten = false
				break
			}
			if continuation == nil {
				continuation = seq
			}
		}
		Unmake(b, newHash, rec)
		if allBeaten {
			return true, append([]board.Pos{m}, continuation...)
		}
	}
	return false, nil
}
