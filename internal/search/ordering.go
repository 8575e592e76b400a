package search

import (
	"sort"

	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/rules"
)

// Move ordering priorities (spec §4.6 "Move ordering (design floor)").
const (
	ttMoveScore    = 100_000_000
	immediateWin   = 90_000_000
	blocksOppFive  = 80_000_000
	captureBase    = 1_000_000
	killerScore1   = 900_000
	killerScore2   = 800_000
)

// Orderer tracks killer moves and history scores across one search,
// mirroring the teacher's MoveOrderer shape (killers-then-history) with
// piece-specific tables dropped since Gomoku stones carry no piece
// identity.
type Orderer struct {
	killers [maxPly][2]board.Pos
	history [board.TotalCells]int
}

const maxPly = 64

// NewOrderer returns an empty Orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Clear resets killers and ages history for a new search.
func (o *Orderer) Clear() {
	for i := range o.killers {
		o.killers[i][0] = board.Pos{Row: -1, Col: -1}
		o.killers[i][1] = board.Pos{Row: -1, Col: -1}
	}
	for i := range o.history {
		o.history[i] /= 2
	}
}

// RecordCutoff records a quiet move that caused a beta cutoff at ply, for
// killer-move and history-heuristic ordering in later branches.
func (o *Orderer) RecordCutoff(ply int, move board.Pos, depth int) {
	if ply < maxPly {
		if o.killers[ply][0] != move {
			o.killers[ply][1] = o.killers[ply][0]
			o.killers[ply][0] = move
		}
	}
	o.history[move.Index()] += depth * depth
}

func creates5OrCaptureWin(b *board.Board, pos board.Pos, color board.Stone) bool {
	captured := rules.CapturedPositions(b, pos, color)
	b.Place(pos, color)
	rules.ExecuteCaptures(b, captured, color)
	win := b.Captures(color) >= 5 || rules.HasFiveAt(b, pos, color)
	rules.UndoCaptures(b, captured, color)
	b.Remove(pos)
	return win
}

// Score assigns an ordering score to one candidate move.
func (o *Orderer) Score(b *board.Board, pos board.Pos, color board.Stone, ply int, ttMove board.Pos, hasTTMove bool) int {
	if hasTTMove && pos == ttMove {
		return ttMoveScore
	}
	if creates5OrCaptureWin(b, pos, color) {
		return immediateWin
	}
	if creates5OrCaptureWin(b, pos, color.Opponent()) {
		return blocksOppFive
	}
	if rules.HasCapture(b, pos, color) {
		return captureBase + rules.CountCaptures(b, pos, color)*1000
	}
	if ply < maxPly {
		if o.killers[ply][0] == pos {
			return killerScore1
		}
		if o.killers[ply][1] == pos {
			return killerScore2
		}
	}
	return o.history[pos.Index()] + staticPriority(pos)
}

// staticPriority is a cheap proximity-to-center tiebreak for moves with no
// other signal (spec §4.6(v) "remaining by a static priority").
func staticPriority(pos board.Pos) int {
	const c = board.Size / 2
	dr := int(pos.Row) - c
	dc := int(pos.Col) - c
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return 100 - (dr + dc)
}

// Order sorts moves in place, highest score first.
func (o *Orderer) Order(b *board.Board, moves []board.Pos, color board.Stone, ply int, ttMove board.Pos, hasTTMove bool) {
	type scored struct {
		move  board.Pos
		score int
	}
	list := make([]scored, len(moves))
	for i, m := range moves {
		list[i] = scored{move: m, score: o.Score(b, m, color, ply, ttMove, hasTTMove)}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	for i, s := range list {
		moves[i] = s.move
	}
}
