package search

import (
	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/eval"
	"github.com/hailam/ninuki/internal/rules"
)

// Inf is larger than any real score, used as the initial alpha-beta window.
const Inf = eval.Five + 1000

// Result is the outcome of one Searcher.Search call.
type Result struct {
	Best    board.Pos
	HasBest bool
	Score   int32
	Depth   int
	Nodes   uint64
}

// Searcher runs iterative-deepening negamax with alpha-beta pruning over a
// shared transposition table (spec §4.6).
type Searcher struct {
	TT      *Table
	Orderer *Orderer
	nodes   uint64
}

// NewSearcher builds a Searcher over an existing table so the table can be
// retained across searches of the same game (spec §5).
func NewSearcher(tt *Table) *Searcher {
	return &Searcher{TT: tt, Orderer: NewOrderer()}
}

// Nodes reports the node count from the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search performs iterative deepening from depth 1 to maxDepth, stopping
// early once a decisive score (a forced win or a forced loss) is found
// (spec §4.6).
func (s *Searcher) Search(b *board.Board, color board.Stone, maxDepth int) Result {
	s.nodes = 0
	s.TT.NewSearch()
	s.Orderer.Clear()

	hash := board.HashFull(b, color)

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		score, move, hasMove := s.negamax(b, hash, color, depth, -int32(Inf), int32(Inf), 0)
		if hasMove {
			best = Result{Best: move, HasBest: true, Score: score, Depth: depth, Nodes: s.nodes}
		}
		if score >= eval.Five-100 || score <= -(eval.Five - 100) {
			break
		}
	}
	return best
}

// negamax returns (score, bestMove, hasMove) from color's point of view at
// this node.
func (s *Searcher) negamax(b *board.Board, hash uint64, color board.Stone, depth int, alpha, beta int32, ply int) (int32, board.Pos, bool) {
	s.nodes++

	if winner := rules.Winner(b); winner != board.Empty {
		if winner == color {
			return eval.Five - int32(ply), board.Pos{}, false
		}
		return -(eval.Five - int32(ply)), board.Pos{}, false
	}
	if depth <= 0 {
		return int32(eval.Evaluate(b, color)), board.Pos{}, false
	}

	var ttMove board.Pos
	hasTTMove := false
	if entry, found := s.TT.Probe(hash, depth); found || entry.Depth > 0 {
		if entry.HasMove {
			ttMove = entry.BestMove
			hasTTMove = true
		}
		if found && Usable(entry, alpha, beta) {
			return entry.Score, entry.BestMove, entry.HasMove
		}
	}

	moves := CandidateMoves(b, color)
	if len(moves) == 0 {
		return int32(eval.Evaluate(b, color)), board.Pos{}, false
	}
	s.Orderer.Order(b, moves, color, ply, ttMove, hasTTMove)

	var bestMove board.Pos
	hasMove := false
	bestScore := -int32(Inf)
	flag := UpperBound

	for _, m := range moves {
		childHash, rec := Make(b, hash, m, color)
		childScore, _, _ := s.negamax(b, childHash, color.Opponent(), depth-1, -beta, -alpha, ply+1)
		childScore = -childScore
		hash = Unmake(b, childHash, rec)

		if childScore > bestScore {
			bestScore = childScore
			bestMove = m
			hasMove = true
		}
		if bestScore > alpha {
			alpha = bestScore
			flag = Exact
		}
		if alpha >= beta {
			flag = LowerBound
			s.Orderer.RecordCutoff(ply, m, depth)
			break
		}
	}

	s.TT.Store(hash, depth, bestScore, flag, bestMove, hasMove)
	return bestScore, bestMove, hasMove
}
