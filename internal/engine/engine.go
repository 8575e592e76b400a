// Package engine is the facade described by spec §4.8 and §6: it runs the
// priority pipeline (opening, immediate win, defense, forced-win threat
// search, alpha-beta) over the board/rules/eval/search packages and
// reports which stage produced the move.
package engine

import (
	"time"

	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/eval"
	"github.com/hailam/ninuki/internal/opening"
	"github.com/hailam/ninuki/internal/rules"
	"github.com/hailam/ninuki/internal/search"
)

// Kind identifies which pipeline stage produced a move (spec §6).
type Kind string

const (
	KindOpening      Kind = "opening"
	KindImmediateWin Kind = "immediate_win"
	KindDefense      Kind = "defense"
	KindVCF          Kind = "vcf"
	KindVCT          Kind = "vct"
	KindAlphaBeta    Kind = "alphabeta"
	KindNone         Kind = "none"
)

// Result is the return value of GetBestMove (spec §6).
type Result struct {
	Move      board.Pos
	HasMove   bool
	Score     int32
	Kind      Kind
	ElapsedMs int64
	Nodes     uint64
}

// Config holds the engine's tunable budget (spec §6 configure()).
type Config struct {
	TTSizeBytes  int
	MaxDepth     int
	TimeBudgetMs int
}

// DefaultConfig matches the original engine's recommended defaults
// (original_source/src/engine.rs set_max_depth doc: "Recommended range:
// 8-14"; the facade's own fast-path depth is capped at 4, see
// fastPathDepth).
var DefaultConfig = Config{
	TTSizeBytes:  64 << 20,
	MaxDepth:     10,
	TimeBudgetMs: 5000,
}

// reducedDefenseDepth is the depth used when falling back to alpha-beta to
// find a defense against an opponent VCF, instead of the full configured
// depth (original_source/src/engine.rs::find_best_defense: "6.min(max_depth)").
const reducedDefenseDepth = 6

// fastPathDepth is the alpha-beta depth used once every forced-tactics
// stage has been checked and nothing forced a reply
// (original_source/src/engine.rs: "4.min(self.max_depth)").
const fastPathDepth = 4

// Engine owns the transposition table and move-ordering state across
// searches of one game (spec §5: "TT: owned by the search thread; may be
// retained across searches of the same game").
type Engine struct {
	cfg      Config
	tt       *search.Table
	searcher *search.Searcher
}

// New builds an Engine with cfg. Pass engine.DefaultConfig for the
// original engine's defaults.
func New(cfg Config) *Engine {
	tt := search.NewTable(cfg.TTSizeBytes)
	return &Engine{
		cfg:      cfg,
		tt:       tt,
		searcher: search.NewSearcher(tt),
	}
}

// Configure rebuilds the table to the new size and updates depth/time
// budget (spec §6 configure()).
func (e *Engine) Configure(ttSizeBytes, maxDepth, timeBudgetMs int) {
	e.cfg = Config{TTSizeBytes: ttSizeBytes, MaxDepth: maxDepth, TimeBudgetMs: timeBudgetMs}
	e.tt = search.NewTable(ttSizeBytes)
	e.searcher = search.NewSearcher(e.tt)
}

// ClearTT wipes the transposition table (spec §6 clear_tt(), required
// between games per spec §5).
func (e *Engine) ClearTT() {
	e.tt.Clear()
}

// MaxDepth reports the currently configured alpha-beta depth
// (original_source/src/engine.rs::max_depth()).
func (e *Engine) MaxDepth() int { return e.cfg.MaxDepth }

// TimeBudgetMs reports the currently configured time budget hint
// (original_source/src/engine.rs::set_time_limit's counterpart accessor).
func (e *Engine) TimeBudgetMs() int { return e.cfg.TimeBudgetMs }

// SetMaxDepth updates the alpha-beta depth without touching the table
// (original_source/src/engine.rs::set_max_depth).
func (e *Engine) SetMaxDepth(depth int) { e.cfg.MaxDepth = depth }

// SetTimeBudgetMs updates the time budget hint
// (original_source/src/engine.rs::set_time_limit).
func (e *Engine) SetTimeBudgetMs(ms int) { e.cfg.TimeBudgetMs = ms }

// TTStats reports table occupancy (spec §6 tt_stats()).
func (e *Engine) TTStats() search.Stats {
	return e.tt.Stats()
}

// GetBestMove runs the priority pipeline from spec §4.8 and returns the
// chosen move along with which stage produced it.
func (e *Engine) GetBestMove(b *board.Board, color board.Stone) Result {
	start := time.Now()
	opponent := color.Opponent()

	if mv, ok := opening.Lookup(b, color); ok {
		return Result{Move: mv, HasMove: true, Kind: KindOpening, ElapsedMs: elapsedMs(start)}
	}

	if mv, ok := findImmediateWin(b, color); ok {
		return Result{Move: mv, HasMove: true, Score: int32(eval.Five), Kind: KindImmediateWin, ElapsedMs: elapsedMs(start)}
	}

	if mv, ok := findImmediateWin(b, opponent); ok && rules.IsValidMove(b, mv, color) {
		return Result{Move: mv, HasMove: true, Score: -int32(eval.Five), Kind: KindDefense, ElapsedMs: elapsedMs(start)}
	}

	if mv, ok := blockFourThreat(b, opponent, color); ok {
		return Result{Move: mv, HasMove: true, Score: -50_000, Kind: KindDefense, ElapsedMs: elapsedMs(start)}
	}

	vcf := search.VCF(b, color, search.DefaultVCFDepth)
	if vcf.Found && len(vcf.Sequence) > 0 {
		return Result{Move: vcf.Sequence[0], HasMove: true, Score: int32(eval.Five), Kind: KindVCF, ElapsedMs: elapsedMs(start), Nodes: vcf.Nodes}
	}

	oppVCF := search.VCF(b, opponent, search.DefaultVCFDepth)
	if oppVCF.Found && len(oppVCF.Sequence) > 0 {
		if mv, ok := e.findBestDefense(b, color, oppVCF); ok {
			return Result{Move: mv, HasMove: true, Score: -100_000, Kind: KindDefense, ElapsedMs: elapsedMs(start), Nodes: oppVCF.Nodes + e.searcher.Nodes()}
		}
	}

	if b.StoneCount() >= 8 {
		vct := search.VCT(b, color, search.DefaultVCTDepth)
		if vct.Found && len(vct.Sequence) > 0 {
			return Result{Move: vct.Sequence[0], HasMove: true, Score: int32(eval.Five), Kind: KindVCT, ElapsedMs: elapsedMs(start), Nodes: vct.Nodes}
		}
	}

	depth := fastPathDepth
	if e.cfg.MaxDepth > 0 && e.cfg.MaxDepth < depth {
		depth = e.cfg.MaxDepth
	}
	res := e.searcher.Search(b, color, depth)
	if !res.HasBest {
		return Result{Kind: KindNone, ElapsedMs: elapsedMs(start)}
	}
	return Result{
		Move: res.Best, HasMove: true, Score: res.Score,
		Kind: KindAlphaBeta, ElapsedMs: elapsedMs(start), Nodes: res.Nodes,
	}
}

// findBestDefense mirrors original_source's find_best_defense: block the
// threat's own first move if legal, otherwise fall back to a
// reduced-depth alpha-beta search.
func (e *Engine) findBestDefense(b *board.Board, color board.Stone, threat search.ThreatResult) (board.Pos, bool) {
	first := threat.Sequence[0]
	if rules.IsValidMove(b, first, color) {
		return first, true
	}
	depth := reducedDefenseDepth
	if e.cfg.MaxDepth > 0 && e.cfg.MaxDepth < depth {
		depth = e.cfg.MaxDepth
	}
	res := e.searcher.Search(b, color, depth)
	return res.Best, res.HasBest
}

// findImmediateWin trials every legal cell and reports the first one that
// makes an unbreakable five or a fifth captured pair (spec §4.8 step 2,
// grounded on original_source's find_immediate_win "clone, place, execute
// captures, check_winner" pattern).
func findImmediateWin(b *board.Board, color board.Stone) (board.Pos, bool) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			pos := board.NewPos(r, c)
			if !rules.IsValidMove(b, pos, color) {
				continue
			}
			trial := b.Clone()
			captured := rules.CapturedPositions(trial, pos, color)
			trial.Place(pos, color)
			rules.ExecuteCaptures(trial, captured, color)
			if rules.Winner(trial) == color {
				return pos, true
			}
		}
	}
	return board.Pos{}, false
}

// blockFourThreat looks for an existing opponent four with an open
// extension and returns the first legal blocking cell for color
// (spec §4.8 step 4).
func blockFourThreat(b *board.Board, opponent, color board.Stone) (board.Pos, bool) {
	for _, end := range rules.FindFourThreats(b, opponent) {
		if rules.IsValidMove(b, end, color) {
			return end, true
		}
	}
	return board.Pos{}, false
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
