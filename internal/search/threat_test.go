package search

import (
	"testing"

	"github.com/hailam/ninuki/internal/board"
)

func TestVCFFindsOpenFourForcedWin(t *testing.T) {
	b := board.New()
	// Black already has an open three on row 9; playing (9,5) makes an
	// open four that cannot be blocked at both ends in one move.
	b.Place(board.NewPos(9, 2), board.Black)
	b.Place(board.NewPos(9, 3), board.Black)
	b.Place(board.NewPos(9, 4), board.Black)

	res := VCF(b, board.Black, DefaultVCFDepth)
	if !res.Found {
		t.Fatalf("expected VCF to find a forced win")
	}
	if len(res.Sequence) == 0 || res.Sequence[0] != board.NewPos(9, 5) && res.Sequence[0] != board.NewPos(9, 1) {
		t.Fatalf("expected the open-four completion as the first move, got %v", res.Sequence)
	}
}

func TestVCFNoWinOnEmptyBoard(t *testing.T) {
	b := board.New()
	res := VCF(b, board.Black, 4)
	if res.Found {
		t.Fatalf("expected no forced win on an empty board")
	}
}

func TestVCFBoardUnchangedAfterSearch(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 2), board.Black)
	b.Place(board.NewPos(9, 3), board.Black)
	b.Place(board.NewPos(9, 4), board.Black)
	before := b.Clone()

	VCF(b, board.Black, DefaultVCFDepth)

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := board.NewPos(r, c)
			if b.At(p) != before.At(p) {
				t.Fatalf("VCF mutated the board at %v", p)
			}
		}
	}
}

func TestVCFRejectsBreakableFive(t *testing.T) {
	b := board.New()
	// Black's only five-maker is (9,5), since White holds (9,0). The five
	// (9,1)-(9,5) is breakable: White playing (8,3) captures the vertical
	// pair (9,3)/(10,3) against White's (11,3). Black has no other four, so
	// VCF must not report a win.
	b.Place(board.NewPos(9, 1), board.Black)
	b.Place(board.NewPos(9, 2), board.Black)
	b.Place(board.NewPos(9, 3), board.Black)
	b.Place(board.NewPos(9, 4), board.Black)
	b.Place(board.NewPos(9, 0), board.White)
	b.Place(board.NewPos(10, 3), board.Black)
	b.Place(board.NewPos(11, 3), board.White)

	res := VCF(b, board.Black, 2)
	if res.Found {
		t.Fatalf("expected a breakable five not to count as a VCF win, got %v", res.Sequence)
	}
}

func TestVCTFindsSplitFourCompletion(t *testing.T) {
	b := board.New()
	// A split four on row 9 (two stones, a gap at (9,5), two stones):
	// filling the gap makes an unbreakable five, which VCT tries first
	// among its five-makers.
	b.Place(board.NewPos(9, 3), board.Black)
	b.Place(board.NewPos(9, 4), board.Black)
	b.Place(board.NewPos(9, 6), board.Black)
	b.Place(board.NewPos(9, 7), board.Black)

	res := VCT(b, board.Black, DefaultVCTDepth)
	if !res.Found || res.Sequence[0] != board.NewPos(9, 5) {
		t.Fatalf("expected VCT to win by filling (9,5), got found=%v seq=%v", res.Found, res.Sequence)
	}
	if res.Found && len(res.Sequence) == 0 {
		t.Fatalf("found=true must carry a non-empty sequence")
	}
}

func TestVCTBoardUnchangedAfterSearch(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 3), board.Black)
	b.Place(board.NewPos(9, 4), board.Black)
	b.Place(board.NewPos(9, 6), board.Black)
	b.Place(board.NewPos(9, 7), board.Black)
	before := b.Clone()

	VCT(b, board.Black, DefaultVCTDepth)

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := board.NewPos(r, c)
			if b.At(p) != before.At(p) {
				t.Fatalf("VCT mutated the board at %v", p)
			}
		}
	}
}

func TestClassifyMoveDetectsFour(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 1), board.Black)
	b.Place(board.NewPos(9, 2), board.Black)
	b.Place(board.NewPos(9, 3), board.Black)

	mc := classifyMove(b, board.NewPos(9, 4), board.Black)
	if len(mc.fourLines) != 1 {
		t.Fatalf("expected exactly one four-line, got %d", len(mc.fourLines))
	}
	if mc.isFive {
		t.Fatalf("four stones in a row is not a five")
	}
}

func TestClassifyMoveDetectsOpenThree(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 4), board.Black)
	b.Place(board.NewPos(9, 5), board.Black)

	mc := classifyMove(b, board.NewPos(9, 6), board.Black)
	if len(mc.threeLines) != 1 {
		t.Fatalf("expected exactly one open-three line, got %d", len(mc.threeLines))
	}
	if len(mc.threeLines[0].ends) != 2 {
		t.Fatalf("expected both ends open for an open three")
	}
}

func TestCapturesEnableDefenderFiveTrap(t *testing.T) {
	b := board.New()
	// White has a split four (5,5),(5,6),_,(5,8),(5,9). The captured list
	// names cells that still hold White stones, so neither can be replayed
	// and the empty gap (5,7) is not among them.
	b.Place(board.NewPos(5, 5), board.White)
	b.Place(board.NewPos(5, 6), board.White)
	b.Place(board.NewPos(5, 8), board.White)
	b.Place(board.NewPos(5, 9), board.White)

	captured := []board.Pos{board.NewPos(5, 5), board.NewPos(5, 6)}
	if capturesEnableDefenderFive(b, captured, board.White) {
		t.Fatalf("replaying a single captured cell cannot complete a five here")
	}
}
