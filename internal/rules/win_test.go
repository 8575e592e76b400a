package rules

import (
	"testing"

	"github.com/hailam/ninuki/internal/board"
)

func placeRow(b *board.Board, row int, cols []int, color board.Stone) {
	for _, c := range cols {
		b.Place(board.NewPos(row, c), color)
	}
}

func TestHasFiveAtAndFindFivePositionsAgree(t *testing.T) {
	b := board.New()
	placeRow(b, 9, []int{2, 3, 4, 5, 6}, board.Black)

	if !HasFiveAt(b, board.NewPos(9, 4), board.Black) {
		t.Fatalf("expected HasFiveAt true for stone inside the five")
	}
	five := FindFivePositions(b, board.Black)
	if five == nil {
		t.Fatalf("expected a five to be found")
	}
	found := false
	for _, p := range five {
		if p == board.NewPos(9, 4) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (9,4) to be part of the found five")
	}
}

func TestFiveAlongBottomRowAndDiagonalThroughCorner(t *testing.T) {
	b := board.New()
	placeRow(b, board.Size-1, []int{0, 1, 2, 3, 4}, board.White)
	if FindFivePositions(b, board.White) == nil {
		t.Fatalf("expected five along bottom row")
	}

	b2 := board.New()
	for i := 0; i < 5; i++ {
		b2.Place(board.NewPos(i, i), board.Black)
	}
	if FindFivePositions(b2, board.Black) == nil {
		t.Fatalf("expected five along main diagonal through corner")
	}

	b3 := board.New()
	for i := 0; i < 5; i++ {
		b3.Place(board.NewPos(i, board.Size-1-i), board.Black)
	}
	if FindFivePositions(b3, board.Black) == nil {
		t.Fatalf("expected five along anti-diagonal through corner")
	}
}

func TestUnbreakableHorizontalFiveCannotBeBrokenByHorizontalCapture(t *testing.T) {
	b := board.New()
	placeRow(b, 9, []int{2, 3, 4, 5, 6}, board.Black)
	five := FindFivePositions(b, board.Black)
	if CanBreakFiveByCapture(b, five, board.Black) {
		t.Fatalf("a continuous five flanked only by itself should not be breakable via this line")
	}
}

func TestBreakableFiveViaPerpendicularCapture(t *testing.T) {
	b := board.New()
	placeRow(b, 9, []int{2, 3, 4, 5, 6}, board.Black)
	// Build a vertical _-Black-Black-White shape through (9,4): White playing
	// the empty (8,4) closes the bracket and captures (9,4), which belongs to
	// the five, so the line is breakable.
	b.Place(board.NewPos(10, 4), board.Black)
	b.Place(board.NewPos(11, 4), board.White)

	five := FindFivePositions(b, board.Black)
	if !CanBreakFiveByCapture(b, five, board.Black) {
		t.Fatalf("expected the five to be breakable by a perpendicular capture")
	}
	if Winner(b) == board.Black {
		t.Fatalf("breakable five must not count as a win")
	}
}

func TestCaptureWinTakesPrecedenceOverFive(t *testing.T) {
	b := board.New()
	placeRow(b, 9, []int{2, 3, 4, 5, 6}, board.White)
	b.AddCaptures(board.Black, 5)
	if Winner(b) != board.Black {
		t.Fatalf("expected capture win to take precedence, got %v", Winner(b))
	}
}

func TestNoWinnerOnEmptyBoard(t *testing.T) {
	b := board.New()
	if Winner(b) != board.Empty {
		t.Fatalf("expected no winner on an empty board")
	}
}
