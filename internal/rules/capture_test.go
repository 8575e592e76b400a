package rules

import (
	"testing"

	"github.com/hailam/ninuki/internal/board"
)

func TestCaptureHorizontal(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 10), board.White)
	b.Place(board.NewPos(9, 11), board.White)
	b.Place(board.NewPos(9, 12), board.Black)
	pos := board.NewPos(9, 9)
	b.Place(pos, board.Black)

	captured := CapturedPositions(b, pos, board.Black)
	if len(captured) != 2 {
		t.Fatalf("expected 2 captured stones, got %d: %v", len(captured), captured)
	}
	ExecuteCaptures(b, captured, board.Black)
	if !b.IsEmpty(board.NewPos(9, 10)) || !b.IsEmpty(board.NewPos(9, 11)) {
		t.Fatalf("expected captured cells cleared")
	}
	if b.Captures(board.Black) != 1 {
		t.Fatalf("expected 1 pair captured, got %d", b.Captures(board.Black))
	}
}

func TestCaptureSingleStoneDoesNotTrigger(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 10), board.White)
	b.Place(board.NewPos(9, 11), board.Black) // only one opponent stone
	pos := board.NewPos(9, 9)
	b.Place(pos, board.Black)

	if HasCapture(b, pos, board.Black) {
		t.Fatalf("expected no capture with only a single bracketed stone")
	}
}

func TestCaptureThreeStonesDoesNotTrigger(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 10), board.White)
	b.Place(board.NewPos(9, 11), board.White)
	b.Place(board.NewPos(9, 12), board.White)
	b.Place(board.NewPos(9, 13), board.Black)
	pos := board.NewPos(9, 9)
	b.Place(pos, board.Black)

	if HasCapture(b, pos, board.Black) {
		t.Fatalf("expected no capture against three stones (must be exactly two)")
	}
}

func TestCaptureCrossPatternAllFourDirections(t *testing.T) {
	b := board.New()
	center := board.NewPos(9, 9)
	for _, d := range board.Directions {
		for _, sign := range [2]int{1, -1} {
			dr, dc := d[0]*sign, d[1]*sign
			b.Place(center.Add(dr, dc), board.White)
			b.Place(center.Add(2*dr, 2*dc), board.White)
			b.Place(center.Add(3*dr, 3*dc), board.Black)
		}
	}
	captured := CapturedPositions(b, center, board.Black)
	// center itself is placed directly on the board below; we only check
	// capture computation: should find 8 directions'
	// worth of bracketed pairs (4 directions x 2 orientations).
	b.Place(center, board.Black)
	captured = CapturedPositions(b, center, board.Black)
	if len(captured) != 16 {
		t.Fatalf("expected 16 captured stones (8 pairs), got %d", len(captured))
	}
}

func TestCaptureAtBoardEdgeNoOutOfRangeAccess(t *testing.T) {
	b := board.New()
	pos := board.NewPos(0, 0)
	// From a corner, the rays pointing off the board have no 3rd cell
	// on-board and must be skipped without panicking; with no other stones
	// on the board there is no capture.
	b.Place(pos, board.Black)
	if HasCapture(b, pos, board.Black) {
		t.Fatalf("expected no capture at a bare corner")
	}
}

func TestUndoCapturesRestoresBoardExactly(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 10), board.White)
	b.Place(board.NewPos(9, 11), board.White)
	b.Place(board.NewPos(9, 12), board.Black)
	pos := board.NewPos(9, 9)
	b.Place(pos, board.Black)

	captured := CapturedPositions(b, pos, board.Black)
	ExecuteCaptures(b, captured, board.Black)
	UndoCaptures(b, captured, board.Black)

	if b.At(board.NewPos(9, 10)) != board.White || b.At(board.NewPos(9, 11)) != board.White {
		t.Fatalf("expected captured stones restored")
	}
	if b.Captures(board.Black) != 0 {
		t.Fatalf("expected capture count restored to 0, got %d", b.Captures(board.Black))
	}
}

func TestWhiteCapturesBlackSymmetric(t *testing.T) {
	b := board.New()
	b.Place(board.NewPos(9, 10), board.Black)
	b.Place(board.NewPos(9, 11), board.Black)
	b.Place(board.NewPos(9, 12), board.White)
	pos := board.NewPos(9, 9)
	b.Place(pos, board.White)

	captured := CapturedPositions(b, pos, board.White)
	if len(captured) != 2 {
		t.Fatalf("expected white to capture black pair, got %d", len(captured))
	}
}
