package board

import "testing"

func TestHashFullEmptyBoardIncludesCaptureBase(t *testing.T) {
	b := New()
	h1 := HashFull(b, Black)
	h2 := HashFull(b, Black)
	if h1 != h2 {
		t.Fatalf("hash of empty board should be deterministic")
	}
	if got, want := HashFull(b, White), zobristCaptures[0][0]^zobristCaptures[1][0]; got != want {
		t.Fatalf("empty-board hash should be the two zero-capture keys, got %x want %x", got, want)
	}
}

func TestUpdatePlaceOrRemoveSelfInverse(t *testing.T) {
	h := uint64(0xDEADBEEF)
	pos := NewPos(3, 4)
	h2 := UpdatePlaceOrRemove(h, pos, Black)
	h3 := UpdatePlaceOrRemove(h2, pos, Black)
	if h3 != h {
		t.Fatalf("expected self-inverse update, got %x want %x", h3, h)
	}
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	b := New()
	h := HashFull(b, Black)

	moves := []struct {
		pos   Pos
		color Stone
	}{
		{NewPos(9, 9), Black},
		{NewPos(9, 10), White},
		{NewPos(8, 9), Black},
	}

	side := Black
	for _, m := range moves {
		b.Place(m.pos, m.color)
		h = UpdatePlaceOrRemove(h, m.pos, m.color)
		side = side.Opponent()
	}

	want := HashFull(b, side)
	if h != want {
		t.Fatalf("incremental hash %x != recomputed hash %x", h, want)
	}
}

func TestUpdateCaptureCountRoundTrip(t *testing.T) {
	h := uint64(12345)
	h2 := UpdateCaptureCount(h, Black, 0, 2)
	h3 := UpdateCaptureCount(h2, Black, 2, 0)
	if h3 != h {
		t.Fatalf("capture count update not reversible: got %x want %x", h3, h)
	}
}

func TestToggleSideSelfInverse(t *testing.T) {
	h := uint64(99)
	if ToggleSide(ToggleSide(h)) != h {
		t.Fatalf("toggle side should be self-inverse")
	}
}
