package board

// Zobrist-style position hash keys. Fixed seed so hashes are reproducible
// across runs and processes (spec §4.2: "deterministic seeds").
var (
	zobristStone     [2][TotalCells]uint64
	zobristSideMove  uint64
	zobristCaptures  [2][6]uint64 // [color][min(count,5)]
)

func init() {
	initZobrist()
}

// prng is a reproducible xorshift64* generator, same construction the
// teacher repo uses for its own Zobrist table (distinct fixed seed so the
// two key spaces never collide if both packages are linked together).
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0xB16B00B5A5A5A5A5)

	for color := 0; color < 2; color++ {
		for idx := 0; idx < TotalCells; idx++ {
			zobristStone[color][idx] = rng.next()
		}
	}
	for color := 0; color < 2; color++ {
		for count := 0; count < 6; count++ {
			zobristCaptures[color][count] = rng.next()
		}
	}
	zobristSideMove = rng.next()
}

func colorIndex(c Stone) int {
	if c == White {
		return 1
	}
	return 0
}

func clampCaps(n int) int {
	if n > 5 {
		return 5
	}
	if n < 0 {
		return 0
	}
	return n
}

// HashFull recomputes a position hash from scratch: every stone on the
// board, the side-to-move key (only when side is Black), and both colors'
// capture-count keys (always included, even at zero captures).
func HashFull(b *Board, side Stone) uint64 {
	var h uint64
	b.Stones(Black).Iterate(func(idx int) bool {
		h ^= zobristStone[0][idx]
		return true
	})
	b.Stones(White).Iterate(func(idx int) bool {
		h ^= zobristStone[1][idx]
		return true
	})
	if side == Black {
		h ^= zobristSideMove
	}
	h ^= zobristCaptures[0][clampCaps(b.Captures(Black))]
	h ^= zobristCaptures[1][clampCaps(b.Captures(White))]
	return h
}

// ToggleSide XORs in the side-to-move key alone, with no stone change.
func ToggleSide(h uint64) uint64 {
	return h ^ zobristSideMove
}

// UpdatePlaceOrRemove XORs the (color, pos) stone key and toggles side to
// move. Self-inverse: applying it twice with the same arguments restores
// the original hash (spec §8 round-trip law).
func UpdatePlaceOrRemove(h uint64, pos Pos, color Stone) uint64 {
	return h ^ zobristStone[colorIndex(color)][pos.Index()] ^ zobristSideMove
}

// UpdateCaptureOnly XORs the (color, pos) stone key without touching side
// to move, for use while processing captures mid-move (the side does not
// change until the placing player's turn ends).
func UpdateCaptureOnly(h uint64, pos Pos, color Stone) uint64 {
	return h ^ zobristStone[colorIndex(color)][pos.Index()]
}

// UpdateCaptureCount swaps color's capture-count key from old to new.
func UpdateCaptureCount(h uint64, color Stone, oldCount, newCount int) uint64 {
	ci := colorIndex(color)
	return h ^ zobristCaptures[ci][clampCaps(oldCount)] ^ zobristCaptures[ci][clampCaps(newCount)]
}
