// Package search implements the alpha-beta searcher, the VCF/VCT
// threat-space search, and the shared transposition table.
package search

import "github.com/hailam/ninuki/internal/board"

// EntryFlag indicates the type of bound stored in a transposition table
// entry.
type EntryFlag uint8

const (
	Exact EntryFlag = iota
	LowerBound
	UpperBound
)

// Entry is one transposition table slot. Score is int32, not the int16 the
// teacher's chess TT used — Gomoku's pattern scores (FIVE = 1,000,000)
// overflow a 16-bit field, so the score width was widened when this table
// was adapted from the chess original.
type Entry struct {
	Key      uint32
	BestMove board.Pos
	HasMove  bool
	Score    int32
	Depth    int8
	Flag     EntryFlag
	Age      uint8
}

// Table is a direct-mapped transposition table, sized to a power of two
// for fast masking instead of modulo.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8

	hits, probes uint64
}

// entrySizeBytes approximates one Entry's in-memory footprint for sizing
// the table from a byte budget.
const entrySizeBytes = 24

// NewTable allocates a table sized to fit within sizeBytes.
func NewTable(sizeBytes int) *Table {
	numEntries := uint64(sizeBytes) / entrySizeBytes
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}
	return &Table{
		entries: make([]Entry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash. The second result is true iff the stored entry's
// hash key matches and its depth is at least query depth; the caller must
// still check whether the bound is usable against alpha/beta before trusting
// the score (Exact is always usable; LowerBound iff score >= beta;
// UpperBound iff score <= alpha) — the stored best move is returned
// regardless, for move ordering, even when the score itself isn't usable.
func (t *Table) Probe(hash uint64, depth int) (Entry, bool) {
	t.probes++
	idx := hash & t.mask
	e := t.entries[idx]
	if e.Key == uint32(hash>>32) && int(e.Depth) >= depth && e.Depth > 0 {
		t.hits++
		return e, true
	}
	// Still surface a shallower same-key entry for its best move.
	if e.Key == uint32(hash>>32) && e.Depth > 0 {
		return e, false
	}
	return Entry{}, false
}

// Usable reports whether e's score may be trusted directly against the
// given alpha/beta window (spec §4.5).
func Usable(e Entry, alpha, beta int32) bool {
	switch e.Flag {
	case Exact:
		return true
	case LowerBound:
		return e.Score >= beta
	case UpperBound:
		return e.Score <= alpha
	default:
		return false
	}
}

// Store replaces the slot iff it is empty, was written by an earlier search
// generation (see NewSearch), holds the same key, or the new entry is at
// least as deep (depth-preferred replacement).
func (t *Table) Store(hash uint64, depth int, score int32, flag EntryFlag, best board.Pos, hasMove bool) {
	idx := hash & t.mask
	e := &t.entries[idx]
	if e.Age != t.age || e.Depth == 0 || depth >= int(e.Depth) || e.Key == uint32(hash>>32) {
		e.Key = uint32(hash >> 32)
		e.BestMove = best
		e.HasMove = hasMove
		e.Score = score
		e.Depth = int8(depth)
		e.Flag = flag
		e.Age = t.age
	}
}

// NewSearch bumps the age generation, used by the replacement policy to
// prefer fresh-search entries over stale ones without a full Clear.
func (t *Table) NewSearch() {
	t.age++
}

// Clear wipes every slot and resets statistics (must be called between
// games — spec §9 "TT clearing between games").
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
	t.hits = 0
	t.probes = 0
}

// Stats reports raw slot count, the number of occupied slots sampled from
// the front of the table, and the percent full.
type Stats struct {
	Size    uint64
	Used    int
	Percent float64
}

func (t *Table) Stats() Stats {
	sample := 1000
	if uint64(sample) > uint64(len(t.entries)) {
		sample = len(t.entries)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Depth > 0 {
			used++
		}
	}
	pct := 0.0
	if sample > 0 {
		pct = float64(used) / float64(sample) * 100
	}
	return Stats{Size: uint64(len(t.entries)), Used: used, Percent: pct}
}

// HitRate returns the probe hit percentage.
func (t *Table) HitRate() float64 {
	if t.probes == 0 {
		return 0
	}
	return float64(t.hits) / float64(t.probes) * 100
}
