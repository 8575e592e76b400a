package board

import "fmt"

// Size is the board edge length for this variant. No other size is supported
// (spec Non-goals: multi-board-size support is out of scope).
const Size = 19

// TotalCells is Size*Size, the number of addressable cells.
const TotalCells = Size * Size

// Pos is a (row, col) board coordinate, 0 <= Row, Col < Size.
type Pos struct {
	Row, Col int8
}

// NewPos builds a Pos from row/col.
func NewPos(row, col int) Pos {
	return Pos{Row: int8(row), Col: int8(col)}
}

// IsValid reports whether row/col lie on the board.
func IsValid(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Valid reports whether p lies on the board.
func (p Pos) Valid() bool {
	return IsValid(int(p.Row), int(p.Col))
}

// Index returns the linear index row*Size+col, 0 <= idx < TotalCells.
func (p Pos) Index() int {
	return int(p.Row)*Size + int(p.Col)
}

// PosFromIndex is the inverse of Index.
func PosFromIndex(idx int) Pos {
	return Pos{Row: int8(idx / Size), Col: int8(idx % Size)}
}

// Add returns p shifted by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + int8(dr), Col: p.Col + int8(dc)}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Label renders p in the user-facing coordinate system: columns A..S (A=0,
// skipping no letters — unlike Go board notation this variant does not skip
// 'I'), rows 19..1 (row 0 is displayed as 19).
func (p Pos) Label() string {
	return fmt.Sprintf("%c%d", 'A'+byte(p.Col), Size-int(p.Row))
}

// Directions enumerates the four line directions used throughout the rule
// kernel and evaluator: horizontal, vertical, and both diagonals. Each is
// walked in both the positive and negative orientation by callers.
var Directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// Neighbors8 enumerates the eight unit offsets around a cell, used by the
// broken-five capture-break check.
var Neighbors8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
