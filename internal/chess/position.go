package chess

import "strconv"

// Position is a (row, column) coordinate. Rows and columns run 1..8;
// row 1 is White's back rank and column 1 is the a-file. Positions off
// the board can be built during move generation and are rejected by
// IsOnBoard before they are used to index a board.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// IsOnBoard returns true if both coordinates are in 1..8.
func (p Position) IsOnBoard() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

// Offset returns the position dr rows and dc columns away.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders positions by row, then column.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// String returns the algebraic square name ("e4"), or "(r,c)" when off the board.
func (p Position) String() string {
	if !p.IsOnBoard() {
		return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
	}
	return string([]byte{byte('a' + p.Col - 1), byte('0' + p.Row)})
}

