// Package engine provides chess move generation and rule queries over a board.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// SquareClass is the result of testing a candidate destination square.
type SquareClass int

const (
	// Invalid means the square is off the board or holds one of the mover's pieces.
	Invalid SquareClass = iota
	// Open means the square is empty.
	Open
	// Capture means the square holds an opposing piece, king included.
	Capture
)

// String returns the string representation of a square class.
func (c SquareClass) String() string {
	switch c {
	case Open:
		return "Open"
	case Capture:
		return "Capture"
	default:
		return "Invalid"
	}
}

// Classify decides whether a piece of colour mover may land on pos.
// Every move generator consults it for every candidate square.
func Classify(board *chess.Board, pos chess.Position, mover chess.Colour) SquareClass {
	if !pos.IsOnBoard() {
		return Invalid
	}
	occupant, ok := board.Get(pos)
	if !ok {
		return Open
	}
	if occupant.Colour == mover {
		return Invalid
	}
	return Capture
}
