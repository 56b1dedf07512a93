package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has a pseudo-legal
// move ending on pos.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	for row := 1; row <= chess.BoardSize; row++ {
		for col := 1; col <= chess.BoardSize; col++ {
			from := chess.NewPosition(row, col)
			piece, ok := board.Get(from)
			if !ok || piece.Colour != byColour {
				continue
			}
			if Attacks(board, from, pos) {
				return true
			}
		}
	}
	return false
}

// Checkers returns the positions of byColour's pieces that attack pos.
func Checkers(board *chess.Board, pos chess.Position, byColour chess.Colour) []chess.Position {
	var attackers []chess.Position
	for _, from := range board.Occupied() {
		piece, _ := board.Get(from)
		if piece.Colour == byColour && Attacks(board, from, pos) {
			attackers = append(attackers, from)
		}
	}
	return attackers
}
