package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus summarises the position for one side.
type GameStatus int

const (
	InProgress GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal returns true for checkmate and stalemate.
func (s GameStatus) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Status classifies the position for colour.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	default:
		return InProgress
	}
}
