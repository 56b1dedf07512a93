package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the moves of the piece on from that do not leave its
// own king attacked, sorted. The bool is false if from is empty.
//
// This is the only place king safety is enforced: the generators treat an
// opposing king as an ordinary capture target, and filtering here keeps any
// king capture out of legal play.
func LegalMoves(board *chess.Board, from chess.Position) ([]chess.Move, bool) {
	piece, ok := board.Get(from)
	if !ok {
		return nil, false
	}

	pseudo := pieceMoves(board, from, piece)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if tryMove(board, m, piece.Colour) {
			legal = append(legal, m)
		}
	}
	chess.SortMoves(legal)
	return legal, true
}

// AllLegalMoves returns the legal moves of every piece of colour, sorted.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied() {
		piece, _ := board.Get(from)
		if piece.Colour != colour {
			continue
		}
		legal, _ := LegalMoves(board, from)
		moves = append(moves, legal...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for row := 1; row <= chess.BoardSize; row++ {
		for col := 1; col <= chess.BoardSize; col++ {
			from := chess.NewPosition(row, col)
			piece, ok := board.Get(from)
			if !ok || piece.Colour != colour {
				continue
			}
			for _, m := range pieceMoves(board, from, piece) {
				if tryMove(board, m, colour) {
					return true
				}
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	testBoard := board.Copy()
	ApplyMove(testBoard, move)
	return !IsInCheck(testBoard, colour)
}

// ApplyMove moves the piece on move.Start to move.End, replacing it with the
// promotion piece if one is set. It does not check legality and does nothing
// when move.Start is empty.
func ApplyMove(board *chess.Board, move chess.Move) {
	piece, ok := board.Get(move.Start)
	if !ok {
		return
	}
	if move.IsPromotion() {
		piece = chess.NewPiece(piece.Colour, move.Promotion)
	}
	board.Clear(move.Start)
	board.Set(move.End, piece)
}
