package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pawn pushes and diagonal captures. Pushes need empty
// squares and captures need an opposing piece. Moves onto the promotion row
// are emitted once per promotion type.
func pawnMoves(board *chess.Board, from chess.Position, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour
	dir := colour.PawnDirection()

	// Forward moves
	one := from.Offset(dir, 0)
	if Classify(board, one, colour) == Open {
		moves = addPawnMove(moves, from, one, colour)
		if from.Row == colour.PawnStartRow() {
			two := from.Offset(2*dir, 0)
			if Classify(board, two, colour) == Open {
				moves = addPawnMove(moves, from, two, colour)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if Classify(board, to, colour) == Capture {
			moves = addPawnMove(moves, from, to, colour)
		}
	}

	return moves
}

// addPawnMove appends a plain move, or four promotions on the far row.
func addPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row != colour.PromotionRow() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, pt := range chess.PromotionTypes {
		moves = append(moves, chess.NewPromotion(from, to, pt))
	}
	return moves
}
