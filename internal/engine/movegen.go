package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a (row, column) step.
type direction [2]int

var (
	diagonals   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonals = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	kingSteps   = []direction{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
	knightJumps = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	queenRays   = append(append([]direction{}, orthogonals...), diagonals...)
)

// generator appends the pseudo-legal moves of piece standing on from.
type generator func(board *chess.Board, from chess.Position, piece chess.Piece, moves []chess.Move) []chess.Move

// generators maps every piece type to its move generator.
var generators = [chess.NumPieceTypes]generator{
	chess.King:   stepGenerator(kingSteps),
	chess.Queen:  slideGenerator(queenRays),
	chess.Bishop: slideGenerator(diagonals),
	chess.Knight: stepGenerator(knightJumps),
	chess.Rook:   slideGenerator(orthogonals),
	chess.Pawn:   pawnMoves,
}

// PseudoMoves returns every move the piece on from could make, ignoring
// whether it leaves its own king attacked. It returns nil for an empty square.
func PseudoMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}
	return pieceMoves(board, from, piece)
}

func pieceMoves(board *chess.Board, from chess.Position, piece chess.Piece) []chess.Move {
	if piece.Type <= chess.NoPiece || piece.Type >= chess.NumPieceTypes {
		return nil
	}
	return generators[piece.Type](board, from, piece, make([]chess.Move, 0, 16))
}

// slideGenerator walks each ray until it leaves the board or meets a piece.
// An opposing piece ends the ray and is included as a capture.
func slideGenerator(dirs []direction) generator {
	return func(board *chess.Board, from chess.Position, piece chess.Piece, moves []chess.Move) []chess.Move {
		for _, dir := range dirs {
			to := from.Offset(dir[0], dir[1])
			for {
				class := Classify(board, to, piece.Colour)
				if class == Invalid {
					break
				}
				moves = append(moves, chess.NewMove(from, to))
				if class == Capture {
					break
				}
				to = to.Offset(dir[0], dir[1])
			}
		}
		return moves
	}
}

// stepGenerator tests each offset once; used by kings and knights.
func stepGenerator(steps []direction) generator {
	return func(board *chess.Board, from chess.Position, piece chess.Piece, moves []chess.Move) []chess.Move {
		for _, step := range steps {
			to := from.Offset(step[0], step[1])
			if Classify(board, to, piece.Colour) != Invalid {
				moves = append(moves, chess.NewMove(from, to))
			}
		}
		return moves
	}
}

// Attacks returns true if the piece on from has a pseudo-legal move ending on target.
func Attacks(board *chess.Board, from, target chess.Position) bool {
	for _, m := range PseudoMoves(board, from) {
		if m.End == target {
			return true
		}
	}
	return false
}
