package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, pos := range board.Occupied() {
		piece, _ := board.Get(pos)

		// Kings don't count for material
		if piece.Type == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Type)
			if piece.Type == chess.Bishop {
				whiteBishopOnLight = isLightSquare(pos)
			}
		} else {
			blackPieces = append(blackPieces, piece.Type)
			if piece.Type == chess.Bishop {
				blackBishopOnLight = isLightSquare(pos)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(pos chess.Position) bool {
	return (pos.Row+pos.Col)%2 == 1
}
