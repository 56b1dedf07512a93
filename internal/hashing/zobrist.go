// Package hashing provides position hashes and a concurrent table of
// node counts keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var (
	pieceKeys [2][chess.NumPieceTypes][chess.BoardSize * chess.BoardSize]uint64
	blackKey  uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rng := rand.New(rand.NewSource(0xC0DE))
	for c := range pieceKeys {
		for pt := range pieceKeys[c] {
			for sq := range pieceKeys[c][pt] {
				pieceKeys[c][pt][sq] = rng.Uint64()
			}
		}
	}
	blackKey = rng.Uint64()
}

// squareIndex maps an on-board position to 0..63, a1 first.
func squareIndex(pos chess.Position) int {
	return (pos.Row-1)*chess.BoardSize + pos.Col - 1
}

// Zobrist returns the Zobrist hash of board with toMove to play.
func Zobrist(board *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for _, pos := range board.Occupied() {
		piece, _ := board.Get(pos)
		key ^= pieceKeys[piece.Colour][piece.Type][squareIndex(pos)]
	}
	if toMove == chess.Black {
		key ^= blackKey
	}
	return key
}
