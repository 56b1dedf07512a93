package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Replay plays moves in order. If any move is rejected the game is left as
// it was, and the returned error names the 1-based ply and wraps the
// *errors.MoveError from MakeMove.
func (g *Game) Replay(moves []chess.Move) error {
	scratch := g.Clone()
	for i, m := range moves {
		if err := scratch.MakeMove(m); err != nil {
			return errors.Wrapf(err, "ply %d", i+1)
		}
	}
	g.board = scratch.board
	g.turn = scratch.turn
	return nil
}
