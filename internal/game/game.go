// Package game tracks a board together with the side to move and enforces
// turn order and legality when moves are made.
package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is a board plus the colour to move. The zero Game is an empty board
// with White to move; use NewGame for the starting position.
// A Game is not safe for concurrent use; Clone it to hand positions to
// other goroutines.
type Game struct {
	id    uuid.UUID
	board *chess.Board
	turn  chess.Colour
	cfg   *config.Config
}

// NewGame returns a game in the standard starting position with White to
// move. A nil cfg uses config.NewConfig().
func NewGame(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		id:    uuid.New(),
		board: chess.NewInitialBoard(),
		turn:  chess.White,
		cfg:   cfg,
	}
}

// ID returns the identifier assigned when the game was created.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.position().Copy()
}

// SetBoard replaces the position with a copy of board. A nil board leaves
// the game with an empty board.
func (g *Game) SetBoard(board *chess.Board) {
	if board == nil {
		g.board = chess.NewBoard()
		return
	}
	g.board = board.Copy()
}

// position returns the board, creating an empty one for the zero Game.
func (g *Game) position() *chess.Board {
	if g.board == nil {
		g.board = chess.NewBoard()
	}
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// SetTurn sets the colour to move.
func (g *Game) SetTurn(colour chess.Colour) {
	g.turn = colour
}

// Clone returns an independent copy of the game sharing its ID and config.
func (g *Game) Clone() *Game {
	return &Game{
		id:    g.id,
		board: g.position().Copy(),
		turn:  g.turn,
		cfg:   g.cfg,
	}
}

// LegalMoves returns the king-safe moves of the piece on pos, sorted.
// The piece need not belong to the side to move.
func (g *Game) LegalMoves(pos chess.Position) ([]chess.Move, error) {
	moves, ok := engine.LegalMoves(g.position(), pos)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoPieceAtOrigin, "square %s", pos)
	}
	return moves, nil
}

// AllLegalMoves returns every legal move for the side to move.
func (g *Game) AllLegalMoves() []chess.Move {
	return engine.AllLegalMoves(g.position(), g.turn)
}

// IsInCheck reports whether colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return engine.IsInCheck(g.position(), colour)
}

// IsInCheckmate reports whether colour is in check with no legal move.
func (g *Game) IsInCheckmate(colour chess.Colour) bool {
	return engine.IsCheckmate(g.position(), colour)
}

// IsInStalemate reports whether colour is not in check but has no legal move.
func (g *Game) IsInStalemate(colour chess.Colour) bool {
	return engine.IsStalemate(g.position(), colour)
}

// HasInsufficientMaterial reports whether neither side can force mate.
func (g *Game) HasInsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.position())
}

// Status returns the state of the game for the side to move.
func (g *Game) Status() engine.GameStatus {
	return engine.Status(g.position(), g.turn)
}

// MakeMove applies move if it is legal for the side to move and passes the
// turn. A rejected move leaves the game untouched and returns a
// *errors.MoveError wrapping ErrNoPieceAtOrigin, ErrNotCallersTurn or
// ErrNotInLegalSet, checked in that order.
func (g *Game) MakeMove(move chess.Move) error {
	piece, ok := g.position().Get(move.Start)
	if !ok {
		return g.reject(move, piece, errors.ErrNoPieceAtOrigin)
	}
	if piece.Colour != g.turn {
		return g.reject(move, piece, errors.ErrNotCallersTurn)
	}
	legal, _ := engine.LegalMoves(g.position(), move.Start)
	if !slices.Contains(legal, move) {
		return g.reject(move, piece, errors.ErrNotInLegalSet)
	}

	engine.ApplyMove(g.position(), move)
	g.cfg.Logf(config.Trace, "game %s: %s %s played %s", g.id, g.turn, piece.Type, move)
	g.turn = g.turn.Opposite()
	return nil
}

func (g *Game) reject(move chess.Move, piece chess.Piece, reason error) error {
	err := &errors.MoveError{
		Err:   reason,
		Move:  move,
		Turn:  g.turn,
		Piece: piece,
	}
	g.cfg.Logf(config.Rejects, "game %s: rejected %v", g.id, err)
	return err
}
