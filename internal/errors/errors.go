// Package errors provides sentinel errors and error types for the rules engine.
// It defines the ways a move can be rejected and a structured error type that
// preserves the rejected move while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove is the parent of every move rejection below.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPieceAtOrigin indicates a query or move from an empty square.
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// ErrNotCallersTurn indicates a move of a piece whose colour is not to move.
	ErrNotCallersTurn = errors.New("not that colour's turn")

	// ErrNotInLegalSet indicates a destination/promotion combination that is
	// not among the piece's legal moves.
	ErrNotInLegalSet = errors.New("move not in legal set")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the move, the side to move and the
// piece found on the origin square. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As(). Every MoveError also
// matches ErrIllegalMove.
type MoveError struct {
	Err   error        // The underlying sentinel
	Move  chess.Move   // The rejected move
	Turn  chess.Colour // Side to move when the move was attempted
	Piece chess.Piece  // Piece on the origin square (zero if empty)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("move %s", e.Move))
	parts = append(parts, fmt.Sprintf("%s to move", e.Turn))

	if !e.Piece.IsZero() {
		parts = append(parts, fmt.Sprintf("piece %s", e.Piece))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports ErrIllegalMove as a match for every MoveError.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
