package chess

import "sort"

// Move represents a single move from one square to another.
type Move struct {
	// Source square.
	Start Position

	// Destination square.
	End Position

	// The piece type promoted to (NoPiece if not a promotion).
	// Only set when a pawn reaches its promotion row.
	Promotion PieceType
}

// NewMove creates a move with no promotion.
func NewMove(start, end Position) Move {
	return Move{Start: start, End: end}
}

// NewPromotion creates a pawn move that promotes to pieceType.
func NewPromotion(start, end Position, pieceType PieceType) Move {
	return Move{Start: start, End: end, Promotion: pieceType}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// Less orders moves by start, end, then promotion type.
func (m Move) Less(o Move) bool {
	if m.Start != o.Start {
		return m.Start.Less(o.Start)
	}
	if m.End != o.End {
		return m.End.Less(o.End)
	}
	return m.Promotion < o.Promotion
}

// String returns long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.IsPromotion() {
		s += string(NewPiece(Black, m.Promotion).Letter())
	}
	return s
}

// SortMoves sorts moves into a stable, deterministic order.
func SortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })
}
