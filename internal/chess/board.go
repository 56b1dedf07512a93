package chess

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Board maps occupied positions to the piece standing there. Squares that
// are absent from the map are empty, so at most one piece occupies a square.
// A Board holds no rules; legality lives in the engine package.
type Board struct {
	squares map[Position]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Position]Piece, 32)}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the piece order on rows 1 and 8, a-file first.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = make(map[Position]Piece, 32)
	for col := 1; col <= BoardSize; col++ {
		b.squares[NewPosition(1, col)] = W(backRank[col-1])
		b.squares[NewPosition(2, col)] = W(Pawn)
		b.squares[NewPosition(BoardSize-1, col)] = B(Pawn)
		b.squares[NewPosition(BoardSize, col)] = B(backRank[col-1])
	}
}

// Get returns the piece at pos and whether the square is occupied.
// Positions off the board are reported as empty.
func (b *Board) Get(pos Position) (Piece, bool) {
	p, ok := b.squares[pos]
	return p, ok
}

// Set places a piece at pos, replacing whatever stood there. Setting the
// zero Piece clears the square. Positions off the board and pieces that are
// not IsValid are ignored.
func (b *Board) Set(pos Position, piece Piece) {
	if !pos.IsOnBoard() {
		return
	}
	if !piece.IsZero() && !piece.IsValid() {
		return
	}
	if b.squares == nil {
		b.squares = make(map[Position]Piece)
	}
	if piece.IsZero() {
		delete(b.squares, pos)
		return
	}
	b.squares[pos] = piece
}

// Clear removes any piece at pos.
func (b *Board) Clear(pos Position) {
	delete(b.squares, pos)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Occupied returns the occupied positions in row-major order.
func (b *Board) Occupied() []Position {
	positions := maps.Keys(b.squares)
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
	return positions
}

// FindKing returns the position of colour's king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	king := NewPiece(colour, King)
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			pos := NewPosition(row, col)
			if b.squares[pos] == king {
				return pos, true
			}
		}
	}
	return Position{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	if b.squares == nil {
		return NewBoard()
	}
	return &Board{squares: maps.Clone(b.squares)}
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return maps.Equal(b.squares, o.squares)
}

// String renders the board as eight lines, row 8 first, using piece
// letters and '.' for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for row := BoardSize; row >= 1; row-- {
		for col := 1; col <= BoardSize; col++ {
			if p, ok := b.squares[NewPosition(row, col)]; ok {
				buf = append(buf, p.Letter())
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
