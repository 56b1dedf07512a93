// Package chess provides core chess types: colours, pieces, positions,
// moves and the board that stores them.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (row delta of a pawn push).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRow returns the row a pawn of this colour starts on.
func (c Colour) PawnStartRow() int {
	if c == White {
		return 2
	}
	return BoardSize - 1
}

// PromotionRow returns the far row on which a pawn of this colour promotes.
func (c Colour) PromotionRow() int {
	if c == White {
		return BoardSize
	}
	return 1
}

// PieceType represents a chess piece type. The zero value is NoPiece.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square / no promotion
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumPieceTypes
)

// PromotionTypes lists the piece types a pawn may promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'B', 'N', 'R', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a coloured piece. Pieces are values and never change;
// promotion places a new Piece on the board.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NewPiece creates a piece of the given colour and type.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsZero reports whether p is the empty-square value.
func (p Piece) IsZero() bool {
	return p.Type == NoPiece
}

// IsValid reports whether p is a real piece: a known colour and a type
// between King and Pawn.
func (p Piece) IsValid() bool {
	return (p.Colour == White || p.Colour == Black) && p.Type > NoPiece && p.Type < NumPieceTypes
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsZero() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8
