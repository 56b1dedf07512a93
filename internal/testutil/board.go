package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// pieceLetters maps diagram letters to piece types.
var pieceLetters = map[byte]chess.PieceType{
	'K': chess.King,
	'Q': chess.Queen,
	'B': chess.Bishop,
	'N': chess.Knight,
	'R': chess.Rook,
	'P': chess.Pawn,
}

// Sq converts a square name such as "e4" to a position.
// It panics on malformed names, which only appear in test tables.
func Sq(name string) chess.Position {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic("testutil: bad square " + strconv.Quote(name))
	}
	return chess.NewPosition(int(name[1]-'0'), int(name[0]-'a')+1)
}

// Mv builds a move from two square names with an optional promotion type.
func Mv(from, to string, promotion ...chess.PieceType) chess.Move {
	if len(promotion) > 0 {
		return chess.NewPromotion(Sq(from), Sq(to), promotion[0])
	}
	return chess.NewMove(Sq(from), Sq(to))
}

// ParseDiagram builds a board from eight rows of eight characters, row 8
// first. Uppercase letters are White, lowercase are Black and '.' is empty.
// Blank lines and surrounding spaces are ignored.
func ParseDiagram(diagram string) (*chess.Board, bool) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return nil, false
	}

	board := chess.NewBoard()
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			return nil, false
		}
		row := chess.BoardSize - i
		for c := 0; c < chess.BoardSize; c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			colour := chess.White
			if ch >= 'a' && ch <= 'z' {
				colour = chess.Black
				ch -= 'a' - 'A'
			}
			pt, ok := pieceLetters[ch]
			if !ok {
				return nil, false
			}
			board.Set(chess.NewPosition(row, c+1), chess.NewPiece(colour, pt))
		}
	}
	return board, true
}

// MustBoard parses a diagram and calls t.Fatal if it is malformed.
func MustBoard(t *testing.T, diagram string) *chess.Board {
	t.Helper()
	board, ok := ParseDiagram(diagram)
	if !ok {
		t.Fatalf("malformed board diagram:\n%s", diagram)
	}
	return board
}

// FEN renders board as a FEN string with toMove to play, no castling
// rights and no en-passant square. Used to hand positions to reference
// move generators.
func FEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for row := chess.BoardSize; row >= 1; row-- {
		empty := 0
		for col := 1; col <= chess.BoardSize; col++ {
			piece, ok := board.Get(chess.NewPosition(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// RandomBoard places both kings and up to extra further pieces on random
// squares. Pawns never land on rows 1 or 8. The kings may be adjacent or in
// check; callers filter for the positions they need.
func RandomBoard(rng *rand.Rand, extra int) *chess.Board {
	board := chess.NewBoard()
	place := func(piece chess.Piece) {
		for {
			pos := chess.NewPosition(rng.Intn(chess.BoardSize)+1, rng.Intn(chess.BoardSize)+1)
			if _, taken := board.Get(pos); taken {
				continue
			}
			if piece.Type == chess.Pawn && (pos.Row == 1 || pos.Row == chess.BoardSize) {
				continue
			}
			board.Set(pos, piece)
			return
		}
	}
	place(chess.W(chess.King))
	place(chess.B(chess.King))

	types := []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn, chess.Pawn}
	for i := 0; i < extra; i++ {
		colour := chess.White
		if rng.Intn(2) == 1 {
			colour = chess.Black
		}
		place(chess.NewPiece(colour, types[rng.Intn(len(types))]))
	}
	return board
}
