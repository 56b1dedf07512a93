package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		colour  chess.Colour
		want    bool
	}{
		{
			name: "initial position",
			diagram: `
				rnbqkbnr
				pppppppp
				........
				........
				........
				........
				PPPPPPPP
				RNBQKBNR`,
			colour: chess.White,
			want:   false,
		},
		{
			name: "rook on open file",
			diagram: `
				....k...
				........
				........
				........
				........
				........
				........
				....R..K`,
			colour: chess.Black,
			want:   true,
		},
		{
			name: "rook blocked",
			diagram: `
				....k...
				....p...
				........
				........
				........
				........
				........
				....R..K`,
			colour: chess.Black,
			want:   false,
		},
		{
			name: "bishop diagonal",
			diagram: `
				.......k
				........
				........
				........
				...b....
				........
				........
				K.......`,
			colour: chess.White,
			want:   true,
		},
		{
			name: "knight check",
			diagram: `
				....k...
				........
				.....N..
				........
				........
				........
				........
				K.......`,
			colour: chess.Black,
			want:   true,
		},
		{
			name: "white pawn gives check diagonally",
			diagram: `
				........
				...k....
				....P...
				........
				........
				........
				........
				K.......`,
			colour: chess.Black,
			want:   true,
		},
		{
			name: "pawn straight ahead is no check",
			diagram: `
				........
				....k...
				....P...
				........
				........
				........
				........
				K.......`,
			colour: chess.Black,
			want:   false,
		},
		{
			name: "black pawn gives check downward",
			diagram: `
				.......k
				........
				........
				........
				........
				..p.....
				...K....
				........`,
			colour: chess.White,
			want:   true,
		},
		{
			name: "own piece does not give check",
			diagram: `
				....k...
				........
				........
				........
				........
				........
				........
				....r..K`,
			colour: chess.Black,
			want:   false,
		},
		{
			name: "no king is never in check",
			diagram: `
				....q...
				........
				........
				........
				........
				........
				........
				........`,
			colour: chess.White,
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.diagram)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v\n%s", tt.colour, got, tt.want, board)
			}
		})
	}
}

func TestCheckers(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		...N....
		........
		........
		........
		........
		K...R...`)
	king, _ := board.FindKing(chess.Black)
	got := Checkers(board, king, chess.White)
	testutil.AssertEqual(t, got, []chess.Position{sq("e1"), sq("d6")})
}

// definitionalCheck is the textbook definition: some opposing piece has a
// pseudo-legal move onto the king's square.
func definitionalCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	for _, from := range board.Occupied() {
		piece, _ := board.Get(from)
		if piece.Colour == colour {
			continue
		}
		for _, m := range PseudoMoves(board, from) {
			if m.End == king {
				return true
			}
		}
	}
	return false
}

// TestIsInCheck_RandomPositions checks IsInCheck against the definition on
// random placements and on positions reached by random legal play.
func TestIsInCheck_RandomPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		board := testutil.RandomBoard(rng, rng.Intn(14))
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if got, want := IsInCheck(board, colour), definitionalCheck(board, colour); got != want {
				t.Fatalf("IsInCheck(%v) = %v, want %v\n%s", colour, got, want, board)
			}
		}
	}

	for game := 0; game < 10; game++ {
		board := chess.NewInitialBoard()
		toMove := chess.White
		for ply := 0; ply < 80; ply++ {
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				if got, want := IsInCheck(board, colour), definitionalCheck(board, colour); got != want {
					t.Fatalf("game %d ply %d: IsInCheck(%v) = %v, want %v\n%s", game, ply, colour, got, want, board)
				}
			}
			moves := AllLegalMoves(board, toMove)
			if len(moves) == 0 {
				break
			}
			ApplyMove(board, moves[rng.Intn(len(moves))])
			toMove = toMove.Opposite()
		}
	}
}
